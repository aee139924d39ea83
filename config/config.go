package config

import "os"

type Config struct {
	ServerPort        string
	TesseractDataPath string
	RedisAddr         string
	RedisPassword     string
	InsightsAPIKey    string
	InsightsBaseURL   string
	InsightsModel     string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		InsightsAPIKey:    os.Getenv("INSIGHTS_API_KEY"),
		InsightsBaseURL:   getEnv("INSIGHTS_BASE_URL", "https://api.anthropic.com"),
		InsightsModel:     getEnv("INSIGHTS_MODEL", "claude-3-5-haiku-latest"),
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
