package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fintools-ai/fintools-api/cache"
	"github.com/fintools-ai/fintools-api/client"
	"github.com/fintools-ai/fintools-api/config"
	"github.com/fintools-ai/fintools-api/handler"
	"github.com/fintools-ai/fintools-api/service"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize OCR client and PDF processor
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	pdfProcessor := service.NewPDFProcessor()

	// Handoff mailbox (quick calculator -> invoice editor)
	handoffStore := cache.NewHandoffStore(cfg.RedisAddr, cfg.RedisPassword)
	defer handoffStore.Close()
	if err := handoffStore.Ping(context.Background()); err != nil {
		log.Printf("Warning: Redis unreachable at %s, handoff disabled: %v", cfg.RedisAddr, err)
	}

	// Insights client is optional; disabled without an API key
	insightsClient := client.NewInsightsClient(cfg.InsightsAPIKey, cfg.InsightsBaseURL, cfg.InsightsModel)
	if !insightsClient.Enabled() {
		log.Println("Insights API key not set, /insights will return 503")
	}

	// Initialize service layer
	calculatorService := service.NewCalculatorService()
	pdfService := service.NewPDFService()
	receiptService := service.NewReceiptService(tesseractClient, pdfProcessor)
	letterService := service.NewLetterService()
	portfolioService := service.NewPortfolioService()

	// Initialize handler layer
	invoiceHandler := handler.NewInvoiceHandler(pdfService)
	reportHandler := handler.NewReportHandler(pdfService)
	calculatorHandler := handler.NewCalculatorHandler(calculatorService)
	receiptHandler := handler.NewReceiptHandler(receiptService)
	letterHandler := handler.NewLetterHandler(letterService)
	portfolioHandler := handler.NewPortfolioHandler(portfolioService)
	handoffHandler := handler.NewHandoffHandler(handoffStore)
	insightsHandler := handler.NewInsightsHandler(insightsClient)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "FinTools API",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		invoices := api.Group("/invoices")
		{
			invoices.POST("/pdf", invoiceHandler.GeneratePDF)
			invoices.GET("/templates", invoiceHandler.ListTemplates)
			invoices.GET("/sample", invoiceHandler.Sample)
		}

		reports := api.Group("/reports")
		{
			reports.POST("/pdf", reportHandler.GeneratePDF)
		}

		calc := api.Group("/calc")
		{
			calc.POST("/invoice", calculatorHandler.QuickCalc)
			calc.POST("/profit-loss", calculatorHandler.ProfitLoss)
			calc.POST("/valuation", calculatorHandler.Valuation)
		}

		receipts := api.Group("/receipts")
		{
			receipts.POST("/scan", receiptHandler.Scan)
			receipts.POST("/export", receiptHandler.ExportCSV)
		}

		api.POST("/portfolio/summary", portfolioHandler.Summary)

		letters := api.Group("/letters")
		{
			letters.POST("/generate", letterHandler.Generate)
			letters.GET("/templates", letterHandler.ListTemplates)
		}

		handoff := api.Group("/handoff")
		{
			handoff.POST("", handoffHandler.Store)
			handoff.POST("/consume", handoffHandler.Consume)
		}

		api.POST("/insights", insightsHandler.Generate)
	}

	// Start server
	log.Printf("Starting FinTools API on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
