package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fintools-ai/fintools-api/dto"
)

// InsightsClient calls an external AI text-completion API for illustrative
// market insights. It is peripheral: when no API key is configured the
// client is disabled and every call returns dto.ErrInsightsDisabled.
type InsightsClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewInsightsClient(apiKey, baseURL, model string) *InsightsClient {
	return &InsightsClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether an API key was configured.
func (c *InsightsClient) Enabled() bool {
	return c.apiKey != ""
}

type completionRequest struct {
	Model     string              `json:"model"`
	MaxTokens int                 `json:"max_tokens"`
	Messages  []completionMessage `json:"messages"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// GenerateInsight asks the completion API for a short market commentary on
// the given prompt.
func (c *InsightsClient) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", dto.ErrInsightsDisabled
	}

	reqBody := completionRequest{
		Model:     c.model,
		MaxTokens: 1024,
		Messages: []completionMessage{
			{Role: "user", Content: prompt},
		},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal insight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create insight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read insight response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight API returned status %d: %s", resp.StatusCode, string(body))
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to parse insight response: %w", err)
	}
	if len(completion.Content) == 0 {
		return "", fmt.Errorf("insight API returned empty response")
	}

	return completion.Content[0].Text, nil
}
