package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/client"
	"github.com/fintools-ai/fintools-api/dto"
)

type InsightsHandler struct {
	insightsClient *client.InsightsClient
}

func NewInsightsHandler(insightsClient *client.InsightsClient) *InsightsHandler {
	return &InsightsHandler{
		insightsClient: insightsClient,
	}
}

type insightRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Generate handles POST /insights. 503 when no API key is configured.
func (h *InsightsHandler) Generate(c *gin.Context) {
	var req insightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Prompt is required", err)
		return
	}

	insight, err := h.insightsClient.GenerateInsight(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, dto.ErrInsightsDisabled) {
			sendError(c, http.StatusServiceUnavailable, "INSIGHTS_DISABLED", err.Error(), err)
			return
		}
		sendError(c, http.StatusBadGateway, "INSIGHTS_FAILED", "Failed to generate insight", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight})
}
