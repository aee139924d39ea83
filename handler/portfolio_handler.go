package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/fintools-ai/fintools-api/service"
)

type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

type portfolioRequest struct {
	Assets []dto.PortfolioAsset `json:"assets"`
}

// Summary handles POST /portfolio/summary: holdings in, portfolio totals
// and allocation out. An empty portfolio is valid and yields zero totals.
func (h *PortfolioHandler) Summary(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid portfolio payload", err)
		return
	}

	c.JSON(http.StatusOK, h.portfolioService.Summarize(req.Assets))
}
