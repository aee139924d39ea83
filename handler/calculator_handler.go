package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/fintools-ai/fintools-api/service"
)

type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
	}
}

// QuickCalc handles POST /calc/invoice: invoice totals for a free-form
// item list. Zero items is a valid request and yields zero totals.
func (h *CalculatorHandler) QuickCalc(c *gin.Context) {
	var req dto.QuickCalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid calculation payload", err)
		return
	}

	c.JSON(http.StatusOK, h.calculatorService.QuickCalc(req.Items, req.TaxRate))
}

// ProfitLoss handles POST /calc/profit-loss: the full result set plus the
// break-even chart, sensitivity rows and optional scenario outcomes.
func (h *CalculatorHandler) ProfitLoss(c *gin.Context) {
	var req dto.ProfitLossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid calculation payload", err)
		return
	}

	results := h.calculatorService.ProfitLoss(req.Input)
	response := dto.ProfitLossResponse{
		Results:     results,
		BreakEven:   h.calculatorService.BreakEvenChart(req.Input, results),
		Sensitivity: h.calculatorService.Sensitivity(req.Input, results),
	}
	if req.Scenarios != nil {
		response.Scenarios = h.calculatorService.Scenarios(*req.Scenarios, req.Input.TaxRate)
	}

	c.JSON(http.StatusOK, response)
}

// Valuation handles POST /calc/valuation.
func (h *CalculatorHandler) Valuation(c *gin.Context) {
	var input dto.ValuationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid valuation payload", err)
		return
	}

	c.JSON(http.StatusOK, h.calculatorService.Valuation(input))
}
