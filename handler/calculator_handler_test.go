package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/fintools-ai/fintools-api/service"
)

func setupCalculatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCalculatorHandler(service.NewCalculatorService())

	router := gin.New()
	router.POST("/calc/invoice", h.QuickCalc)
	router.POST("/calc/profit-loss", h.ProfitLoss)
	router.POST("/calc/valuation", h.Valuation)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestQuickCalcEndpoint(t *testing.T) {
	router := setupCalculatorRouter()

	w := postJSON(t, router, "/calc/invoice", dto.QuickCalcRequest{
		Items: []dto.LineItem{
			{Description: "Product A", Quantity: 1, Rate: 100},
		},
		TaxRate: 10,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuickCalcResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100.0, resp.Subtotal)
	assert.Equal(t, 10.0, resp.TaxAmount)
	assert.Equal(t, 110.0, resp.Total)
}

func TestQuickCalcEndpointBadPayload(t *testing.T) {
	router := setupCalculatorRouter()

	req := httptest.NewRequest(http.MethodPost, "/calc/invoice", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "VALIDATION_FAILED", errResp.Error)
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
}

func TestProfitLossEndpoint(t *testing.T) {
	router := setupCalculatorRouter()

	w := postJSON(t, router, "/calc/profit-loss", dto.ProfitLossRequest{
		Input: dto.CalculationInput{
			Revenue:             100000,
			FixedCosts:          25000,
			VariableCostPerUnit: 15,
			UnitsProduced:       1000,
			SellingPricePerUnit: 50,
			TaxRate:             25,
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfitLossResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 15000.0, resp.Results.TotalVariableCosts)
	assert.Equal(t, 40000.0, resp.Results.TotalCosts)
	assert.Equal(t, 45000.0, resp.Results.NetProfit)
	assert.Equal(t, 715.0, resp.Results.BreakEvenUnits)
	assert.NotEmpty(t, resp.BreakEven)
	assert.Len(t, resp.Sensitivity, 7)
	assert.Empty(t, resp.Scenarios)
}

func TestProfitLossEndpointWithScenarios(t *testing.T) {
	router := setupCalculatorRouter()

	w := postJSON(t, router, "/calc/profit-loss", dto.ProfitLossRequest{
		Input: dto.CalculationInput{
			Revenue:    100000,
			FixedCosts: 25000,
			TaxRate:    25,
		},
		Scenarios: &dto.ScenarioInput{
			Revenue: dto.ScenarioSet{Optimistic: 120000, Realistic: 100000, Pessimistic: 80000},
			Costs:   dto.ScenarioSet{Optimistic: 35000, Realistic: 40000, Pessimistic: 45000},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfitLossResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Scenarios, 3)
	assert.Equal(t, "Optimistic", resp.Scenarios[0].Scenario)
}

func TestValuationEndpoint(t *testing.T) {
	router := setupCalculatorRouter()

	w := postJSON(t, router, "/calc/valuation", dto.ValuationInput{
		CompanyName:      "Acme Corp",
		Revenue:          1000000,
		NetIncome:        50000,
		EBITDA:           80000,
		TotalAssets:      500000,
		TotalLiabilities: 200000,
		CashFlow:         60000,
		DiscountRate:     10,
		GrowthRate:       3,
		PERatio:          15,
		EVEBITDAMultiple: 8,
		RevenueMultiple:  0.8,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var results dto.ValuationResults
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Equal(t, 300000.0, results.AssetBased)
	assert.Equal(t, 750000.0, results.PEValuation)
	assert.Equal(t, 640000.0, results.EVEBITDA)
	assert.Equal(t, 800000.0, results.RevenueMultiple)
	assert.True(t, results.AverageValuation > 0)
}
