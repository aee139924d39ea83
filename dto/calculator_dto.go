package dto

// QuickCalcRequest is the quick-calculator input: free-form items plus a
// tax rate in percent. Zero items is valid here and yields zero totals.
type QuickCalcRequest struct {
	Items   []LineItem `json:"items"`
	TaxRate float64    `json:"tax_rate"`
}

type QuickCalcResponse struct {
	Items     []LineItem `json:"items"`
	TaxRate   float64    `json:"tax_rate"`
	Subtotal  float64    `json:"subtotal"`
	TaxAmount float64    `json:"tax_amount"`
	Total     float64    `json:"total"`
}

// CalculationInput holds the profit/loss calculator form fields.
// TaxRate is in percent.
type CalculationInput struct {
	Revenue             float64 `json:"revenue"`
	FixedCosts          float64 `json:"fixed_costs"`
	VariableCostPerUnit float64 `json:"variable_cost_per_unit"`
	UnitsProduced       float64 `json:"units_produced"`
	SellingPricePerUnit float64 `json:"selling_price_per_unit"`
	TaxRate             float64 `json:"tax_rate"`
}

type ProfitLossResults struct {
	TotalVariableCosts float64 `json:"total_variable_costs"`
	TotalCosts         float64 `json:"total_costs"`
	GrossProfit        float64 `json:"gross_profit"`
	NetProfit          float64 `json:"net_profit"`
	ProfitMargin       float64 `json:"profit_margin"`
	BreakEvenUnits     float64 `json:"break_even_units"`
	BreakEvenRevenue   float64 `json:"break_even_revenue"`
	ROI                float64 `json:"roi"`
}

// ScenarioSet holds three independently editable variants of one figure.
type ScenarioSet struct {
	Optimistic  float64 `json:"optimistic"`
	Realistic   float64 `json:"realistic"`
	Pessimistic float64 `json:"pessimistic"`
}

type ScenarioInput struct {
	Revenue ScenarioSet `json:"revenue"`
	Costs   ScenarioSet `json:"costs"`
}

type ScenarioOutcome struct {
	Scenario string  `json:"scenario"`
	Revenue  float64 `json:"revenue"`
	Costs    float64 `json:"costs"`
	Profit   float64 `json:"profit"`
	Margin   float64 `json:"margin"`
}

type BreakEvenPoint struct {
	Units      float64 `json:"units"`
	Revenue    float64 `json:"revenue"`
	TotalCosts float64 `json:"total_costs"`
	Profit     float64 `json:"profit"`
}

type SensitivityRow struct {
	Variation     string  `json:"variation"`
	RevenueImpact float64 `json:"revenue_impact"`
	CostImpact    float64 `json:"cost_impact"`
}

type ProfitLossRequest struct {
	Input     CalculationInput `json:"input"`
	Scenarios *ScenarioInput   `json:"scenarios,omitempty"`
}

type ProfitLossResponse struct {
	Results     ProfitLossResults `json:"results"`
	Scenarios   []ScenarioOutcome `json:"scenarios,omitempty"`
	BreakEven   []BreakEvenPoint  `json:"break_even_chart"`
	Sensitivity []SensitivityRow  `json:"sensitivity"`
}

type ValuationInput struct {
	CompanyName       string  `json:"company_name"`
	Industry          string  `json:"industry,omitempty"`
	Revenue           float64 `json:"revenue"`
	NetIncome         float64 `json:"net_income"`
	EBITDA            float64 `json:"ebitda"`
	TotalAssets       float64 `json:"total_assets"`
	TotalLiabilities  float64 `json:"total_liabilities"`
	CashFlow          float64 `json:"cash_flow"`
	SharesOutstanding float64 `json:"shares_outstanding,omitempty"`
	DiscountRate      float64 `json:"discount_rate"`
	GrowthRate        float64 `json:"growth_rate"`
	PERatio           float64 `json:"pe_ratio"`
	EVEBITDAMultiple  float64 `json:"ev_ebitda_multiple"`
	RevenueMultiple   float64 `json:"revenue_multiple"`
}

type ValuationRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type ValuationResults struct {
	AssetBased       float64        `json:"asset_based"`
	DCF              float64        `json:"dcf"`
	PEValuation      float64        `json:"pe_valuation"`
	EVEBITDA         float64        `json:"ev_ebitda"`
	RevenueMultiple  float64        `json:"revenue_multiple"`
	BookValue        float64        `json:"book_value"`
	AverageValuation float64        `json:"average_valuation"`
	ValuationRange   ValuationRange `json:"valuation_range"`
}
