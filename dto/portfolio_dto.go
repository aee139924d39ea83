package dto

// PortfolioAsset is one holding in the investment tracker. Quantity,
// average cost and current price are caller input; Value, Change and
// ChangePercent are derived from them.
type PortfolioAsset struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Symbol        string  `json:"symbol,omitempty"`
	Quantity      float64 `json:"quantity"`
	AvgCost       float64 `json:"avg_cost"`
	CurrentPrice  float64 `json:"current_price"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// PortfolioAllocation is the combined value of all holdings of one asset
// type.
type PortfolioAllocation struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type PortfolioSummary struct {
	Assets             []PortfolioAsset      `json:"assets"`
	TotalValue         float64               `json:"total_value"`
	TotalChange        float64               `json:"total_change"`
	TotalChangePercent float64               `json:"total_change_percent"`
	Allocation         []PortfolioAllocation `json:"allocation"`
}
