package service

import "github.com/fintools-ai/fintools-api/dto"

// PortfolioService aggregates investment holdings into the portfolio
// overview figures.
type PortfolioService struct{}

func NewPortfolioService() *PortfolioService {
	return &PortfolioService{}
}

// Summarize derives each holding's value and change from quantity,
// average cost and current price, then the portfolio totals and the
// allocation by asset type. The total change percentage is measured
// against the invested amount (current value minus change).
func (s *PortfolioService) Summarize(assets []dto.PortfolioAsset) dto.PortfolioSummary {
	var totalValue, totalChange float64
	for i := range assets {
		quantity := nz(assets[i].Quantity)
		cost := quantity * nz(assets[i].AvgCost)

		assets[i].Value = quantity * nz(assets[i].CurrentPrice)
		assets[i].Change = assets[i].Value - cost
		assets[i].ChangePercent = 0
		if cost != 0 {
			assets[i].ChangePercent = assets[i].Change / cost * 100
		}

		totalValue += assets[i].Value
		totalChange += assets[i].Change
	}

	totalChangePercent := 0.0
	if invested := totalValue - totalChange; invested != 0 {
		totalChangePercent = totalChange / invested * 100
	}

	// Allocation keeps the order asset types first appear in.
	var allocation []dto.PortfolioAllocation
	index := make(map[string]int)
	for _, asset := range assets {
		if i, ok := index[asset.Type]; ok {
			allocation[i].Value += asset.Value
			continue
		}
		index[asset.Type] = len(allocation)
		allocation = append(allocation, dto.PortfolioAllocation{Type: asset.Type, Value: asset.Value})
	}

	return dto.PortfolioSummary{
		Assets:             assets,
		TotalValue:         totalValue,
		TotalChange:        totalChange,
		TotalChangePercent: totalChangePercent,
		Allocation:         allocation,
	}
}
