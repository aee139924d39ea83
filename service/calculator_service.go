package service

import (
	"math"
	"strconv"

	"github.com/fintools-ai/fintools-api/dto"
)

// CalculatorService holds the pure financial computations shared by the
// quick calculator, the profit/loss calculator and the valuation tool.
// Every function is total: NaN, Inf and missing inputs count as zero and
// no ordinary numeric input can make them fail.
type CalculatorService struct{}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// nz collapses NaN and Inf to zero so form input can never poison a result.
func nz(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// QuickCalc computes invoice totals for a free-form item list. The tax
// rate is in percent. An empty list is valid and yields zero totals.
func (s *CalculatorService) QuickCalc(items []dto.LineItem, taxRatePercent float64) dto.QuickCalcResponse {
	taxRatePercent = nz(taxRatePercent)
	if taxRatePercent < 0 {
		taxRatePercent = 0
	}

	var subtotal float64
	for i := range items {
		items[i].Amount = nz(items[i].Quantity) * nz(items[i].Rate)
		subtotal += items[i].Amount
	}

	taxAmount := subtotal * taxRatePercent / 100
	return dto.QuickCalcResponse{
		Items:     items,
		TaxRate:   taxRatePercent,
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}

// BreakEvenUnits is the quantity at which contribution margin covers the
// fixed costs exactly, rounded up to whole units. When the selling price
// does not exceed the variable cost there is no finite break-even and the
// result is 0, never NaN or Inf.
func BreakEvenUnits(fixedCosts, variableCostPerUnit, sellingPricePerUnit float64) float64 {
	margin := nz(sellingPricePerUnit) - nz(variableCostPerUnit)
	if margin <= 0 {
		return 0
	}
	return math.Ceil(nz(fixedCosts) / margin)
}

// ROI is net profit over fixed costs in percent, defined as 0 when there
// are no fixed costs.
func ROI(netProfit, fixedCosts float64) float64 {
	fixedCosts = nz(fixedCosts)
	if fixedCosts == 0 {
		return 0
	}
	return nz(netProfit) / fixedCosts * 100
}

// ProfitLoss derives the full result set from the calculator form fields.
func (s *CalculatorService) ProfitLoss(in dto.CalculationInput) dto.ProfitLossResults {
	revenue := nz(in.Revenue)
	fixedCosts := nz(in.FixedCosts)
	variableCost := nz(in.VariableCostPerUnit)
	units := nz(in.UnitsProduced)
	price := nz(in.SellingPricePerUnit)
	taxRate := nz(in.TaxRate)

	totalVariableCosts := variableCost * units
	totalCosts := fixedCosts + totalVariableCosts
	grossProfit := revenue - totalCosts
	netProfit := grossProfit * (1 - taxRate/100)

	profitMargin := 0.0
	if revenue != 0 {
		profitMargin = netProfit / revenue * 100
	}

	// Break-even revenue comes from the unrounded unit count; only the
	// reported unit figure is rounded up.
	breakEvenRevenue := 0.0
	if margin := price - variableCost; margin > 0 {
		breakEvenRevenue = fixedCosts / margin * price
	}

	return dto.ProfitLossResults{
		TotalVariableCosts: totalVariableCosts,
		TotalCosts:         totalCosts,
		GrossProfit:        grossProfit,
		NetProfit:          netProfit,
		ProfitMargin:       profitMargin,
		BreakEvenUnits:     BreakEvenUnits(fixedCosts, variableCost, price),
		BreakEvenRevenue:   breakEvenRevenue,
		ROI:                ROI(netProfit, fixedCosts),
	}
}

// Scenarios computes the profit outcome of each revenue/cost variant
// independently. No invariant links the variants.
func (s *CalculatorService) Scenarios(in dto.ScenarioInput, taxRatePercent float64) []dto.ScenarioOutcome {
	taxRatePercent = nz(taxRatePercent)

	variants := []struct {
		name    string
		revenue float64
		costs   float64
	}{
		{"Optimistic", in.Revenue.Optimistic, in.Costs.Optimistic},
		{"Realistic", in.Revenue.Realistic, in.Costs.Realistic},
		{"Pessimistic", in.Revenue.Pessimistic, in.Costs.Pessimistic},
	}

	outcomes := make([]dto.ScenarioOutcome, 0, len(variants))
	for _, v := range variants {
		revenue := nz(v.revenue)
		costs := nz(v.costs)
		profit := (revenue - costs) * (1 - taxRatePercent/100)
		margin := 0.0
		if revenue != 0 {
			margin = profit / revenue * 100
		}
		outcomes = append(outcomes, dto.ScenarioOutcome{
			Scenario: v.name,
			Revenue:  revenue,
			Costs:    costs,
			Profit:   profit,
			Margin:   margin,
		})
	}
	return outcomes
}

// BreakEvenChart samples revenue, total cost and profit across a unit
// range wide enough to show the break-even crossing.
func (s *CalculatorService) BreakEvenChart(in dto.CalculationInput, results dto.ProfitLossResults) []dto.BreakEvenPoint {
	units := nz(in.UnitsProduced)
	price := nz(in.SellingPricePerUnit)
	variableCost := nz(in.VariableCostPerUnit)
	fixedCosts := nz(in.FixedCosts)

	maxUnits := math.Max(units*1.5, results.BreakEvenUnits) * 1.2
	if maxUnits <= 0 {
		return nil
	}
	step := maxUnits / 10

	var points []dto.BreakEvenPoint
	for u := 0.0; u <= maxUnits; u += step {
		revenue := u * price
		totalCosts := fixedCosts + u*variableCost
		points = append(points, dto.BreakEvenPoint{
			Units:      math.Round(u),
			Revenue:    revenue,
			TotalCosts: totalCosts,
			Profit:     revenue - totalCosts,
		})
	}
	return points
}

// Sensitivity varies revenue and total costs by fixed percentages around
// the base case. The revenue column is the profit delta with both sides
// moved together; the cost column isolates the cost movement alone.
func (s *CalculatorService) Sensitivity(in dto.CalculationInput, results dto.ProfitLossResults) []dto.SensitivityRow {
	baseProfit := results.NetProfit
	revenue := nz(in.Revenue)
	totalCosts := nz(in.FixedCosts) + nz(in.VariableCostPerUnit)*nz(in.UnitsProduced)
	taxFactor := 1 - nz(in.TaxRate)/100

	variations := []float64{-30, -20, -10, 0, 10, 20, 30}
	rows := make([]dto.SensitivityRow, 0, len(variations))
	for _, variation := range variations {
		changedRevenue := revenue * (1 + variation/100)
		changedCosts := totalCosts * (1 + variation/100)

		label := "%"
		if variation > 0 {
			label = "+" + formatVariation(variation) + label
		} else {
			label = formatVariation(variation) + label
		}

		rows = append(rows, dto.SensitivityRow{
			Variation:     label,
			RevenueImpact: (changedRevenue-changedCosts)*taxFactor - baseProfit,
			CostImpact:    baseProfit - (revenue-changedCosts)*taxFactor,
		})
	}
	return rows
}

func formatVariation(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Valuation runs the five valuation methods and aggregates across the
// ones that produced a positive figure.
func (s *CalculatorService) Valuation(in dto.ValuationInput) dto.ValuationResults {
	assetBased := math.Max(0, nz(in.TotalAssets)-nz(in.TotalLiabilities))

	dcf := 0.0
	discount := nz(in.DiscountRate) / 100
	growth := nz(in.GrowthRate) / 100
	if discount > growth {
		terminalValue := nz(in.CashFlow) * (1 + growth) / (discount - growth)
		dcf = terminalValue / math.Pow(1+discount, 5)
	}

	peValuation := nz(in.NetIncome) * nz(in.PERatio)
	evEBITDA := nz(in.EBITDA) * nz(in.EVEBITDAMultiple)
	revenueMultiple := nz(in.Revenue) * nz(in.RevenueMultiple)

	var positive []float64
	for _, v := range []float64{assetBased, dcf, peValuation, evEBITDA, revenueMultiple} {
		if v > 0 {
			positive = append(positive, v)
		}
	}

	results := dto.ValuationResults{
		AssetBased:      assetBased,
		DCF:             dcf,
		PEValuation:     peValuation,
		EVEBITDA:        evEBITDA,
		RevenueMultiple: revenueMultiple,
		BookValue:       assetBased,
	}

	if len(positive) == 0 {
		return results
	}

	min, max, sum := positive[0], positive[0], 0.0
	for _, v := range positive {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	results.AverageValuation = sum / float64(len(positive))
	results.ValuationRange = dto.ValuationRange{Min: min, Max: max}
	return results
}
