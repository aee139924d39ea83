package dto

type RevenueItem struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type ExpenseItem struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type ReportData struct {
	CompanyName  string        `json:"company_name"`
	ReportPeriod string        `json:"report_period"`
	ReportType   string        `json:"report_type"`
	Revenue      []RevenueItem `json:"revenue"`
	Expenses     []ExpenseItem `json:"expenses"`
	Notes        string        `json:"notes,omitempty"`
}

// Validate rejects reports missing the required header fields. No partial
// document is ever produced for an invalid report.
func (r *ReportData) Validate() error {
	if r.CompanyName == "" {
		return ErrCompanyNameRequired
	}
	if r.ReportPeriod == "" {
		return ErrReportPeriodRequired
	}
	return nil
}

// TotalRevenue sums the revenue entries. Aggregation is by summation only.
func (r *ReportData) TotalRevenue() float64 {
	var sum float64
	for _, item := range r.Revenue {
		sum += item.Amount
	}
	return sum
}

func (r *ReportData) TotalExpenses() float64 {
	var sum float64
	for _, item := range r.Expenses {
		sum += item.Amount
	}
	return sum
}

func (r *ReportData) NetIncome() float64 {
	return r.TotalRevenue() - r.TotalExpenses()
}

// ReportTypeTitle maps a report type key to its printable title.
func ReportTypeTitle(reportType string) string {
	switch reportType {
	case "income-statement":
		return "Income Statement"
	case "profit-loss":
		return "Profit & Loss Report"
	case "cash-flow":
		return "Cash Flow Statement"
	case "financial-summary":
		return "Financial Summary"
	default:
		return "Financial Report"
	}
}
