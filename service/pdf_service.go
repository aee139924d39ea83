package service

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/fintools-ai/fintools-api/dto"
)

// TemplateStyle is the visual variant an invoice is rendered with.
type TemplateStyle struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Font    string `json:"font"`
	AccentR int    `json:"-"`
	AccentG int    `json:"-"`
	AccentB int    `json:"-"`
}

const DefaultTemplate = "professional"

// templateStyles maps a template identifier to its style record. Unknown
// identifiers fall back to the professional style via StyleFor.
var templateStyles = map[string]TemplateStyle{
	"professional": {ID: "professional", Name: "Modern Professional", Font: "Helvetica", AccentR: 99, AccentG: 102, AccentB: 241},
	"modern":       {ID: "modern", Name: "Startup Simple", Font: "Helvetica", AccentR: 16, AccentG: 185, AccentB: 129},
	"creative":     {ID: "creative", Name: "Creative Agency", Font: "Times", AccentR: 236, AccentG: 72, AccentB: 153},
	"corporate":    {ID: "corporate", Name: "Corporate Elite", Font: "Arial", AccentR: 30, AccentG: 41, AccentB: 59},
	"minimal":      {ID: "minimal", Name: "Freelancer Pro", Font: "Arial", AccentR: 107, AccentG: 114, AccentB: 128},
}

// StyleFor resolves a template identifier, defaulting to professional.
func StyleFor(templateID string) TemplateStyle {
	if style, ok := templateStyles[templateID]; ok {
		return style
	}
	return templateStyles[DefaultTemplate]
}

// TemplateList returns all available styles for the template gallery.
func TemplateList() []TemplateStyle {
	order := []string{"professional", "modern", "creative", "corporate", "minimal"}
	styles := make([]TemplateStyle, 0, len(order))
	for _, id := range order {
		styles = append(styles, templateStyles[id])
	}
	return styles
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// InvoiceFilename derives the download filename from the template id.
func InvoiceFilename(templateID string) string {
	return StyleFor(templateID).ID + "-invoice.pdf"
}

// ReportFilename derives the download filename from the report header
// fields, replacing every non-alphanumeric character with an underscore.
func ReportFilename(report *dto.ReportData) string {
	company := nonAlphanumeric.ReplaceAllString(report.CompanyName, "_")
	period := nonAlphanumeric.ReplaceAllString(report.ReportPeriod, "_")
	return fmt.Sprintf("%s_%s_%s.pdf", company, report.ReportType, period)
}

// PDFService renders finished records into downloadable PDF documents.
// Rendering failures come back as errors, never as panics past the caller.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// RenderInvoice lays out an invoice in the given template style and
// serializes it.
func (s *PDFService) RenderInvoice(inv *dto.Invoice, templateID string) ([]byte, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	style := StyleFor(templateID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header: brand left, sender block right
	pdf.SetFont(style.Font, "B", 22)
	pdf.SetTextColor(style.AccentR, style.AccentG, style.AccentB)
	pdf.CellFormat(90, 10, "FinTools.AI", "", 0, "L", false, 0, "")

	pdf.SetFont(style.Font, "", 9)
	pdf.SetTextColor(107, 114, 128)
	for i, line := range []string{inv.From.Name, inv.From.Address, inv.From.City, inv.From.Email, inv.From.Phone} {
		if i > 0 {
			pdf.CellFormat(90, 4, "", "", 0, "L", false, 0, "")
		}
		pdf.CellFormat(90, 4, line, "", 1, "R", false, 0, "")
	}
	pdf.SetDrawColor(style.AccentR, style.AccentG, style.AccentB)
	pdf.SetLineWidth(0.6)
	pdf.Line(15, pdf.GetY()+3, 195, pdf.GetY()+3)
	pdf.Ln(8)

	// Title
	pdf.SetFont(style.Font, "B", 24)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(180, 11, "INVOICE", "", 1, "L", false, 0, "")
	pdf.SetFont(style.Font, "", 12)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(180, 6, "#"+inv.InvoiceNumber, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Bill-to block and dates
	pdf.SetFont(style.Font, "B", 11)
	pdf.SetTextColor(55, 65, 81)
	pdf.CellFormat(90, 6, "Bill To:", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, "Invoice Date: "+inv.Date, "", 1, "R", false, 0, "")
	pdf.SetFont(style.Font, "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(90, 5, inv.To.Name, "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, "Due Date: "+inv.DueDate, "", 1, "R", false, 0, "")
	pdf.CellFormat(90, 5, inv.To.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 5, inv.To.City, "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 5, inv.To.Email, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Items table
	pdf.SetFont(style.Font, "B", 10)
	pdf.SetFillColor(243, 244, 246)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(85, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont(style.Font, "", 10)
	pdf.SetTextColor(55, 65, 81)
	for _, item := range inv.Items {
		desc := truncateText(item.Description, 48)
		pdf.CellFormat(85, 7, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, trimNumber(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Totals box
	pdf.SetFont(style.Font, "", 11)
	pdf.CellFormat(110, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", inv.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(110, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Tax:", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", inv.Tax), "", 1, "R", false, 0, "")
	pdf.SetFont(style.Font, "B", 13)
	pdf.SetTextColor(style.AccentR, style.AccentG, style.AccentB)
	pdf.CellFormat(110, 9, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 9, "Total:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(35, 9, fmt.Sprintf("$%.2f", inv.Total), "T", 1, "R", false, 0, "")

	// Notes
	if inv.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont(style.Font, "B", 11)
		pdf.SetTextColor(31, 41, 55)
		pdf.CellFormat(180, 7, "Notes", "B", 1, "L", false, 0, "")
		pdf.SetFont(style.Font, "", 10)
		pdf.SetTextColor(107, 114, 128)
		pdf.MultiCell(180, 5, inv.Notes, "", "L", false)
	}

	// Footer
	pdf.SetY(-25)
	pdf.SetFont(style.Font, "", 9)
	pdf.SetTextColor(156, 163, 175)
	pdf.CellFormat(180, 5, "Thank you for your business! Generated with FinTools.AI Invoice Generator", "T", 1, "C", false, 0, "")

	return output(pdf)
}

// RenderReport lays out a financial report: revenue and expense tables
// followed by the income summary.
func (s *PDFService) RenderReport(report *dto.ReportData) ([]byte, error) {
	if err := report.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(180, 10, dto.ReportTypeTitle(report.ReportType), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(180, 7, report.ReportPeriod, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(71, 85, 105)
	pdf.CellFormat(180, 6, report.CompanyName, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(59, 130, 246)
	pdf.SetLineWidth(0.6)
	pdf.Line(15, pdf.GetY()+3, 195, pdf.GetY()+3)
	pdf.Ln(8)

	writeEntryTable(pdf, "Revenue Sources", revenueRows(report.Revenue))
	writeEntryTable(pdf, "Expenses", expenseRows(report.Expenses))

	// Summary
	pdf.Ln(4)
	pdf.SetFillColor(248, 250, 252)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(55, 65, 81)
	pdf.CellFormat(120, 8, "Total Revenue:", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 8, formatCurrency(report.TotalRevenue()), "1", 1, "R", true, 0, "")
	pdf.CellFormat(120, 8, "Total Expenses:", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 8, formatCurrency(report.TotalExpenses()), "1", 1, "R", true, 0, "")

	netIncome := report.NetIncome()
	pdf.SetFont("Helvetica", "B", 13)
	if netIncome >= 0 {
		pdf.SetTextColor(5, 150, 105)
	} else {
		pdf.SetTextColor(220, 38, 38)
	}
	pdf.CellFormat(120, 10, "Net Income:", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 10, formatCurrency(netIncome), "1", 1, "R", true, 0, "")

	// Notes
	if report.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(146, 64, 14)
		pdf.CellFormat(180, 7, "Additional Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(120, 53, 15)
		pdf.MultiCell(180, 5, report.Notes, "", "L", false)
	}

	// Footer
	pdf.SetY(-22)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(156, 163, 175)
	footer := fmt.Sprintf("Generated on %s - FinTools.AI Financial Report Generator", time.Now().Format("01/02/2006"))
	pdf.CellFormat(180, 5, footer, "T", 1, "C", false, 0, "")

	return output(pdf)
}

type entryRow struct {
	category    string
	description string
	amount      float64
}

func revenueRows(items []dto.RevenueItem) []entryRow {
	rows := make([]entryRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, entryRow{item.Category, item.Description, item.Amount})
	}
	return rows
}

func expenseRows(items []dto.ExpenseItem) []entryRow {
	rows := make([]entryRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, entryRow{item.Category, item.Description, item.Amount})
	}
	return rows
}

func writeEntryTable(pdf *gofpdf.Fpdf, title string, rows []entryRow) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(180, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(248, 250, 252)
	pdf.SetTextColor(55, 65, 81)
	pdf.CellFormat(60, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(75, 85, 99)
	for _, row := range rows {
		description := row.description
		if description == "" {
			description = "-"
		}
		description = truncateText(description, 35)
		pdf.CellFormat(60, 6, row.category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, formatCurrency(row.amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func formatCurrency(amount float64) string {
	return "$" + humanizeAmount(amount)
}

// humanizeAmount formats with thousands separators and two decimals.
func humanizeAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart := s[:len(s)-3], s[len(s)-3:]
	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	result := string(out) + fracPart
	if negative {
		result = "-" + result
	}
	return result
}

// truncateText shortens overlong cell text on rune boundaries.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func trimNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf serialization failed: %w", err)
	}
	return buf.Bytes(), nil
}
