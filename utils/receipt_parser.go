package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fintools-ai/fintools-api/dto"
)

const maxReceiptItems = 10

var (
	priceRegex = regexp.MustCompile(`\$?\d+\.?\d{0,2}`)
	dateRegex  = regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`)
	totalRegex = regexp.MustCompile(`(?i)(?:total|amount|sum)[\s:]*\$?(\d+\.?\d{0,2})`)
)

// ParseReceiptText extracts merchant, date, total and line items from raw
// OCR output. Every field is best-effort: a pattern that never matches
// leaves its field empty rather than failing the parse.
func ParseReceiptText(text string) dto.ReceiptRecord {
	lines := nonEmptyLines(text)

	record := dto.ReceiptRecord{RawText: text}

	// Merchant is usually the first meaningful line
	if len(lines) > 0 {
		record.Merchant = lines[0]
	}

	record.Date = dateRegex.FindString(text)
	record.Total = extractTotal(text)
	record.Items = extractItems(lines, record.Merchant)

	return record
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractTotal looks for a labelled total first, then falls back to the
// largest currency-looking number anywhere in the text.
func extractTotal(text string) string {
	if matches := totalRegex.FindStringSubmatch(text); len(matches) > 1 {
		return "$" + matches[1]
	}

	var max float64
	found := false
	for _, raw := range priceRegex.FindAllString(text, -1) {
		value, err := strconv.ParseFloat(strings.TrimPrefix(raw, "$"), 64)
		if err != nil {
			continue
		}
		if !found || value > max {
			max = value
			found = true
		}
	}
	if !found {
		return ""
	}
	return fmt.Sprintf("$%.2f", max)
}

// extractItems treats every line that carries a currency token as a
// candidate item, skipping the merchant line and anything mentioning the
// total. The trailing price on the line is the item price, the remainder
// the name. Capped at maxReceiptItems to bound OCR noise.
func extractItems(lines []string, merchant string) []dto.ReceiptItem {
	var items []dto.ReceiptItem

	for _, line := range lines {
		prices := priceRegex.FindAllString(line, -1)
		if len(prices) == 0 || strings.Contains(strings.ToLower(line), "total") || len(line) <= 3 {
			continue
		}

		price := prices[len(prices)-1]
		name := strings.TrimSpace(priceRegex.ReplaceAllString(line, ""))

		if len(name) <= 1 || strings.EqualFold(name, merchant) {
			continue
		}

		if !strings.HasPrefix(price, "$") {
			price = "$" + price
		}
		items = append(items, dto.ReceiptItem{
			Name:     name,
			Price:    price,
			Quantity: "1",
		})
	}

	if len(items) > maxReceiptItems {
		items = items[:maxReceiptItems]
	}
	return items
}

// categoryRule matches a receipt against one spending category. Keywords
// are checked against the whole text, merchant keywords against the
// merchant line only.
type categoryRule struct {
	name             string
	keywords         []string
	merchantKeywords []string
}

// Rules are checked in order; the first match wins.
var categoryRules = []categoryRule{
	{
		name:             "Food & Dining",
		keywords:         []string{"restaurant", "cafe", "coffee", "pizza", "food", "meal"},
		merchantKeywords: []string{"mcdonald", "starbucks"},
	},
	{
		name:             "Groceries",
		keywords:         []string{"grocery", "supermarket", "produce"},
		merchantKeywords: []string{"walmart", "target", "safeway"},
	},
	{
		name:             "Transportation",
		keywords:         []string{"gas", "fuel", "station"},
		merchantKeywords: []string{"shell", "exxon", "chevron"},
	},
	{
		name:             "Healthcare",
		keywords:         []string{"pharmacy", "drug"},
		merchantKeywords: []string{"cvs", "walgreens"},
	},
	{
		name:             "Shopping",
		keywords:         []string{"clothing", "retail", "store"},
		merchantKeywords: []string{"amazon", "best buy"},
	},
}

// CategorizeReceipt assigns the first matching spending category,
// defaulting to General.
func CategorizeReceipt(text, merchant string) string {
	lowerText := strings.ToLower(text)
	lowerMerchant := strings.ToLower(merchant)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowerText, kw) {
				return rule.name
			}
		}
		for _, kw := range rule.merchantKeywords {
			if lowerMerchant != "" && strings.Contains(lowerMerchant, kw) {
				return rule.name
			}
		}
	}
	return "General"
}

// ScoreConfidence estimates extraction completeness: a 0.3 base plus 0.2
// per populated optional field and 0.1 when any items were found, capped
// at 1.0.
func ScoreConfidence(record dto.ReceiptRecord) float64 {
	confidence := 0.3
	if record.Merchant != "" {
		confidence += 0.2
	}
	if record.Date != "" {
		confidence += 0.2
	}
	if record.Total != "" {
		confidence += 0.2
	}
	if len(record.Items) > 0 {
		confidence += 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
