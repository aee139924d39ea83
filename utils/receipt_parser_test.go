package utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReceiptText(t *testing.T) {
	text := `Starbucks
Caffe Latte 4.50
Blueberry Muffin 3.25
Total: 7.75`

	record := ParseReceiptText(text)

	assert.Equal(t, "Starbucks", record.Merchant)
	assert.Equal(t, "$7.75", record.Total)
	assert.Len(t, record.Items, 2)
	assert.Equal(t, "Caffe Latte", record.Items[0].Name)
	assert.Equal(t, "$4.50", record.Items[0].Price)
	assert.Equal(t, "1", record.Items[0].Quantity)
	assert.Equal(t, "Blueberry Muffin", record.Items[1].Name)
	assert.Equal(t, "$3.25", record.Items[1].Price)
}

func TestParseReceiptTextDate(t *testing.T) {
	record := ParseReceiptText("Corner Shop\nVisited on 01/15/2024, thanks!\nTotal: 9.99")

	assert.Equal(t, "01/15/2024", record.Date)
}

func TestParseReceiptTextTotalFallback(t *testing.T) {
	// No labelled total: the largest currency-looking number wins
	text := `Corner Shop
Bread 2.50
Cheese 6.80
Milk 1.20`

	record := ParseReceiptText(text)

	assert.Equal(t, "$6.80", record.Total)
}

func TestParseReceiptTextItemCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("Mega Mart\n")
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&b, "Item number %d at 1.%02d\n", i, i)
	}

	record := ParseReceiptText(b.String())

	assert.Len(t, record.Items, 10)
}

func TestParseReceiptTextEmpty(t *testing.T) {
	record := ParseReceiptText("")

	assert.Empty(t, record.Merchant)
	assert.Empty(t, record.Date)
	assert.Empty(t, record.Total)
	assert.Empty(t, record.Items)
}

func TestCategorizeReceipt(t *testing.T) {
	assert.Equal(t, "Food & Dining", CategorizeReceipt("some receipt", "Starbucks #1234"))
	assert.Equal(t, "Food & Dining", CategorizeReceipt("Pizza Palace\nLarge pizza 12.00", ""))
	assert.Equal(t, "Groceries", CategorizeReceipt("fresh produce dept", "Corner Shop"))
	assert.Equal(t, "Transportation", CategorizeReceipt("fuel 40.00", "Roadside"))
	assert.Equal(t, "Healthcare", CategorizeReceipt("receipt", "CVS Pharmacy 221"))
	assert.Equal(t, "Shopping", CategorizeReceipt("receipt", "Best Buy"))
	assert.Equal(t, "General", CategorizeReceipt("nothing recognizable", "Acme"))
}

func TestScoreConfidence(t *testing.T) {
	full := ParseReceiptText("Starbucks\nSeen 01/15/2024 ok\nCaffe Latte 4.50\nTotal: 4.50")
	assert.InDelta(t, 1.0, ScoreConfidence(full), 1e-9)

	partial := ParseReceiptText("Starbucks\nTotal: 4.50")
	assert.InDelta(t, 0.7, ScoreConfidence(partial), 1e-9)

	empty := ParseReceiptText("")
	assert.InDelta(t, 0.3, ScoreConfidence(empty), 1e-9)
}
