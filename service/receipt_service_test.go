package service

import (
	"strings"
	"testing"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/stretchr/testify/assert"
)

func TestExportCSV(t *testing.T) {
	service := NewReceiptService(nil, nil)

	record := dto.ReceiptRecord{
		Merchant:   "Starbucks",
		Date:       "01/15/2024",
		Total:      "$4.50",
		Category:   "Food & Dining",
		Confidence: 0.7,
		Items: []dto.ReceiptItem{
			{Name: "Caffe Latte", Price: "$4.50", Quantity: "1"},
		},
	}

	data, err := service.ExportCSV(&record)
	assert.NoError(t, err)

	csv := string(data)
	assert.Contains(t, csv, "Field,Value")
	assert.Contains(t, csv, "Merchant,Starbucks")
	assert.Contains(t, csv, "Date,01/15/2024")
	assert.Contains(t, csv, "Total,$4.50")
	assert.Contains(t, csv, "Category,Food & Dining")
	assert.Contains(t, csv, "Confidence,70%")
	assert.Contains(t, csv, "Item Name,Price,Quantity")
	assert.Contains(t, csv, "Caffe Latte,$4.50,1")
}

func TestExportCSVEmptyFields(t *testing.T) {
	service := NewReceiptService(nil, nil)

	record := dto.ReceiptRecord{
		Category:   "General",
		Confidence: 0.0,
	}

	data, err := service.ExportCSV(&record)
	assert.NoError(t, err)

	csv := string(data)
	assert.Contains(t, csv, "Merchant,N/A")
	assert.Contains(t, csv, "Date,N/A")
	assert.Contains(t, csv, "Total,N/A")
	assert.Contains(t, csv, "Confidence,0%")
}

func TestExportCSVColumnOrder(t *testing.T) {
	service := NewReceiptService(nil, nil)

	data, err := service.ExportCSV(&dto.ReceiptRecord{Category: "General"})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, "Field,Value", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Merchant,"))
	assert.True(t, strings.HasPrefix(lines[2], "Date,"))
	assert.True(t, strings.HasPrefix(lines[3], "Total,"))
	assert.True(t, strings.HasPrefix(lines[4], "Category,"))
	assert.True(t, strings.HasPrefix(lines[5], "Confidence,"))
	assert.Equal(t, "Items,", lines[7])
	assert.Equal(t, "Item Name,Price,Quantity", lines[8])
}
