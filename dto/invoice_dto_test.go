package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalculate(t *testing.T) {
	inv := Invoice{
		Items: []LineItem{
			{Description: "Consulting", Quantity: 10, Rate: 100},
			{Description: "Hosting", Quantity: 2, Rate: 25},
		},
	}

	inv.Recalculate(0.10)

	assert.Equal(t, 1000.0, inv.Items[0].Amount)
	assert.Equal(t, 50.0, inv.Items[1].Amount)
	assert.Equal(t, 1050.0, inv.Subtotal)
	assert.Equal(t, 105.0, inv.Tax)
	assert.Equal(t, 1155.0, inv.Total)
}

func TestRecalculateBadTaxRate(t *testing.T) {
	inv := Invoice{
		Items: []LineItem{{Quantity: 1, Rate: 100}},
	}

	// Negative and NaN rates are treated as zero
	inv.Recalculate(-0.5)
	assert.Equal(t, 100.0, inv.Total)

	nan := 0.0
	inv.Recalculate(nan / nan)
	assert.Equal(t, 100.0, inv.Total)
}

func TestAddItem(t *testing.T) {
	inv := SampleInvoice()

	inv.AddItem()

	assert.Len(t, inv.Items, 4)
	assert.Equal(t, 1.0, inv.Items[3].Quantity)
	assert.Equal(t, 0.0, inv.Items[3].Amount)
}

func TestRemoveItem(t *testing.T) {
	inv := SampleInvoice()

	err := inv.RemoveItem(1)

	assert.NoError(t, err)
	assert.Len(t, inv.Items, 2)
	assert.Equal(t, "Project Management", inv.Items[1].Description)
	assert.Equal(t, 4000.0, inv.Subtotal)
}

func TestRemoveLastItem(t *testing.T) {
	inv := Invoice{
		Items: []LineItem{{Quantity: 1, Rate: 50}},
	}

	err := inv.RemoveItem(0)

	assert.ErrorIs(t, err, ErrLastItem)
	assert.Len(t, inv.Items, 1)
}

func TestRemoveItemOutOfRange(t *testing.T) {
	inv := SampleInvoice()

	assert.ErrorIs(t, inv.RemoveItem(-1), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, inv.RemoveItem(3), ErrItemIndexOutOfRange)
}

func TestSetItem(t *testing.T) {
	inv := SampleInvoice()

	err := inv.SetItem(0, LineItem{Description: "Retainer", Quantity: 1, Rate: 500})

	assert.NoError(t, err)
	assert.Equal(t, 500.0, inv.Items[0].Amount)
	assert.Equal(t, 2500.0, inv.Subtotal)
}

func TestSampleInvoice(t *testing.T) {
	inv := SampleInvoice()

	assert.NoError(t, inv.Validate())
	assert.Len(t, inv.Items, 3)
	assert.Equal(t, 5000.0, inv.Subtotal)
	assert.Equal(t, 500.0, inv.Tax)
	assert.Equal(t, 5500.0, inv.Total)
}

func TestHandoffApplyTo(t *testing.T) {
	inv := SampleInvoice()
	payload := HandoffPayload{
		Items: []LineItem{
			{Description: "Product A", Quantity: 1, Rate: 100, Amount: 100},
		},
		TaxRate:   10,
		Subtotal:  100,
		TaxAmount: 10,
		Total:     110,
	}

	payload.ApplyTo(&inv)

	assert.Len(t, inv.Items, 1)
	assert.Equal(t, 100.0, inv.Subtotal)
	assert.Equal(t, 10.0, inv.Tax)
	assert.Equal(t, 110.0, inv.Total)
	assert.Equal(t, "Client Company", inv.To.Name)
}
