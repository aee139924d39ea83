package dto

import "time"

// DefaultTaxRate is the tax fraction applied when the caller does not supply one.
const DefaultTaxRate = 0.10

type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
}

// LineItem is a single invoice row. Amount is always Quantity * Rate.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	InvoiceNumber string     `json:"invoice_number"`
	Date          string     `json:"date"`
	DueDate       string     `json:"due_date"`
	From          Party      `json:"from"`
	To            Party      `json:"to"`
	Items         []LineItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	Notes         string     `json:"notes,omitempty"`
}

// Recalculate restores the derived-field invariants after any item mutation:
// every amount is quantity * rate, subtotal is the sum of amounts, tax is
// subtotal * taxRate (a fraction, e.g. 0.10) and total is subtotal + tax.
func (inv *Invoice) Recalculate(taxRate float64) {
	if taxRate < 0 || taxRate != taxRate {
		taxRate = 0
	}
	var subtotal float64
	for i := range inv.Items {
		inv.Items[i].Amount = inv.Items[i].Quantity * inv.Items[i].Rate
		subtotal += inv.Items[i].Amount
	}
	inv.Subtotal = subtotal
	inv.Tax = subtotal * taxRate
	inv.Total = inv.Subtotal + inv.Tax
}

// AddItem appends a blank row and recomputes totals.
func (inv *Invoice) AddItem() {
	inv.Items = append(inv.Items, LineItem{Quantity: 1})
	inv.Recalculate(DefaultTaxRate)
}

// RemoveItem deletes the row at index. An invoice always keeps at least
// one row, so removing the last remaining item is rejected.
func (inv *Invoice) RemoveItem(index int) error {
	if index < 0 || index >= len(inv.Items) {
		return ErrItemIndexOutOfRange
	}
	if len(inv.Items) == 1 {
		return ErrLastItem
	}
	inv.Items = append(inv.Items[:index], inv.Items[index+1:]...)
	inv.Recalculate(DefaultTaxRate)
	return nil
}

// SetItem replaces the row at index and recomputes totals.
func (inv *Invoice) SetItem(index int, item LineItem) error {
	if index < 0 || index >= len(inv.Items) {
		return ErrItemIndexOutOfRange
	}
	inv.Items[index] = item
	inv.Recalculate(DefaultTaxRate)
	return nil
}

// Validate checks the invoice is exportable.
func (inv *Invoice) Validate() error {
	if len(inv.Items) == 0 {
		return ErrNoItems
	}
	return nil
}

// SampleInvoice returns the default record a fresh editor screen starts from.
func SampleInvoice() Invoice {
	now := time.Now()
	inv := Invoice{
		InvoiceNumber: "INV-" + now.Format("2006") + "-001",
		Date:          now.Format("2006-01-02"),
		DueDate:       now.AddDate(0, 0, 30).Format("2006-01-02"),
		From: Party{
			Name:    "Your Company Name",
			Address: "123 Business Street",
			City:    "Business City, BC 12345",
			Email:   "contact@yourcompany.com",
			Phone:   "+1 (555) 123-4567",
		},
		To: Party{
			Name:    "Client Company",
			Address: "456 Client Avenue",
			City:    "Client City, CC 67890",
			Email:   "billing@clientcompany.com",
		},
		Items: []LineItem{
			{Description: "Web Development Services", Quantity: 40, Rate: 75.00},
			{Description: "Design Consultation", Quantity: 10, Rate: 100.00},
			{Description: "Project Management", Quantity: 20, Rate: 50.00},
		},
		Notes: "Payment is due within 30 days. Thank you for your business!",
	}
	inv.Recalculate(DefaultTaxRate)
	return inv
}

// HandoffPayload is the one-shot record the quick calculator hands to the
// invoice editor. It lives in the mailbox until consumed exactly once.
type HandoffPayload struct {
	Items     []LineItem `json:"items"`
	TaxRate   float64    `json:"tax_rate"` // percent, e.g. 10
	Subtotal  float64    `json:"subtotal"`
	TaxAmount float64    `json:"tax_amount"`
	Total     float64    `json:"total"`
}

// ApplyTo overlays the calculated items and totals onto an invoice,
// leaving the party and date fields untouched.
func (p *HandoffPayload) ApplyTo(inv *Invoice) {
	inv.Items = p.Items
	inv.Subtotal = p.Subtotal
	inv.Tax = p.TaxAmount
	inv.Total = p.Total
}
