package dto

// ReceiptItem is one parsed line of a receipt. Prices are kept as the
// currency strings the parser saw, not parsed numbers.
type ReceiptItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity,omitempty"`
}

// ReceiptRecord is the immutable result of one scan. Optional fields stay
// empty when the heuristics find nothing; Confidence reflects how many of
// them were populated, not a statistical probability.
type ReceiptRecord struct {
	RawText    string        `json:"raw_text"`
	Merchant   string        `json:"merchant,omitempty"`
	Date       string        `json:"date,omitempty"`
	Total      string        `json:"total,omitempty"`
	Items      []ReceiptItem `json:"items,omitempty"`
	Category   string        `json:"category"`
	Confidence float64       `json:"confidence"`
}
