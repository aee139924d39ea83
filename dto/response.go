package dto

import "errors"

// Custom errors
var (
	ErrNoItems               = errors.New("invoice requires at least one line item")
	ErrLastItem              = errors.New("cannot remove the last remaining item")
	ErrItemIndexOutOfRange   = errors.New("item index out of range")
	ErrCompanyNameRequired   = errors.New("company name is required")
	ErrReportPeriodRequired  = errors.New("report period is required")
	ErrSenderNameRequired    = errors.New("sender name is required")
	ErrRecipientNameRequired = errors.New("recipient name is required")
	ErrUnknownLetterTemplate = errors.New("unknown letter template")
	ErrInsightsDisabled      = errors.New("insights API key not configured")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
