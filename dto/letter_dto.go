package dto

type LetterData struct {
	Template         string `json:"template"`
	SenderName       string `json:"sender_name"`
	SenderTitle      string `json:"sender_title,omitempty"`
	SenderCompany    string `json:"sender_company,omitempty"`
	SenderAddress    string `json:"sender_address,omitempty"`
	SenderPhone      string `json:"sender_phone,omitempty"`
	SenderEmail      string `json:"sender_email,omitempty"`
	RecipientName    string `json:"recipient_name"`
	RecipientTitle   string `json:"recipient_title,omitempty"`
	RecipientCompany string `json:"recipient_company,omitempty"`
	RecipientAddress string `json:"recipient_address,omitempty"`
	Subject          string `json:"subject"`
	Body             string `json:"body"`
	Closing          string `json:"closing"`
}

func (l *LetterData) Validate() error {
	if l.SenderName == "" {
		return ErrSenderNameRequired
	}
	if l.RecipientName == "" {
		return ErrRecipientNameRequired
	}
	return nil
}

// LetterTemplate is a prefilled starting point for a letter.
type LetterTemplate struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Closing string `json:"closing"`
}

type LetterResponse struct {
	Letter string `json:"letter"`
}
