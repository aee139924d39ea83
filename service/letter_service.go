package service

import (
	"strings"
	"time"

	"github.com/fintools-ai/fintools-api/dto"
)

// letterTemplates are the prefilled starting points for a business letter,
// keyed by template identifier.
var letterTemplates = map[string]dto.LetterTemplate{
	"business_inquiry": {
		Key:     "business_inquiry",
		Name:    "Business Inquiry",
		Subject: "Inquiry About Your Services",
		Body: `Dear [Recipient Name],

I hope this letter finds you well. I am writing to inquire about the services your company provides.

We are currently seeking a reliable partner for [specific service/product], and your company came highly recommended. We would appreciate the opportunity to discuss how we might work together.

Could you please provide information about:
- Your service offerings and capabilities
- Pricing structure and terms
- Timeline for project completion
- References from similar clients

We look forward to hearing from you and potentially establishing a mutually beneficial business relationship.

Thank you for your time and consideration.`,
		Closing: "Sincerely",
	},
	"complaint": {
		Key:     "complaint",
		Name:    "Formal Complaint",
		Subject: "Formal Complaint Regarding [Issue]",
		Body: `Dear [Recipient Name],

I am writing to formally register a complaint regarding [specific issue/incident] that occurred on [date].

The details of the situation are as follows:
[Describe the issue in detail, including dates, times, and any relevant circumstances]

This situation has caused [describe impact/consequences], and I believe it requires immediate attention and resolution.

I would appreciate:
- A prompt acknowledgment of this complaint
- An investigation into the matter
- A clear timeline for resolution
- Steps to prevent similar issues in the future

I trust that this matter will be handled professionally and expeditiously. I look forward to your prompt response.`,
		Closing: "Sincerely",
	},
	"recommendation": {
		Key:     "recommendation",
		Name:    "Letter of Recommendation",
		Subject: "Letter of Recommendation for [Name]",
		Body: `Dear [Recipient Name],

I am pleased to write this letter of recommendation for [person's name], who [worked for/studied under] me as [position/role] from [start date] to [end date].

During this time, [name] demonstrated exceptional:
- [Key strength 1]
- [Key strength 2]
- [Key strength 3]

Specific examples of their outstanding performance include:
[Provide 1-2 specific examples of achievements or notable work]

[Name] possesses the skills, dedication, and character that would make them a valuable addition to any organization. I recommend them without reservation.

Please feel free to contact me if you need any additional information.`,
		Closing: "Best regards",
	},
	"partnership": {
		Key:     "partnership",
		Name:    "Partnership Proposal",
		Subject: "Partnership Opportunity Proposal",
		Body: `Dear [Recipient Name],

I am writing to propose a strategic partnership between our organizations that could be mutually beneficial.

[Your company] specializes in [your expertise], while [their company] excels in [their expertise]. By combining our strengths, we could:
- [Benefit 1]
- [Benefit 2]
- [Benefit 3]

The proposed partnership would involve:
[Outline the basic structure of the partnership]

We believe this collaboration would allow both organizations to:
- Expand our market reach
- Share resources and expertise
- Create innovative solutions for our clients
- Achieve greater success together than apart

I would welcome the opportunity to discuss this proposal in detail. Would you be available for a meeting in the coming weeks?

Thank you for considering this opportunity.`,
		Closing: "Best regards",
	},
	"follow_up": {
		Key:     "follow_up",
		Name:    "Follow-up Letter",
		Subject: "Follow-up on Our Recent Discussion",
		Body: `Dear [Recipient Name],

Thank you for taking the time to meet with me on [date] to discuss [topic/project].

I wanted to follow up on our conversation and provide the additional information you requested:
- [Information point 1]
- [Information point 2]
- [Information point 3]

As we discussed, the next steps would be:
1. [Step 1]
2. [Step 2]
3. [Step 3]

I am excited about the possibility of moving forward with this opportunity and believe it would be beneficial for both our organizations.

Please let me know if you need any additional information or clarification. I look forward to hearing from you soon.`,
		Closing: "Best regards",
	},
}

var letterTemplateOrder = []string{
	"business_inquiry", "complaint", "recommendation", "partnership", "follow_up",
}

type LetterService struct{}

func NewLetterService() *LetterService {
	return &LetterService{}
}

// Templates lists the available letter templates in a stable order.
func (s *LetterService) Templates() []dto.LetterTemplate {
	templates := make([]dto.LetterTemplate, 0, len(letterTemplateOrder))
	for _, key := range letterTemplateOrder {
		templates = append(templates, letterTemplates[key])
	}
	return templates
}

// Template looks up one template by key.
func (s *LetterService) Template(key string) (dto.LetterTemplate, error) {
	template, ok := letterTemplates[key]
	if !ok {
		return dto.LetterTemplate{}, dto.ErrUnknownLetterTemplate
	}
	return template, nil
}

// Generate assembles the full letter text: sender block, date, recipient
// block, subject line, body, closing and signature. Empty subject, body
// and closing fall back to the selected template's defaults.
func (s *LetterService) Generate(data *dto.LetterData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}

	if data.Template != "" {
		template, err := s.Template(data.Template)
		if err != nil {
			return "", err
		}
		if data.Subject == "" {
			data.Subject = template.Subject
		}
		if data.Body == "" {
			data.Body = template.Body
		}
		if data.Closing == "" {
			data.Closing = template.Closing
		}
	}
	if data.Closing == "" {
		data.Closing = "Sincerely"
	}

	currentDate := time.Now().Format("January 2, 2006")

	var b strings.Builder
	writeBlock(&b, data.SenderName, data.SenderTitle, data.SenderCompany,
		data.SenderAddress, data.SenderPhone, data.SenderEmail)
	b.WriteString("\n" + currentDate + "\n\n")
	writeBlock(&b, data.RecipientName, data.RecipientTitle, data.RecipientCompany,
		data.RecipientAddress)
	b.WriteString("\nSubject: " + data.Subject + "\n\n")
	b.WriteString(data.Body + "\n\n")
	b.WriteString(data.Closing + ",\n\n")
	b.WriteString(data.SenderName)
	if data.SenderTitle != "" {
		b.WriteString("\n" + data.SenderTitle)
	}

	return b.String(), nil
}

func writeBlock(b *strings.Builder, lines ...string) {
	for _, line := range lines {
		if line != "" {
			b.WriteString(line + "\n")
		}
	}
}
