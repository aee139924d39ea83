package service

import (
	"strings"
	"testing"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/stretchr/testify/assert"
)

func TestLetterTemplates(t *testing.T) {
	service := NewLetterService()

	templates := service.Templates()

	assert.Len(t, templates, 5)
	assert.Equal(t, "business_inquiry", templates[0].Key)
	assert.Equal(t, "follow_up", templates[4].Key)
}

func TestLetterTemplateLookup(t *testing.T) {
	service := NewLetterService()

	template, err := service.Template("complaint")
	assert.NoError(t, err)
	assert.Equal(t, "Formal Complaint", template.Name)

	_, err = service.Template("resignation")
	assert.ErrorIs(t, err, dto.ErrUnknownLetterTemplate)
}

func TestGenerateLetter(t *testing.T) {
	service := NewLetterService()
	data := dto.LetterData{
		SenderName:    "Jane Smith",
		SenderTitle:   "Operations Manager",
		SenderCompany: "Acme Corp",
		RecipientName: "John Doe",
		Subject:       "Delivery Schedule",
		Body:          "Please find the updated delivery schedule attached.",
		Closing:       "Kind regards",
	}

	letter, err := service.Generate(&data)

	assert.NoError(t, err)
	assert.Contains(t, letter, "Jane Smith\nOperations Manager\nAcme Corp\n")
	assert.Contains(t, letter, "Subject: Delivery Schedule\n")
	assert.Contains(t, letter, "Please find the updated delivery schedule attached.\n")
	assert.Contains(t, letter, "Kind regards,\n")
	assert.True(t, strings.HasSuffix(letter, "Jane Smith\nOperations Manager"))
}

func TestGenerateLetterTemplateDefaults(t *testing.T) {
	service := NewLetterService()
	data := dto.LetterData{
		SenderName:    "Jane Smith",
		RecipientName: "John Doe",
		Template:      "partnership",
	}

	letter, err := service.Generate(&data)

	assert.NoError(t, err)
	assert.Contains(t, letter, "Subject: Partnership Opportunity Proposal")
	assert.Contains(t, letter, "strategic partnership between our organizations")
	assert.Contains(t, letter, "Best regards,")
}

func TestGenerateLetterDefaultClosing(t *testing.T) {
	service := NewLetterService()
	data := dto.LetterData{
		SenderName:    "Jane Smith",
		RecipientName: "John Doe",
		Subject:       "Hello",
		Body:          "A short note.",
	}

	letter, err := service.Generate(&data)

	assert.NoError(t, err)
	assert.Contains(t, letter, "Sincerely,")
}

func TestGenerateLetterValidation(t *testing.T) {
	service := NewLetterService()

	_, err := service.Generate(&dto.LetterData{RecipientName: "John Doe"})
	assert.ErrorIs(t, err, dto.ErrSenderNameRequired)

	_, err = service.Generate(&dto.LetterData{SenderName: "Jane Smith"})
	assert.ErrorIs(t, err, dto.ErrRecipientNameRequired)

	_, err = service.Generate(&dto.LetterData{
		SenderName:    "Jane Smith",
		RecipientName: "John Doe",
		Template:      "no-such-template",
	})
	assert.ErrorIs(t, err, dto.ErrUnknownLetterTemplate)
}
