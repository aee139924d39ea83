package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/fintools-ai/fintools-api/service"
)

type InvoiceHandler struct {
	pdfService *service.PDFService
}

func NewInvoiceHandler(pdfService *service.PDFService) *InvoiceHandler {
	return &InvoiceHandler{
		pdfService: pdfService,
	}
}

// GeneratePDF handles POST /invoices/pdf. The template query parameter
// selects the visual style, defaulting to professional; tax_rate carries
// the caller's tax percentage, defaulting to 10, so a handed-off
// calculation renders with the totals it was made with.
func (h *InvoiceHandler) GeneratePDF(c *gin.Context) {
	var invoice dto.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid invoice payload", err)
		return
	}

	taxRate := dto.DefaultTaxRate
	if raw := c.Query("tax_rate"); raw != "" {
		percent, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid tax_rate parameter", err)
			return
		}
		taxRate = percent / 100
	}

	templateID := c.DefaultQuery("template", service.DefaultTemplate)
	invoice.Recalculate(taxRate)

	data, err := h.pdfService.RenderInvoice(&invoice, templateID)
	if err != nil {
		if err == dto.ErrNoItems {
			sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error(), err)
			return
		}
		sendError(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to generate PDF", err)
		return
	}

	log.Printf("Generated invoice PDF %s (%d bytes)", invoice.InvoiceNumber, len(data))
	sendPDF(c, service.InvoiceFilename(templateID), data)
}

// ListTemplates handles GET /invoices/templates.
func (h *InvoiceHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": service.TemplateList()})
}

// Sample handles GET /invoices/sample, returning the default record an
// editor screen starts from.
func (h *InvoiceHandler) Sample(c *gin.Context) {
	invoice := dto.SampleInvoice()
	c.JSON(http.StatusOK, invoice)
}
