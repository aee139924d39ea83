package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/fintools-ai/fintools-api/service"
)

type ReportHandler struct {
	pdfService *service.PDFService
}

func NewReportHandler(pdfService *service.PDFService) *ReportHandler {
	return &ReportHandler{
		pdfService: pdfService,
	}
}

// GeneratePDF handles POST /reports/pdf.
func (h *ReportHandler) GeneratePDF(c *gin.Context) {
	var report dto.ReportData
	if err := c.ShouldBindJSON(&report); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid report payload", err)
		return
	}

	data, err := h.pdfService.RenderReport(&report)
	if err != nil {
		if errors.Is(err, dto.ErrCompanyNameRequired) || errors.Is(err, dto.ErrReportPeriodRequired) {
			sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error(), err)
			return
		}
		sendError(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to generate report", err)
		return
	}

	log.Printf("Generated %s report for %s (%d bytes)", report.ReportType, report.CompanyName, len(data))
	sendPDF(c, service.ReportFilename(&report), data)
}
