package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/fintools-ai/fintools-api/service"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// Scan handles POST /receipts/scan: one uploaded receipt image or PDF in,
// one extracted record out. Extraction failures come back as a degraded
// record with confidence 0, not as an HTTP error.
func (h *ReceiptHandler) Scan(c *gin.Context) {
	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "No receipt file provided", err)
		return
	}

	log.Printf("Scanning receipt %s (%d bytes)", fileHeader.Filename, fileHeader.Size)
	record := h.receiptService.ScanReceipt(fileHeader)
	c.JSON(http.StatusOK, record)
}

// ExportCSV handles POST /receipts/export: serializes a previously scanned
// record into the fixed CSV layout and streams it as a download.
func (h *ReceiptHandler) ExportCSV(c *gin.Context) {
	var record dto.ReceiptRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid receipt payload", err)
		return
	}

	data, err := h.receiptService.ExportCSV(&record)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export receipt", err)
		return
	}

	filename := fmt.Sprintf("receipt-%d.csv", time.Now().UnixMilli())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
