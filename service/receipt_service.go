package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"math"
	"mime/multipart"
	"os"
	"strings"

	"github.com/fintools-ai/fintools-api/client"
	"github.com/fintools-ai/fintools-api/dto"
	"github.com/fintools-ai/fintools-api/utils"
)

type ReceiptService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
}

func NewReceiptService(tesseractClient *client.TesseractClient, pdfProcessor PDFProcessor) *ReceiptService {
	return &ReceiptService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
	}
}

// ScanReceipt runs the one-shot extraction pipeline: OCR the upload, parse
// the raw text with the field heuristics, categorize and score. Extraction
// is best-effort: when OCR fails or yields nothing, the result is a
// degraded record with confidence 0.0, not an error.
func (s *ReceiptService) ScanReceipt(fileHeader *multipart.FileHeader) dto.ReceiptRecord {
	rawText, err := s.extractRawText(fileHeader)
	if err != nil {
		log.Printf("Receipt extraction failed for %s: %v", fileHeader.Filename, err)
		return degradedRecord(fmt.Sprintf("Error processing receipt: %v", err))
	}

	if strings.TrimSpace(rawText) == "" {
		return degradedRecord("Error processing receipt: no text could be extracted from the image")
	}

	record := utils.ParseReceiptText(rawText)
	record.Category = utils.CategorizeReceipt(rawText, record.Merchant)
	record.Confidence = utils.ScoreConfidence(record)
	return record
}

func degradedRecord(rawText string) dto.ReceiptRecord {
	return dto.ReceiptRecord{
		RawText:    rawText,
		Category:   "General",
		Confidence: 0.0,
	}
}

// extractRawText picks the extraction route by file type. PDF receipts
// try embedded text first and fall back to OCR over the page images when
// the document turns out to be a scan.
func (s *ReceiptService) extractRawText(fileHeader *multipart.FileHeader) (string, error) {
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return s.tesseractClient.ExtractTextFromFile(fileHeader)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", fileHeader.Filename, err)
	}
	if len(strings.TrimSpace(text)) >= 20 {
		return text, nil
	}

	// Minimal text means a scanned PDF: OCR each embedded image instead.
	log.Printf("PDF %s has minimal text, attempting image-based OCR", fileHeader.Filename)
	images, err := s.pdfProcessor.ExtractImages(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract images: %w", err)
	}

	var combined strings.Builder
	for _, img := range images {
		tempImgFile, err := saveImageToTempFile(img)
		if err != nil {
			log.Printf("Failed to save temporary image for OCR: %v", err)
			continue
		}

		pageText, ocrErr := s.tesseractClient.ExtractText(tempImgFile)
		os.Remove(tempImgFile)
		if ocrErr != nil {
			log.Printf("OCR failed for a page in %s: %v", fileHeader.Filename, ocrErr)
			continue
		}

		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	if combined.Len() == 0 {
		return "", fmt.Errorf("no text could be extracted from PDF")
	}
	return combined.String(), nil
}

func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "receipt-page-*.png")
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}
	return tempFile.Name(), nil
}

// ExportCSV serializes a receipt record with the fixed column layout:
// a Field/Value block, a blank row, then the items sub-table.
func (s *ReceiptService) ExportCSV(record *dto.ReceiptRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Field", "Value"},
		{"Merchant", orNA(record.Merchant)},
		{"Date", orNA(record.Date)},
		{"Total", orNA(record.Total)},
		{"Category", orNA(record.Category)},
		{"Confidence", fmt.Sprintf("%d%%", int(math.Round(record.Confidence*100)))},
		{""},
		{"Items", ""},
		{"Item Name", "Price", "Quantity"},
	}
	for _, item := range record.Items {
		quantity := item.Quantity
		if quantity == "" {
			quantity = "1"
		}
		rows = append(rows, []string{item.Name, item.Price, quantity})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csv export failed: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
