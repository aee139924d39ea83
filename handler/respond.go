package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/dto"
)

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, errorCode, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   errorCode,
		Message: errorMsg,
		Code:    statusCode,
	})
}

// sendPDF streams rendered PDF bytes as a browser download.
func sendPDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}
