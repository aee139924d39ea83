package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/dto"
	"github.com/fintools-ai/fintools-api/service"
)

type LetterHandler struct {
	letterService *service.LetterService
}

func NewLetterHandler(letterService *service.LetterService) *LetterHandler {
	return &LetterHandler{
		letterService: letterService,
	}
}

// Generate handles POST /letters/generate.
func (h *LetterHandler) Generate(c *gin.Context) {
	var data dto.LetterData
	if err := c.ShouldBindJSON(&data); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid letter payload", err)
		return
	}

	letter, err := h.letterService.Generate(&data)
	if err != nil {
		if errors.Is(err, dto.ErrUnknownLetterTemplate) {
			sendError(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", err.Error(), err)
			return
		}
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, dto.LetterResponse{Letter: letter})
}

// ListTemplates handles GET /letters/templates.
func (h *LetterHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.letterService.Templates()})
}
