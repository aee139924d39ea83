package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintools-ai/fintools-api/cache"
	"github.com/fintools-ai/fintools-api/dto"
)

type HandoffHandler struct {
	store *cache.HandoffStore
}

func NewHandoffHandler(store *cache.HandoffStore) *HandoffHandler {
	return &HandoffHandler{
		store: store,
	}
}

// Store handles POST /handoff: the quick calculator drops its result into
// the mailbox for the invoice editor to pick up.
func (h *HandoffHandler) Store(c *gin.Context) {
	var payload dto.HandoffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid handoff payload", err)
		return
	}

	if err := h.store.Store(c.Request.Context(), &payload); err != nil {
		sendError(c, http.StatusInternalServerError, "HANDOFF_FAILED", "Failed to store handoff payload", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stored": true})
}

// Consume handles POST /handoff/consume: reads and deletes the payload in
// one shot and returns an invoice pre-populated with it. 404 when the
// mailbox is empty.
func (h *HandoffHandler) Consume(c *gin.Context) {
	payload, found, err := h.store.Consume(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "HANDOFF_FAILED", "Failed to consume handoff payload", err)
		return
	}
	if !found {
		sendError(c, http.StatusNotFound, "HANDOFF_EMPTY", "No handoff payload available", nil)
		return
	}

	invoice := dto.SampleInvoice()
	payload.ApplyTo(&invoice)
	c.JSON(http.StatusOK, invoice)
}
