package handlers

import (
	"mime"
	"net/http"

	"contractdraft-backend/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves archived contract documents
type DocumentHandler struct {
	contractService *service.ContractService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(contractService *service.ContractService) *DocumentHandler {
	return &DocumentHandler{
		contractService: contractService,
	}
}

// GetDocument handles GET /api/contracts/:id/document. Pass ?inline=1 to
// display instead of download.
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := parseContractID(c)
	if !ok {
		return
	}

	doc, err := h.contractService.OpenDocument(c.Request.Context(), service.OpenDocumentRequest{ID: id})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer doc.Body.Close()

	disposition := "attachment"
	if c.Query("inline") != "" {
		disposition = "inline"
	}

	c.DataFromReader(http.StatusOK, -1, doc.ContentType, doc.Body, map[string]string{
		"Content-Disposition": mime.FormatMediaType(disposition, map[string]string{"filename": doc.Filename}),
	})
}
