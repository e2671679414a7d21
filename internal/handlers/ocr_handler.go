package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/services"
)

// OCRHandler handles crop region settings
type OCRHandler struct {
	ocrService services.OCRService
}

// NewOCRHandler creates a new OCRHandler
func NewOCRHandler(ocrService services.OCRService) *OCRHandler {
	return &OCRHandler{ocrService: ocrService}
}

// CropRegions handles GET /ocr/crop-regions
func (h *OCRHandler) CropRegions(c *gin.Context) {
	regions, err := h.ocrService.CropRegions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

// UpdateCropRegion handles PUT /ocr/crop-regions/:boxId
func (h *OCRHandler) UpdateCropRegion(c *gin.Context) {
	var region models.CropRegion
	if err := c.ShouldBindJSON(&region); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	region.BoxID = c.Param("boxId")

	updated, err := h.ocrService.UpdateCropRegion(c.Request.Context(), region)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
