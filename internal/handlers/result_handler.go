package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/ocr"
	"github.com/ArowuTest/ticket-ledger/internal/services"
	"github.com/ArowuTest/ticket-ledger/internal/utils"
)

// maxImageSize bounds uploaded result sheet photos
const maxImageSize = 10 << 20

// maxUploadSize bounds the whole multipart body of an image upload
const maxUploadSize = maxImageSize + 1<<20

// ResultHandler handles requests on draw results
type ResultHandler struct {
	resultService services.ResultService
	ocrService    services.OCRService
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(resultService services.ResultService, ocrService services.OCRService) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
		ocrService:    ocrService,
	}
}

// SaveResultRequest is the body of PUT /results/:date/:slot
type SaveResultRequest struct {
	Prizes []models.PrizeResult `json:"prizes" binding:"dive"`
}

// ExtractTextRequest is the body of POST /results/extract-text
type ExtractTextRequest struct {
	Boxes []ocr.BoxText `json:"boxes" binding:"required"`
}

// List handles GET /results?date=, defaulting to today
func (h *ResultHandler) List(c *gin.Context) {
	date := c.DefaultQuery("date", utils.Today())
	results, err := h.resultService.ListByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "results": results})
}

// Dates handles GET /results/dates
func (h *ResultHandler) Dates(c *gin.Context) {
	dates, err := h.resultService.ListDates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// Get handles GET /results/:date/:slot
func (h *ResultHandler) Get(c *gin.Context) {
	result, err := h.resultService.Get(c.Request.Context(), c.Param("date"), c.Param("slot"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Save handles PUT /results/:date/:slot
func (h *ResultHandler) Save(c *gin.Context) {
	var req SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	result, err := h.resultService.Save(c.Request.Context(), c.Param("date"), c.Param("slot"), req.Prizes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /results/:date/:slot
func (h *ResultHandler) Delete(c *gin.Context) {
	if err := h.resultService.Delete(c.Request.Context(), c.Param("date"), c.Param("slot")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadCSV handles GET /results/:date/:slot/csv
func (h *ResultHandler) DownloadCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.resultService.ExportCSV(c.Request.Context(), &buf, c.Param("date"), c.Param("slot")); err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("Lottery_Results_%s_%s.csv", c.Param("date"), c.Param("slot"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExtractText handles POST /results/extract-text. The extracted prizes are returned for review,
// not saved.
func (h *ResultHandler) ExtractText(c *gin.Context) {
	var req ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	prizes, err := h.resultService.ExtractFromText(req.Boxes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prizes": prizes})
}

// ExtractImage handles POST /results/extract-image with a multipart "image" file
func (h *ResultHandler) ExtractImage(c *gin.Context) {
	if c.Request.ContentLength > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image is too large"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image: " + err.Error()})
		return
	}
	defer file.Close()

	img, err := ocr.DecodeImage(file)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ocr.ErrImageTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	extraction, err := h.ocrService.ExtractImage(c.Request.Context(), img)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, extraction)
}
