package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/ticket-ledger/internal/services"
)

// ReportHandler handles requests on saved reports
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// List handles GET /reports?date=
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reportService.ListReports(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

// Dates handles GET /reports/dates
func (h *ReportHandler) Dates(c *gin.Context) {
	dates, err := h.reportService.ListDates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// Get handles GET /reports/:date/:slot
func (h *ReportHandler) Get(c *gin.Context) {
	detail, err := h.reportService.GetReport(c.Request.Context(), c.Param("date"), c.Param("slot"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Customer handles GET /reports/:date/:slot/customers/:name
func (h *ReportHandler) Customer(c *gin.Context) {
	report, err := h.reportService.CustomerReport(c.Request.Context(), c.Param("date"), c.Param("slot"), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteAll handles DELETE /reports
func (h *ReportHandler) DeleteAll(c *gin.Context) {
	if err := h.reportService.DeleteAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All reports and customer lists deleted"})
}
