package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ArowuTest/ticket-ledger/internal/models"
	"github.com/ArowuTest/ticket-ledger/internal/services"
)

// SessionHandler handles requests on editing sessions
type SessionHandler struct {
	sessionService services.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Open handles POST /sessions
func (h *SessionHandler) Open(c *gin.Context) {
	var req models.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	session, err := h.sessionService.Open(c.Request.Context(), req.Date, req.Slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// OpenLatest handles POST /sessions/latest
func (h *SessionHandler) OpenLatest(c *gin.Context) {
	session, err := h.sessionService.OpenLatest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Get handles GET /sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Close handles DELETE /sessions/:id
func (h *SessionHandler) Close(c *gin.Context) {
	if err := h.sessionService.Close(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeSlot handles PUT /sessions/:id/slot
func (h *SessionHandler) ChangeSlot(c *gin.Context) {
	var req models.ChangeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	session, err := h.sessionService.ChangeSlot(c.Request.Context(), c.Param("id"), req.Slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AddRow handles POST /sessions/:id/rows
func (h *SessionHandler) AddRow(c *gin.Context) {
	var req models.AddRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	session, err := h.sessionService.AddRow(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateRow handles PATCH /sessions/:id/rows/:index
func (h *SessionHandler) UpdateRow(c *gin.Context) {
	index, ok := rowIndex(c)
	if !ok {
		return
	}
	var patch models.RowPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	session, err := h.sessionService.UpdateRow(c.Request.Context(), c.Param("id"), index, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeleteRow handles DELETE /sessions/:id/rows/:index
func (h *SessionHandler) DeleteRow(c *gin.Context) {
	index, ok := rowIndex(c)
	if !ok {
		return
	}
	session, err := h.sessionService.DeleteRow(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeleteCustomer handles DELETE /sessions/:id/customers/:name
func (h *SessionHandler) DeleteCustomer(c *gin.Context) {
	session, err := h.sessionService.DeleteCustomer(c.Request.Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Summary handles GET /sessions/:id/summary
func (h *SessionHandler) Summary(c *gin.Context) {
	summary, err := h.sessionService.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SearchUnsold handles POST /sessions/:id/search-unsold
func (h *SessionHandler) SearchUnsold(c *gin.Context) {
	var req models.SearchUnsoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	matches, err := h.sessionService.SearchUnsold(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches, "count": len(matches)})
}

// Save handles POST /sessions/:id/save
func (h *SessionHandler) Save(c *gin.Context) {
	report, err := h.sessionService.Save(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report saved successfully", "report": report})
}

func rowIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid row index"})
		return 0, false
	}
	return index, true
}
