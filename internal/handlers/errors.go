package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/ArowuTest/ticket-ledger/internal/services"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrSessionNotFound, http.StatusNotFound},
	{services.ErrRowNotFound, http.StatusNotFound},
	{services.ErrCustomerNotFound, http.StatusNotFound},
	{services.ErrReportNotFound, http.StatusNotFound},
	{services.ErrResultNotFound, http.StatusNotFound},
	{services.ErrInvalidDate, http.StatusBadRequest},
	{services.ErrInvalidSlot, http.StatusBadRequest},
	{services.ErrMissingCustomerName, http.StatusBadRequest},
	{services.ErrInvalidMultiplier, http.StatusBadRequest},
	{services.ErrEmptyReport, http.StatusBadRequest},
	{services.ErrEmptySearch, http.StatusBadRequest},
	{services.ErrUnknownCategory, http.StatusBadRequest},
	{services.ErrInvalidCropRegion, http.StatusBadRequest},
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrRecognizerUnavailable, http.StatusNotImplemented},
}

// respondError writes err with the status of the first sentinel it wraps; unknown errors are 500
func respondError(c *gin.Context, err error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			c.JSON(e.status, gin.H{"error": err.Error()})
			return
		}
	}

	log.WithFields(log.Fields{
		"path":  c.FullPath(),
		"error": err,
	}).Error("Request failed")
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
