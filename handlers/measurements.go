package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/AliAlSubhi98/CodelineChallenge/db"
	"github.com/AliAlSubhi98/CodelineChallenge/measurement"
	"github.com/AliAlSubhi98/CodelineChallenge/middleware"
	"github.com/gin-gonic/gin"
)

// MeasurementField is the form field holding the sequence to convert.
const MeasurementField = "convert-measurements"

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// POST /convert-measurements -> {"result": [...]}
// The conversion is stored when a database is available. A storage failure is
// logged and does not change the response.
func ConvertMeasurements(c *gin.Context) {
	value := c.Request.FormValue(MeasurementField)
	result := measurement.Convert(value)

	if db.DB == nil {
		log.Printf("[DB] %s database unavailable; result not stored", middleware.GetRequestID(c))
	} else if _, err := db.StoreMeasurementResult(c.Request.Context(), db.DB, value, measurement.FormatResult(result)); err != nil {
		log.Printf("[DB] %s %v", middleware.GetRequestID(c), err)
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GET /api/v1/measurements?limit=N -> newest stored results
func ListMeasurements(c *gin.Context) {
	if db.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
		return
	}
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be between 1 and %d", maxListLimit)})
			return
		}
		limit = n
	}
	results, err := db.ListMeasurementResults(c.Request.Context(), db.DB, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("query results failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
