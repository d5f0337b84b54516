package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/openpitch/field-booking/internal/domain/booking"
)

// intervalFromQuery builds the optional candidate interval from start/
// end query params (RFC3339). Mirrors the coordinate handling: values
// that are absent or do not parse leave availability undetermined
// instead of failing the listing.
func intervalFromQuery(c *gin.Context) *domain.Interval {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		return nil
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil
	}

	ivl := domain.NewInterval(start, end)
	if !ivl.Valid() {
		return nil
	}
	return &ivl
}
