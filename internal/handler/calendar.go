package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetCalendar godoc
// @Summary      Get a calendar month
// @Description  Returns the Sunday-first month grid with task due dates marked as events
// @Tags         calendar
// @Produce      json
// @Param        year   query  int  false  "Year (defaults to current)"
// @Param        month  query  int  false  "Month 1-12 (defaults to current)"
// @Success      200  {object}  domain.CalendarMonth
// @Failure      400  {object}  map[string]string
// @Router       /api/calendar [get]
func (h *Handler) GetCalendar(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.get-calendar")
	defer span.End()

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if y := c.Query("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year: " + y})
			return
		}
		year = n
	}
	if m := c.Query("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month: " + m})
			return
		}
		month = time.Month(n)
	}

	span.SetAttributes(attribute.Int("year", year), attribute.Int("month", int(month)))

	c.JSON(http.StatusOK, h.calendarMonth(now, year, month))
}
