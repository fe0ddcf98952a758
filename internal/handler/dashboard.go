package handler

import (
	"net/http"
	"time"

	"deskboard/internal/domain"
	"deskboard/internal/service"
	"deskboard/internal/widget"

	"github.com/gin-gonic/gin"
)

// GetDashboard godoc
// @Summary      Get the full dashboard
// @Description  Returns the current snapshot of every widget plus the calendar month
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.get-dashboard")
	defer span.End()

	widgets := gin.H{}
	for _, w := range h.registry.All() {
		widgets[w.Name()] = w.Status()
	}

	now := time.Now()
	widgets[domain.WidgetCalendar] = widget.Status{
		Name: domain.WidgetCalendar,
		Data: h.calendarMonth(now, now.Year(), now.Month()),
	}

	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}

// calendarMonth assembles the month grid from the tasks widget's last
// snapshot. If the tasks widget has not loaded yet the grid carries no
// events.
func (h *Handler) calendarMonth(now time.Time, year int, month time.Month) domain.CalendarMonth {
	var events []domain.CalendarEvent
	if w, ok := h.registry.Get(domain.WidgetTasks); ok {
		if tasks, ok := w.Status().Data.([]domain.Task); ok {
			events = service.TasksToEvents(tasks)
		}
	}
	return service.BuildMonth(now, year, month, events)
}
