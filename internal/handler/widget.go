package handler

import (
	"net/http"
	"time"

	"deskboard/internal/domain"
	"deskboard/internal/widget"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetWidget godoc
// @Summary      Get one widget's snapshot
// @Description  Returns the current state of a single widget
// @Tags         widgets
// @Produce      json
// @Param        name  path  string  true  "Widget name (weather, forecast, stocks, news, tasks, calendar)"
// @Success      200  {object}  widget.Status
// @Failure      400  {object}  map[string]string
// @Router       /api/widgets/{name} [get]
func (h *Handler) GetWidget(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.get-widget")
	defer span.End()

	name := c.Param("name")
	span.SetAttributes(attribute.String("widget", name))

	if name == domain.WidgetCalendar {
		now := time.Now()
		c.JSON(http.StatusOK, widget.Status{
			Name: domain.WidgetCalendar,
			Data: h.calendarMonth(now, now.Year(), now.Month()),
		})
		return
	}

	w, ok := h.registry.Get(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "unknown widget: " + name,
			"supported_widgets": h.widgetNames(),
		})
		return
	}

	c.JSON(http.StatusOK, w.Status())
}

// RefreshWidget godoc
// @Summary      Trigger a manual refresh
// @Description  Starts an immediate fetch cycle for the widget; returns before it completes
// @Tags         widgets
// @Produce      json
// @Param        name  path  string  true  "Widget name (weather, forecast, stocks, news, tasks)"
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/widgets/{name}/refresh [post]
func (h *Handler) RefreshWidget(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.refresh-widget")
	defer span.End()

	name := c.Param("name")
	span.SetAttributes(attribute.String("widget", name))

	if name == domain.WidgetCalendar {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calendar is computed on demand and cannot be refreshed"})
		return
	}

	w, ok := h.registry.Get(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "unknown widget: " + name,
			"supported_widgets": h.widgetNames(),
		})
		return
	}

	w.RefreshNow()
	c.JSON(http.StatusAccepted, gin.H{"status": "refreshing", "widget": name})
}

func (h *Handler) widgetNames() []string {
	names := h.registry.Names()
	return append(names, domain.WidgetCalendar)
}
