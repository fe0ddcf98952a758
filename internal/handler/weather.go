package handler

import (
	"errors"
	"net/http"

	"deskboard/internal/domain"
	"deskboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetWeather godoc
// @Summary      Get current weather for a city
// @Description  Fetches live conditions; defaults to the configured city when none is given
// @Tags         weather
// @Produce      json
// @Param        city  query  string  false  "City name"
// @Success      200  {object}  domain.WeatherReport
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-weather")
	defer span.End()

	city := c.Query("city")
	span.SetAttributes(attribute.String("city", city))

	report, err := h.weatherService.GetCurrent(ctx, city)
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if domain.IsConfig(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch weather data"})
		return
	}

	c.JSON(http.StatusOK, report)
}
