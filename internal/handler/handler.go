package handler

import (
	"deskboard/internal/service"
	"deskboard/internal/widget"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer         trace.Tracer
	registry       *widget.Registry
	weatherService *service.WeatherService
	taskService    *service.TaskService
}

func New(tracer trace.Tracer, registry *widget.Registry, weatherService *service.WeatherService, taskService *service.TaskService) *Handler {
	return &Handler{
		tracer:         tracer,
		registry:       registry,
		weatherService: weatherService,
		taskService:    taskService,
	}
}

// RegisterRoutes mounts all routes. Middleware applies to /api only;
// /health stays open for probes.
func (h *Handler) RegisterRoutes(r *gin.Engine, mw ...gin.HandlerFunc) {
	r.GET("/health", h.Health)

	api := r.Group("/api", mw...)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/widgets/:name", h.GetWidget)
	api.POST("/widgets/:name/refresh", h.RefreshWidget)
	api.GET("/weather", h.GetWeather)
	api.GET("/clickup/tasks", h.GetClickUpTasks)
	api.GET("/calendar", h.GetCalendar)
}
