package handler

import (
	"log"
	"net/http"

	"deskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetClickUpTasks godoc
// @Summary      Get ClickUp tasks
// @Description  Proxies ClickUp using the server-held token and returns reshaped tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/clickup/tasks [get]
func (h *Handler) GetClickUpTasks(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-clickup-tasks")
	defer span.End()

	tasks, err := h.taskService.GetTasks(ctx)
	if err != nil {
		if domain.IsConfig(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Upstream details stay in the server log; the client gets a
		// generic message so ClickUp responses never leak through.
		log.Printf("clickup proxy: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks from ClickUp"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
