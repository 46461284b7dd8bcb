package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stavquote/pkg/database"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	dbClient *database.Client
}

// NewHealthHandler builds the health handler.
func NewHealthHandler(dbClient *database.Client) *HealthHandler {
	return &HealthHandler{dbClient: dbClient}
}

// Check reports the service health
// @Summary Health check
// @Description Reports service and database health.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "stavquote",
		"version":   "1.0.0",
	}

	if err := h.dbClient.HealthCheck(); err != nil {
		response["status"] = "degraded"
		response["database"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
