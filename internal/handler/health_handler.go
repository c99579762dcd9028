package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"cisgen/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	folders config.FolderConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(folders config.FolderConfig) *HealthHandler {
	return &HealthHandler{folders: folders}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	for _, dir := range []string{h.folders.Upload, h.folders.Temp, h.folders.Result} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "working folders not available"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
