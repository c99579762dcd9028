package handler

import (
	"github.com/gin-gonic/gin"

	"cisgen/internal/extraction"
)

// ConfigHandler exposes read-only views of the extraction configuration.
type ConfigHandler struct {
	cfg *extraction.Config
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(cfg *extraction.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// Patterns handles GET /api/v1/config/patterns
func (h *ConfigHandler) Patterns(c *gin.Context) {
	RespondOK(c, gin.H{
		"extraction_patterns": h.cfg.ExtractionPatterns,
		"field_formats":       h.cfg.FieldFormats,
		"default_values":      h.cfg.DefaultValues,
	})
}
