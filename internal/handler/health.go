package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeweaver/internal/config"
)

// HealthHandler reports process liveness and credential presence.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health reports static health plus whether each provider credential is
// present. No upstream call is made; presence does not mean validity.
// @Summary      Health check
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"deepseek_configured": h.cfg.Providers.DeepSeek.APIKey != "",
		"groq_configured":     h.cfg.Providers.Groq.APIKey != "",
	})
}
