package routes

import (
	"net/http"

	"mathtutor/extract"
	"mathtutor/middlewares"
	"mathtutor/services"

	"github.com/gin-gonic/gin"
)

// Health reports server status and the upload features this build supports.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"message":  "AI Math Tutor server is running",
		"model":    h.Cfg.Gemini.Model,
		"features": h.Files.Caps.Features(),
	})
}

// PublicConfig exposes the settings the frontend needs before it has a key.
func (h *Handler) PublicConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"google_client_id":     h.Cfg.Google.ClientId,
		"supported_file_types": extract.SupportedList(),
		"max_upload_mb":        h.Cfg.Upload.MaxSizeMB,
	})
}

// VerifyKey checks the caller's key against the Gemini API with a minimal
// round trip.
func (h *Handler) VerifyKey(c *gin.Context) {
	err := h.Tutor.LLM.Verify(c.Request.Context(), middlewares.APIKey(c))
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"valid":   true,
			"message": "API key is valid",
		})
		return
	}

	switch services.ErrorKind(err) {
	case services.KindMissingKey, services.KindAuth:
		c.JSON(http.StatusUnauthorized, gin.H{
			"valid": false,
			"error": "The Gemini API rejected the key",
			"code":  "invalid_api_key",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"valid": false,
			"error": "Could not reach the Gemini API to verify the key",
		})
	}
}
