package routes

import (
	"log"
	"net/http"

	"mathtutor/config"
	"mathtutor/extract"
	"mathtutor/middlewares"
	"mathtutor/services"

	"github.com/gin-gonic/gin"
)

// Handler bundles the dependencies the endpoint handlers need. Everything is
// injected so tests can swap the gateway and extraction capabilities.
type Handler struct {
	Cfg   *config.Config
	Tutor *services.TutorService
	Files *extract.Extractor
}

func NewHandler(cfg *config.Config, tutor *services.TutorService, files *extract.Extractor) *Handler {
	return &Handler{Cfg: cfg, Tutor: tutor, Files: files}
}

// respondGatewayError maps a model-gateway failure onto the external error
// surface. The branch is on the typed kind, never on upstream message text,
// and the upstream message itself stays in the server log.
func respondGatewayError(c *gin.Context, err error) {
	log.Printf("[%s] gateway error: %v", middlewares.RequestID(c), err)

	switch services.ErrorKind(err) {
	case services.KindMissingKey:
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Missing API key",
			"code":  "missing_api_key",
		})
	case services.KindAuth:
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "The Gemini API rejected the key",
			"code":  "invalid_api_key",
			"help":  "Get a free key at https://aistudio.google.com/apikey",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "The tutor could not process this request. Please try again.",
		})
	}
}
