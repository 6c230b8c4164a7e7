package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// KeyHeader is the custom header carrying the caller's Gemini API key. The
// key is forwarded verbatim to the model gateway; it is never persisted and
// never logged.
const KeyHeader = "X-Gemini-Key"

const keyContextField = "geminiKey"

// APIKeyMiddleware pulls the credential off the request and rejects calls
// without one before any work happens. "missing_api_key" is distinct from
// the "invalid_api_key" code returned when upstream rejects the key.
func APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(KeyHeader))
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Missing API key",
				"code":  "missing_api_key",
				"help":  "Send your Gemini API key in the " + KeyHeader + " header. Get a free key at https://aistudio.google.com/apikey",
			})
			c.Abort()
			return
		}
		c.Set(keyContextField, key)
		c.Next()
	}
}

// APIKey returns the credential extracted by APIKeyMiddleware.
func APIKey(c *gin.Context) string {
	return c.GetString(keyContextField)
}
