package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

// Заголовок с идентификатором пользователя, выданным внешним провайдером авторизации
const userIDHeader = "X-User-ID"

// APIKeyAuthMiddleware - middleware для аутентификации спасателей по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				isValid = true
				break
			}
		}

		if !isValid {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// viewerID возвращает пользователя из заголовка или "anonymous"
func viewerID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(userIDHeader)); id != "" {
		return id
	}
	return models.AnonymousReporter
}

// ViewerMiddleware кладет зрителя из X-User-ID в контекст запроса
func ViewerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(service.WithViewer(c.Request.Context(), viewerID(c)))
		c.Next()
	}
}
