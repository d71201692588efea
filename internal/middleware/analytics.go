package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"
)

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware creates a Gin middleware handler that captures API
// events with PostHog. A nil client disables tracking.
func AnalyticsMiddleware(client posthog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		operator, exists := GetOperatorFromContext(c)
		if !exists {
			return
		}

		// Event name from route path, e.g. "/api/v1/clients" -> "api_v1_clients".
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := posthog.NewProperties().
			Set("method", c.Request.Method).
			Set("path", c.Request.URL.Path).
			Set("status_code", c.Writer.Status())

		_ = client.Enqueue(posthog.Capture{
			DistinctId: operator,
			Event:      eventName,
			Properties: props,
		})
	}
}
