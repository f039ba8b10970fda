package middleware

import (
	"net/http"
	"strings"

	"github.com/daybookhq/daybook-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths are served without emitting usage events.
var untrackedPaths = map[string]bool{
	"/":       true,
	"/health": true,
}

// UsageTracking emits an analytics event for every successful authenticated
// request, named after the matched route.
func UsageTracking(analytics *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !analytics.Enabled() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		// Only successful requests are tracked
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		eventName := routeEventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}

		analytics.Capture(userID, eventName, props)
	}
}

// routeEventName turns a matched route into an event name, for example
// /api/v1/events/:eventID/complete becomes api_v1_events_eventID_complete.
func routeEventName(fullPath string) string {
	name := strings.TrimPrefix(fullPath, "/")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, "/", "_")
}
