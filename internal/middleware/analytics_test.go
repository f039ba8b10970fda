package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daybookhq/daybook-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouteEventName(t *testing.T) {
	assert.Equal(t, "api_v1_events", routeEventName("/api/v1/events"))
	assert.Equal(t, "api_v1_events_eventID_complete", routeEventName("/api/v1/events/:eventID/complete"))
	assert.Equal(t, "", routeEventName(""))
}

func TestUsageTracking_DisabledClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(UsageTracking(utils.NewAnalyticsClient("", slog.Default())))
	r.GET("/api/v1/events", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUsageTracking_NilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(UsageTracking(nil))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
