package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// captureClient is the subset of posthog.Client the wrapper needs.
type captureClient interface {
	Enqueue(posthog.Message) error
	Close() error
}

// AnalyticsClient wraps the PostHog client so callers never have to care
// whether analytics is configured. A client without an API key drops every
// capture silently.
type AnalyticsClient struct {
	client captureClient
	logger *slog.Logger
}

// NewAnalyticsClient initializes the PostHog-backed usage tracker. An empty
// API key returns a disabled client.
func NewAnalyticsClient(apiKey string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("POSTHOG_API_KEY not set, usage analytics disabled")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: "https://eu.i.posthog.com"})
	if err != nil {
		logger.Error("Failed to initialize analytics client", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	return &AnalyticsClient{client: client, logger: logger}
}

// Enabled reports whether captures will actually be sent.
func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.client != nil
}

// Capture enqueues a usage event keyed by the acting user.
func (a *AnalyticsClient) Capture(userID string, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	err := a.client.Enqueue(posthog.Capture{
		DistinctId: userID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && a.logger != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes any buffered events.
func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	_ = a.client.Close()
}
