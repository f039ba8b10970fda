package utils

import (
	"log/slog"
	"testing"

	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaptureClient struct {
	captures []posthog.Capture
	closed   bool
}

func (f *fakeCaptureClient) Enqueue(m posthog.Message) error {
	if capture, ok := m.(posthog.Capture); ok {
		f.captures = append(f.captures, capture)
	}
	return nil
}

func (f *fakeCaptureClient) Close() error {
	f.closed = true
	return nil
}

func TestAnalyticsClient_CaptureSendsEvent(t *testing.T) {
	fake := &fakeCaptureClient{}
	client := &AnalyticsClient{client: fake, logger: slog.Default()}

	client.Capture("user-1", "api_v1_events", map[string]any{"method": "GET"})

	require.Len(t, fake.captures, 1)
	assert.Equal(t, "user-1", fake.captures[0].DistinctId)
	assert.Equal(t, "api_v1_events", fake.captures[0].Event)
	assert.Equal(t, "GET", fake.captures[0].Properties["method"])
}

func TestAnalyticsClient_DisabledIsNoOp(t *testing.T) {
	client := NewAnalyticsClient("", slog.Default())

	assert.False(t, client.Enabled())
	// Neither of these should panic or send anything
	client.Capture("user-1", "api_v1_events", nil)
	client.Close()
}

func TestAnalyticsClient_CloseFlushes(t *testing.T) {
	fake := &fakeCaptureClient{}
	client := &AnalyticsClient{client: fake, logger: slog.Default()}

	client.Close()

	assert.True(t, fake.closed)
}
