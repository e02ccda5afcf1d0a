package observability

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics("test")

	m.RecordRequest("/event/:id", fiber.MethodGet, 200, 15*time.Millisecond)
	m.RecordRequest("/event/:id", fiber.MethodGet, 200, 5*time.Millisecond)
	m.RecordError("/event/:id", fiber.MethodGet, "NOT_FOUND")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("/event/:id", "GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.errors.WithLabelValues("/event/:id", "GET", "NOT_FOUND")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "INTERNAL_ERROR")
		m.RecordActivity("event_created")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("test")
	m.RecordRequest("/", "GET", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{method="GET",route="/",status="200"} 1`)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewMetrics("test")

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core), m))
	app.Get("/ok/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ok/42", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok", string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/ok/:id", entries[0].ContextMap()["route"])
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("/ok/:id", "GET", "200")))
}
