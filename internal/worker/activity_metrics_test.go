package worker

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/schedule-manager/internal/activity"
	"github.com/spec-kit/schedule-manager/internal/observability"
)

func TestStartActivityMetrics(t *testing.T) {
	metrics := observability.NewMetrics("test")
	dispatcher := activity.NewInMemoryDispatcher(nil)
	StartActivityMetrics(dispatcher, metrics)

	ctx := context.Background()
	dispatcher.Publish(ctx, activity.New(activity.KindEventCreated, "user-1", "event-9"))
	dispatcher.Publish(ctx, activity.New(activity.KindEventCreated, "user-1", "event-10"))
	dispatcher.Publish(ctx, activity.New(activity.KindUserRegistered, "user-2", "user-2"))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `test_activities_total{kind="event_created"} 2`)
	assert.Contains(t, body, `test_activities_total{kind="user_registered"} 1`)
	assert.NotContains(t, body, `kind="event_deleted"`)
}

func TestStartActivityMetrics_NilCollaborators(t *testing.T) {
	assert.NotPanics(t, func() {
		StartActivityMetrics(nil, observability.NewMetrics("test"))
		StartActivityMetrics(activity.NewInMemoryDispatcher(nil), nil)
	})
}
