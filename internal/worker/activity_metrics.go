package worker

import (
	"context"

	"github.com/spec-kit/schedule-manager/internal/activity"
	"github.com/spec-kit/schedule-manager/internal/observability"
)

var countedKinds = []activity.Kind{
	activity.KindUserRegistered,
	activity.KindEventCreated,
	activity.KindEventUpdated,
	activity.KindEventDeleted,
}

// StartActivityMetrics subscribes a handler counting every activity by kind.
func StartActivityMetrics(dispatcher activity.Dispatcher, metrics *observability.Metrics) {
	if dispatcher == nil || metrics == nil {
		return
	}
	for _, kind := range countedKinds {
		dispatcher.Subscribe(kind, func(_ context.Context, a activity.Activity) error {
			metrics.RecordActivity(string(a.Kind))
			return nil
		})
	}
}
