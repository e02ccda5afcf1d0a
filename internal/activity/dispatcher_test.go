package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcher_PublishToSubscribers(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))

	var got []Activity
	d.Subscribe(KindEventCreated, func(_ context.Context, a Activity) error {
		return errors.New("sink unavailable")
	})
	d.Subscribe(KindEventCreated, func(_ context.Context, a Activity) error {
		got = append(got, a)
		return nil
	})

	created := New(KindEventCreated, "user-1", "event-1")
	d.Publish(context.Background(), created)
	d.Publish(context.Background(), New(KindEventDeleted, "user-1", "event-1"))

	require.Len(t, got, 1, "a failing handler must not stop the next one")
	assert.Equal(t, created, got[0])
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, 1, logs.FilterMessage("activity handler failed").Len())
}
