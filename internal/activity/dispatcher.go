package activity

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Handler handles a published activity.
type Handler func(context.Context, Activity) error

// Dispatcher interface allows activity publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, activity Activity)
	Subscribe(kind Kind, handler Handler)
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[Kind][]Handler
	logger    *zap.Logger
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher(logger *zap.Logger) Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &inMemoryDispatcher{
		listeners: make(map[Kind][]Handler),
		logger:    logger,
	}
}

// Publish synchronously invokes handlers for the activity. Handler failures are logged
// and never reach the publisher.
func (d *inMemoryDispatcher) Publish(ctx context.Context, activity Activity) {
	d.mu.RLock()
	handlers := append([]Handler{}, d.listeners[activity.Kind]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, activity); err != nil {
			d.logger.Warn("activity handler failed",
				zap.String("kind", string(activity.Kind)),
				zap.String("activity_id", activity.ID),
				zap.Error(err))
		}
	}
}

// Subscribe registers a handler for the given kind.
func (d *inMemoryDispatcher) Subscribe(kind Kind, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[kind] = append(d.listeners[kind], handler)
}
