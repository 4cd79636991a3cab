// Package eventbus contains the in-process publish/subscribe fan-out for
// lifecycle and anomaly events, plus the optional bridge that mirrors them to
// Google Pub/Sub for external observers.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"lifeline/internal/domain/service"
)

// bus is the in-process EventBus. Subscribers are registered during process
// initialization; Emit fans out to a snapshot of the handler list, so a
// handler registered after an Emit does not observe that event.
type bus struct {
	mu       sync.RWMutex
	handlers map[string][]service.EventHandler
	closed   bool
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewBus creates an in-process event bus.
func NewBus(logger *slog.Logger) service.EventBus {
	return &bus{
		handlers: make(map[string][]service.EventHandler),
		logger:   logger,
	}
}

// Subscribe registers a handler for the named event.
func (b *bus) Subscribe(name string, handler service.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
}

// Emit publishes an event to all current subscribers of name. Each handler
// runs on its own goroutine; a slow or panicking handler never blocks the
// emitter or its sibling subscribers.
func (b *bus) Emit(ctx context.Context, name string, payload any) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()

		return
	}
	subscribers := b.handlers[name]
	b.wg.Add(len(subscribers))
	b.mu.RUnlock()

	for _, handler := range subscribers {
		go func(handler service.EventHandler) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panicked",
						slog.String("event", name),
						slog.Any("panic", r),
					)
				}
			}()

			handler(ctx, payload)
		}(handler)
	}
}

// Close stops delivery and waits for in-flight handlers.
func (b *bus) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.wg.Wait()

	return nil
}
