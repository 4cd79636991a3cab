package eventbus

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lifeline/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) service.EventBus {
	t.Helper()

	b := NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() {
		_ = b.Close()
	})

	return b
}

func TestBus_EmitReachesAllSubscribers(t *testing.T) {
	b := newTestBus(t)

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var got []any

	handler := func(_ context.Context, payload any) {
		mu.Lock()
		got = append(got, payload)
		mu.Unlock()
		wg.Done()
	}

	b.Subscribe(service.EventEmergencyCreated, handler)
	b.Subscribe(service.EventEmergencyCreated, handler)

	b.Emit(context.Background(), service.EventEmergencyCreated, "alert-1")

	waitWithTimeout(t, &wg)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, "alert-1", got[0])
	assert.Equal(t, "alert-1", got[1])
}

func TestBus_EmitWithoutSubscribersIsNoop(t *testing.T) {
	b := newTestBus(t)

	assert.NotPanics(t, func() {
		b.Emit(context.Background(), service.EventMovementUnusual, nil)
	})
}

func TestBus_SubscriberOnlySeesItsEvent(t *testing.T) {
	b := newTestBus(t)

	var wg sync.WaitGroup
	wg.Add(1)

	var mu sync.Mutex
	var created, resolved int

	b.Subscribe(service.EventEmergencyCreated, func(_ context.Context, _ any) {
		mu.Lock()
		created++
		mu.Unlock()
		wg.Done()
	})
	b.Subscribe(service.EventEmergencyResolved, func(_ context.Context, _ any) {
		mu.Lock()
		resolved++
		mu.Unlock()
	})

	b.Emit(context.Background(), service.EventEmergencyCreated, nil)

	waitWithTimeout(t, &wg)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, created)
	assert.Zero(t, resolved)
}

func TestBus_PanickingSubscriberDoesNotAffectSiblings(t *testing.T) {
	b := newTestBus(t)

	var wg sync.WaitGroup
	wg.Add(1)

	b.Subscribe(service.EventEmergencyEscalated, func(_ context.Context, _ any) {
		panic("subscriber exploded")
	})
	b.Subscribe(service.EventEmergencyEscalated, func(_ context.Context, _ any) {
		wg.Done()
	})

	assert.NotPanics(t, func() {
		b.Emit(context.Background(), service.EventEmergencyEscalated, nil)
	})

	waitWithTimeout(t, &wg)
}

func TestBus_CloseWaitsForInFlightHandlers(t *testing.T) {
	b := NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var mu sync.Mutex
	done := false

	b.Subscribe(service.EventEmergencyCreated, func(_ context.Context, _ any) {
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		done = true
		mu.Unlock()
	})

	b.Emit(context.Background(), service.EventEmergencyCreated, nil)
	require.NoError(t, b.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, done)
}

func waitWithTimeout(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	ch := make(chan struct{})
	go func() {
		wg.Wait()
		close(ch)
	}()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscribers")
	}
}
