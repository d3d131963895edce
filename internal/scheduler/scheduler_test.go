package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeCompleter struct {
	calls atomic.Int64
	n     int
	err   error
}

func (f *fakeCompleter) CompleteElapsed(ctx context.Context) (int, error) {
	f.calls.Add(1)
	return f.n, f.err
}

func TestScheduler_Tick_CompletesElapsed(t *testing.T) {
	reservations := &fakeCompleter{n: 2}
	bookings := &fakeCompleter{n: 1}

	s := New(reservations, bookings, 50*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, reservations.calls.Load(), int64(1))
	assert.GreaterOrEqual(t, bookings.calls.Load(), int64(1))
}

func TestScheduler_Tick_ReservationErrorDoesNotSkipBookings(t *testing.T) {
	reservations := &fakeCompleter{err: errors.New("db error")}
	bookings := &fakeCompleter{n: 1}

	s := New(reservations, bookings, 50*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, reservations.calls.Load(), int64(1))
	assert.GreaterOrEqual(t, bookings.calls.Load(), int64(1))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	s := New(&fakeCompleter{}, &fakeCompleter{}, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
