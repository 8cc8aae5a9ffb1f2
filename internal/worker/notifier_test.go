package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotifier_RunsQueuedJobs(t *testing.T) {
	n := NewNotifier(4, time.Second, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go n.Run(ctx)

	done := make(chan string, 2)
	require.True(t, n.Enqueue(Job{Name: "a", Run: func(context.Context) error { done <- "a"; return nil }}))
	require.True(t, n.Enqueue(Job{Name: "b", Run: func(context.Context) error { done <- "b"; return errors.New("boom") }}))

	for _, want := range []string{"a", "b"} {
		select {
		case got := <-done:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("job %s did not run", want)
		}
	}
}

func TestNotifier_JobContextIsDetachedAndBounded(t *testing.T) {
	n := NewNotifier(1, 50*time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go n.Run(ctx)

	deadline := make(chan bool, 1)
	n.Enqueue(Job{Name: "deadline", Run: func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		deadline <- ok
		return nil
	}})

	select {
	case ok := <-deadline:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestNotifier_EnqueueDropsWhenFull(t *testing.T) {
	n := NewNotifier(1, time.Second, zap.NewNop())
	noop := func(context.Context) error { return nil }

	assert.True(t, n.Enqueue(Job{Name: "first", Run: noop}))
	assert.False(t, n.Enqueue(Job{Name: "second", Run: noop}))
}

func TestNotifier_DrainsOnShutdown(t *testing.T) {
	n := NewNotifier(3, time.Second, zap.NewNop())
	var ran atomic.Int32
	for i := 0; i < 3; i++ {
		n.Enqueue(Job{Name: "job", Run: func(context.Context) error { ran.Add(1); return nil }})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stopped := make(chan struct{})
	go func() {
		n.Run(ctx)
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier did not stop")
	}
	assert.Equal(t, int32(3), ran.Load())
}
