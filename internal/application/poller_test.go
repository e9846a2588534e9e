package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type manualTicker struct {
	ticks   chan time.Time
	stopped atomic.Bool
}

func newManualTicker() *manualTicker {
	return &manualTicker{ticks: make(chan time.Time)}
}

func (m *manualTicker) factory(time.Duration) (<-chan time.Time, func()) {
	return m.ticks, func() { m.stopped.Store(true) }
}

func (m *manualTicker) tick(t *testing.T) {
	t.Helper()
	select {
	case m.ticks <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("poller did not accept tick")
	}
}

func TestPollerRunsImmediatelyAndOnEveryTickDespiteSlowRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	ticker := newManualTicker()
	release := make(chan struct{})
	var calls atomic.Int32

	poller := NewPoller("cycle", time.Minute, func(context.Context) {
		if calls.Add(1) == 1 {
			<-release
		}
	}, nil, WithTicker(ticker.factory))

	poller.Start(context.Background())
	ticker.tick(t)
	ticker.tick(t)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	close(release)
	poller.Stop()
	poller.Wait()
	assert.True(t, ticker.stopped.Load())
}

func TestPollerStopEndsSchedulingButLetsInFlightRunFinish(t *testing.T) {
	defer goleak.VerifyNone(t)

	ticker := newManualTicker()
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	var cancelledDuringRun atomic.Bool

	poller := NewPoller("mentions", time.Minute, func(ctx context.Context) {
		close(started)
		<-release
		cancelledDuringRun.Store(ctx.Err() != nil)
		finished.Store(true)
	}, nil, WithTicker(ticker.factory))

	ctx, cancel := context.WithCancel(context.Background())
	poller.Start(ctx)
	<-started

	cancel()
	poller.Stop()

	select {
	case ticker.ticks <- time.Now():
		t.Fatal("stopped poller accepted a tick")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	poller.Wait()
	assert.True(t, finished.Load())
	assert.False(t, cancelledDuringRun.Load())
}

func TestPollerRecoversFromPanickingRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	ticker := newManualTicker()
	var calls atomic.Int32
	poller := NewPoller("transfers", time.Minute, func(context.Context) {
		calls.Add(1)
		panic("rpc exploded")
	}, nil, WithTicker(ticker.factory))

	poller.Start(context.Background())
	ticker.tick(t)
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	poller.Stop()
	poller.Wait()
}

func TestPollerRunBlocksUntilContextDone(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls atomic.Int32
	poller := NewPoller("real-ticker", 5*time.Millisecond, func(context.Context) {
		calls.Add(1)
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	poller.Wait()
}
