package application

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TickerFunc returns a tick channel and a stop function. Tests substitute a manual tick source.
type TickerFunc func(interval time.Duration) (<-chan time.Time, func())

func systemTicker(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}

type PollerOption func(*Poller)

func WithTicker(newTicker TickerFunc) PollerOption {
	return func(p *Poller) {
		p.newTicker = newTicker
	}
}

// Poller fires work immediately and then on every tick. Each firing runs in its own goroutine, so a
// slow run never delays the next trigger and runs may overlap. Stopping ends scheduling only;
// runs already started finish on a context that is detached from cancellation.
type Poller struct {
	name      string
	interval  time.Duration
	work      func(context.Context)
	logger    *zap.Logger
	newTicker TickerFunc

	mu      sync.Mutex
	cancel  context.CancelFunc
	loop    sync.WaitGroup
	running sync.WaitGroup
}

func NewPoller(name string, interval time.Duration, work func(context.Context), logger *zap.Logger, opts ...PollerOption) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Poller{
		name:      name,
		interval:  interval,
		work:      work,
		logger:    logger.With(zap.String("poller", name)),
		newTicker: systemTicker,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	workCtx := context.WithoutCancel(ctx)

	p.logger.Info("poller started", zap.Duration("interval", p.interval))
	p.fire(workCtx)

	ticks, stopTicker := p.newTicker(p.interval)
	p.loop.Add(1)
	go func() {
		defer p.loop.Done()
		defer stopTicker()

		for {
			select {
			case <-loopCtx.Done():
				p.logger.Info("poller stopped")
				return
			case <-ticks:
				if loopCtx.Err() != nil {
					return
				}
				p.fire(workCtx)
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.loop.Wait()
}

// Wait blocks until the schedule loop has exited and every started run has returned.
func (p *Poller) Wait() {
	p.loop.Wait()
	p.running.Wait()
}

// Run starts the poller and blocks until ctx is cancelled. It suits errgroup supervision.
func (p *Poller) Run(ctx context.Context) error {
	p.Start(ctx)
	<-ctx.Done()
	p.Stop()
	return nil
}

func (p *Poller) fire(ctx context.Context) {
	p.running.Add(1)
	go func() {
		defer p.running.Done()
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("poll run panicked", zap.Any("panic", r))
			}
		}()

		p.work(ctx)
	}()
}
