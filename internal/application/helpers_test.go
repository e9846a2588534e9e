package application

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return ctx != nil
	})
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixedRandom struct {
	index  int
	chance float64
}

func (f fixedRandom) IntN(n int) int {
	if f.index >= n {
		return n - 1
	}
	return f.index
}

func (f fixedRandom) Float64() float64 {
	return f.chance
}

func noSleep(context.Context, time.Duration) error {
	return nil
}

func instantPolicies() RetryPolicies {
	return RetryPolicies{
		Concept:     RetryPolicy{Label: "concept", MaxAttempts: 2},
		Render:      RetryPolicy{Label: "render", MaxAttempts: 3},
		Ledger:      RetryPolicy{Label: "ledger", MaxAttempts: 1},
		PinImage:    RetryPolicy{Label: "pin image", MaxAttempts: 3},
		PinMetadata: RetryPolicy{Label: "pin metadata", MaxAttempts: 3},
		Proclaim:    RetryPolicy{Label: "proclaim", MaxAttempts: 1},
	}
}
