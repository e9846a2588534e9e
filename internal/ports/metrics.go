package ports

import (
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
)

type Metrics interface {
	CycleFinished(outcome domain.Outcome, elapsed time.Duration)
	ChannelPosted(channel domain.Channel, success bool)
	EventProcessed(source string)
}

type NopMetrics struct{}

func (NopMetrics) CycleFinished(domain.Outcome, time.Duration) {}
func (NopMetrics) ChannelPosted(domain.Channel, bool)          {}
func (NopMetrics) EventProcessed(string)                       {}
