package application

import (
	"context"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"go.uber.org/zap"
)

// Announcer posts to every configured channel in order. A failing channel never stops the others.
type Announcer struct {
	channels []ports.BroadcastChannel
	missing  []domain.Channel
	metrics  ports.Metrics
	logger   *zap.Logger
}

func NewAnnouncer(channels []ports.BroadcastChannel, missing []domain.Channel, metrics ports.Metrics, logger *zap.Logger) *Announcer {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Announcer{
		channels: channels,
		missing:  missing,
		metrics:  metrics,
		logger:   logger,
	}
}

func (a *Announcer) Channels() []ports.BroadcastChannel {
	return a.channels
}

// Announce posts the artwork. Once a channel returns a public post URL, later channels get that
// link appended so readers can reach the post carrying the image.
func (a *Announcer) Announce(ctx context.Context, post domain.Post) domain.Announcement {
	return a.broadcast(ctx, post, true)
}

// Broadcast posts the same text everywhere without cross-linking.
func (a *Announcer) Broadcast(ctx context.Context, post domain.Post) domain.Announcement {
	return a.broadcast(ctx, post, false)
}

func (a *Announcer) broadcast(ctx context.Context, post domain.Post, thread bool) domain.Announcement {
	announcement := domain.Announcement{Text: post.Text}
	linkURL := ""

	for _, channel := range a.channels {
		name := channel.Channel()
		channelPost := post
		if thread && linkURL != "" {
			channelPost.Text = AppendLink(post.Text, "\n\n🖼️ See artwork: "+linkURL, channel.MaxLength())
		}

		receipt, err := channel.Post(ctx, channelPost)
		if err != nil {
			a.logger.Warn("post failed", zap.String("channel", string(name)), zap.Error(err))
			a.metrics.ChannelPosted(name, false)
			announcement.Results = append(announcement.Results, domain.ChannelResult{
				Channel: name,
				Error:   err.Error(),
			})
			continue
		}

		a.logger.Info("posted", zap.String("channel", string(name)), zap.String("post_id", receipt.ID))
		a.metrics.ChannelPosted(name, true)
		announcement.Results = append(announcement.Results, domain.ChannelResult{
			Channel: name,
			Success: true,
			PostID:  receipt.ID,
			URL:     receipt.URL,
		})
		if linkURL == "" && receipt.URL != "" {
			linkURL = receipt.URL
		}
	}

	for _, name := range a.missing {
		announcement.Results = append(announcement.Results, domain.ChannelResult{
			Channel: name,
			Error:   domain.ErrNotConfigured.Error(),
		})
	}

	return announcement
}
