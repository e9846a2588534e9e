package ports

import (
	"context"

	"github.com/bnema/pixeloracle/internal/domain"
)

type BroadcastChannel interface {
	Channel() domain.Channel
	// MaxLength is the post length limit in characters; 0 means unlimited.
	MaxLength() int
	Post(ctx context.Context, post domain.Post) (domain.PostReceipt, error)
}

type MentionSource interface {
	Channel() domain.Channel
	Mentions(ctx context.Context) ([]domain.Mention, error)
}
