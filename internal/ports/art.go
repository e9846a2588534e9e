package ports

import (
	"context"

	"github.com/bnema/pixeloracle/internal/domain"
)

// ArtService is the generative backend. Implementations do not retry; callers wrap them.
type ArtService interface {
	Imagine(ctx context.Context, theme string, style string) (domain.Concept, error)
	Render(ctx context.Context, concept domain.Concept) ([]byte, error)
	Proclaim(ctx context.Context, concept domain.Concept) (string, error)
}
