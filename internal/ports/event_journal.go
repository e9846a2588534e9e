package ports

import "context"

// EventJournal persists processed event keys across restarts.
type EventJournal interface {
	Load(ctx context.Context) ([]string, error)
	Append(ctx context.Context, key string) error
}
