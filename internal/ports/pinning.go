package ports

import "context"

type PinningService interface {
	PinFile(ctx context.Context, name string, data []byte) (string, error)
	PinJSON(ctx context.Context, name string, document any) (string, error)
}
