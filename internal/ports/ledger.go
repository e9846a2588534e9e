package ports

import (
	"context"
	"math/big"

	"github.com/bnema/pixeloracle/internal/domain"
)

type LedgerService interface {
	Network() domain.Network
	WalletAddress() string
	ContractAddress() string
	Balance(ctx context.Context) (*big.Int, error)
	TotalMinted(ctx context.Context) (*big.Int, error)
	Mint(ctx context.Context, req domain.MintRequest) (domain.MintReceipt, error)
	RecordHeartbeat(ctx context.Context, heartbeat domain.Heartbeat) (string, error)
	LatestBlock(ctx context.Context) (uint64, error)
	Transfers(ctx context.Context, fromBlock, toBlock uint64) ([]domain.Transfer, error)
}
