package application

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
)

// LedgerStatus is the on-demand wallet and collection summary printed by the status command.
type LedgerStatus struct {
	Network     domain.Network `json:"network"`
	Contract    string         `json:"contract"`
	Wallet      string         `json:"wallet"`
	Balance     *big.Int       `json:"balanceWei"`
	BalanceETH  string         `json:"balanceEth"`
	TotalMinted *big.Int       `json:"totalMinted"`
	MinBalance  string         `json:"minBalanceEth"`
	Funded      bool           `json:"funded"`
	CheckedAt   time.Time      `json:"checkedAt"`
}

func QueryLedgerStatus(ctx context.Context, ledger ports.LedgerService, minBalance *big.Int, clock ports.Clock) (LedgerStatus, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if minBalance == nil {
		minBalance = new(big.Int)
	}

	balance, err := ledger.Balance(ctx)
	if err != nil {
		return LedgerStatus{}, fmt.Errorf("read wallet balance: %w", err)
	}

	total, err := ledger.TotalMinted(ctx)
	if err != nil {
		return LedgerStatus{}, fmt.Errorf("read total minted: %w", err)
	}

	return LedgerStatus{
		Network:     ledger.Network(),
		Contract:    ledger.ContractAddress(),
		Wallet:      ledger.WalletAddress(),
		Balance:     balance,
		BalanceETH:  domain.FormatEther(balance),
		TotalMinted: total,
		MinBalance:  domain.FormatEther(minBalance),
		Funded:      balance.Cmp(minBalance) >= 0,
		CheckedAt:   clock.Now(),
	}, nil
}
