package domain

import (
	"math/big"
	"strings"
	"time"
)

const etherDecimals = 18

var weiPerEther = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(etherDecimals), nil))

type WalletObservation struct {
	Address   string
	Balance   *big.Int
	CheckedAt time.Time
}

func (w WalletObservation) BalanceETH() string {
	return FormatEther(w.Balance)
}

func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerEther)
	return eth.Text('f', 6)
}

// ParseEther converts a decimal ETH amount to wei. Digits past 18 decimals are dropped.
func ParseEther(eth string) (*big.Int, bool) {
	eth = strings.TrimSpace(eth)
	if eth == "" || strings.HasPrefix(eth, "-") {
		return nil, false
	}

	whole, frac, _ := strings.Cut(eth, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > etherDecimals {
		frac = frac[:etherDecimals]
	}
	frac += strings.Repeat("0", etherDecimals-len(frac))

	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, false
	}
	return wei, true
}
