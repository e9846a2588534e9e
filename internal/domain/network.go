package domain

import (
	"fmt"
	"math/big"
	"strings"
)

type Network string

const (
	NetworkBase        Network = "base"
	NetworkBaseSepolia Network = "baseSepolia"
)

const (
	ipfsScheme  = "ipfs://"
	ipfsGateway = "https://gateway.pinata.cloud/ipfs/"
)

func ParseNetwork(raw string) (Network, error) {
	switch Network(strings.TrimSpace(raw)) {
	case NetworkBase:
		return NetworkBase, nil
	case NetworkBaseSepolia, "":
		return NetworkBaseSepolia, nil
	default:
		return "", fmt.Errorf("%w: network %q (want base or baseSepolia)", ErrInvalidSetting, raw)
	}
}

func (n Network) ChainID() int64 {
	if n == NetworkBase {
		return 8453
	}
	return 84532
}

func (n Network) DefaultRPCURL() string {
	if n == NetworkBase {
		return "https://mainnet.base.org"
	}
	return "https://sepolia.base.org"
}

func (n Network) ExplorerTxURL(txHash string) string {
	if n == NetworkBase {
		return "https://basescan.org/tx/" + txHash
	}
	return "https://sepolia.basescan.org/tx/" + txHash
}

func (n Network) MarketplaceURL(contract string, tokenID *big.Int) string {
	id := "0"
	if tokenID != nil {
		id = tokenID.String()
	}
	if n == NetworkBase {
		return fmt.Sprintf("https://opensea.io/assets/base/%s/%s", contract, id)
	}
	return fmt.Sprintf("https://testnets.opensea.io/assets/base-sepolia/%s/%s", contract, id)
}

func IPFSURI(cid string) string {
	return ipfsScheme + cid
}

// GatewayURL rewrites ipfs:// URIs to the public HTTP gateway; other URIs pass through.
func GatewayURL(uri string) string {
	if strings.HasPrefix(uri, ipfsScheme) {
		return ipfsGateway + strings.TrimPrefix(uri, ipfsScheme)
	}
	return uri
}
