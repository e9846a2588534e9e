package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

const (
	defaultReceiptTimeout = 2 * time.Minute
	defaultReceiptPoll    = 2 * time.Second
	heartbeatPrefix       = "pixeloracle:heartbeat"
)

// Backend is the subset of *ethclient.Client the ledger needs.
type Backend interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type Config struct {
	PrivateKey      string
	ContractAddress string
	Network         domain.Network
	RPCURL          string
	ReceiptTimeout  time.Duration
	ReceiptPoll     time.Duration
}

// Ledger implements ports.LedgerService against an ERC-721 collection contract.
type Ledger struct {
	backend        Backend
	key            *ecdsa.PrivateKey
	wallet         common.Address
	contract       common.Address
	hasContract    bool
	network        domain.Network
	chainID        *big.Int
	receiptTimeout time.Duration
	receiptPoll    time.Duration

	sendMu sync.Mutex
}

var _ ports.LedgerService = (*Ledger)(nil)

// Dial connects to cfg.RPCURL, or the network's public endpoint when empty.
func Dial(ctx context.Context, cfg Config) (*Ledger, *ethclient.Client, error) {
	url := strings.TrimSpace(cfg.RPCURL)
	if url == "" {
		url = cfg.Network.DefaultRPCURL()
	}
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rpc %s: %w", url, err)
	}
	ledger, err := NewLedger(client, cfg)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return ledger, client, nil
}

func NewLedger(backend Backend, cfg Config) (*Ledger, error) {
	key, err := parsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		backend:        backend,
		key:            key,
		wallet:         crypto.PubkeyToAddress(key.PublicKey),
		network:        cfg.Network,
		chainID:        big.NewInt(cfg.Network.ChainID()),
		receiptTimeout: cfg.ReceiptTimeout,
		receiptPoll:    cfg.ReceiptPoll,
	}
	if l.receiptTimeout <= 0 {
		l.receiptTimeout = defaultReceiptTimeout
	}
	if l.receiptPoll <= 0 {
		l.receiptPoll = defaultReceiptPoll
	}

	if contract := strings.TrimSpace(cfg.ContractAddress); contract != "" {
		if !common.IsHexAddress(contract) {
			return nil, fmt.Errorf("%w: NFT_CONTRACT_ADDRESS %q", domain.ErrInvalidSetting, contract)
		}
		l.contract = common.HexToAddress(contract)
		l.hasContract = true
	}

	return l, nil
}

func parsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if raw == "" {
		return nil, fmt.Errorf("%w: PRIVATE_KEY", domain.ErrMissingSetting)
	}
	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: PRIVATE_KEY: %v", domain.ErrInvalidSetting, err)
	}
	return key, nil
}

func (l *Ledger) Network() domain.Network {
	return l.network
}

func (l *Ledger) WalletAddress() string {
	return l.wallet.Hex()
}

func (l *Ledger) ContractAddress() string {
	if !l.hasContract {
		return ""
	}
	return l.contract.Hex()
}

func (l *Ledger) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := l.backend.BalanceAt(ctx, l.wallet, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance of %s: %w", l.wallet.Hex(), err)
	}
	return balance, nil
}

// TotalMinted reports zero when no contract is configured so status stays readable before deployment.
func (l *Ledger) TotalMinted(ctx context.Context) (*big.Int, error) {
	if !l.hasContract {
		return new(big.Int), nil
	}

	data, err := parsedABI.Pack("totalSupply")
	if err != nil {
		return nil, fmt.Errorf("pack totalSupply: %w", err)
	}
	out, err := l.backend.CallContract(ctx, ethereum.CallMsg{To: &l.contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call totalSupply: %w", err)
	}
	values, err := parsedABI.Unpack("totalSupply", out)
	if err != nil {
		return nil, fmt.Errorf("unpack totalSupply: %w", err)
	}
	total, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack totalSupply: unexpected %T", values[0])
	}
	return total, nil
}

func (l *Ledger) Mint(ctx context.Context, req domain.MintRequest) (domain.MintReceipt, error) {
	if !l.hasContract {
		return domain.MintReceipt{}, domain.ErrContractNotSet
	}

	promptHash := crypto.Keccak256Hash([]byte(req.Prompt))
	data, err := parsedABI.Pack("mintArtwork", l.wallet, req.MetadataURI, [32]byte(promptHash), req.Theme)
	if err != nil {
		return domain.MintReceipt{}, fmt.Errorf("pack mintArtwork: %w", err)
	}

	tx, err := l.send(ctx, l.contract, data)
	if err != nil {
		return domain.MintReceipt{}, fmt.Errorf("send mint: %w", err)
	}

	receipt, err := l.waitMined(ctx, tx.Hash())
	if err != nil {
		return domain.MintReceipt{}, fmt.Errorf("wait for mint %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return domain.MintReceipt{}, fmt.Errorf("%w: %s", domain.ErrMintReverted, tx.Hash().Hex())
	}

	tokenID, ok := l.mintedTokenID(receipt)
	if !ok {
		return domain.MintReceipt{}, fmt.Errorf("%w: %s", domain.ErrTokenIDNotFound, tx.Hash().Hex())
	}

	return domain.MintReceipt{TokenID: tokenID, TxHash: tx.Hash().Hex()}, nil
}

// RecordHeartbeat sends a zero-value self transaction whose data carries the checkpoint.
func (l *Ledger) RecordHeartbeat(ctx context.Context, heartbeat domain.Heartbeat) (string, error) {
	data := []byte(fmt.Sprintf("%s:%d:%d:%d", heartbeatPrefix, heartbeat.Completed, heartbeat.Cycle, heartbeat.At.Unix()))
	tx, err := l.send(ctx, l.wallet, data)
	if err != nil {
		return "", fmt.Errorf("send heartbeat: %w", err)
	}
	return tx.Hash().Hex(), nil
}

func (l *Ledger) LatestBlock(ctx context.Context) (uint64, error) {
	head, err := l.backend.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return head, nil
}

func (l *Ledger) Transfers(ctx context.Context, fromBlock, toBlock uint64) ([]domain.Transfer, error) {
	if !l.hasContract {
		return nil, nil
	}

	logs, err := l.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{l.contract},
		Topics:    [][]common.Hash{{transferEventID()}},
	})
	if err != nil {
		return nil, fmt.Errorf("filter transfer logs %d-%d: %w", fromBlock, toBlock, err)
	}

	transfers := make([]domain.Transfer, 0, len(logs))
	for _, log := range logs {
		transfer, ok := decodeTransfer(log)
		if !ok {
			continue
		}
		transfers = append(transfers, transfer)
	}
	return transfers, nil
}

func (l *Ledger) send(ctx context.Context, to common.Address, data []byte) (*types.Transaction, error) {
	l.sendMu.Lock()
	defer l.sendMu.Unlock()

	nonce, err := l.backend.PendingNonceAt(ctx, l.wallet)
	if err != nil {
		return nil, fmt.Errorf("get nonce: %w", err)
	}
	gasPrice, err := l.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	gas, err := l.backend.EstimateGas(ctx, ethereum.CallMsg{From: l.wallet, To: &to, Data: data})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    new(big.Int),
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(l.chainID), l.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	if err := l.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("broadcast transaction: %w", err)
	}
	return signed, nil
}

func (l *Ledger) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, l.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(l.receiptPoll)
	defer ticker.Stop()

	for {
		receipt, err := l.backend.TransactionReceipt(waitCtx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}

		select {
		case <-waitCtx.Done():
			return nil, waitCtx.Err()
		case <-ticker.C:
		}
	}
}

// mintedTokenID finds the Transfer from the zero address to the wallet emitted by the mint.
func (l *Ledger) mintedTokenID(receipt *types.Receipt) (*big.Int, bool) {
	for _, log := range receipt.Logs {
		if log == nil || log.Address != l.contract {
			continue
		}
		transfer, ok := decodeTransfer(*log)
		if !ok {
			continue
		}
		if transfer.From == (common.Address{}).Hex() && strings.EqualFold(transfer.To, l.wallet.Hex()) {
			return transfer.TokenID, true
		}
	}
	return nil, false
}

func decodeTransfer(log types.Log) (domain.Transfer, bool) {
	if len(log.Topics) != 4 || log.Topics[0] != transferEventID() {
		return domain.Transfer{}, false
	}
	return domain.Transfer{
		From:     common.BytesToAddress(log.Topics[1].Bytes()).Hex(),
		To:       common.BytesToAddress(log.Topics[2].Bytes()).Hex(),
		TokenID:  new(big.Int).SetBytes(log.Topics[3].Bytes()),
		TxHash:   log.TxHash.Hex(),
		LogIndex: log.Index,
		Block:    log.BlockNumber,
	}, true
}
