package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
)

// Client is the chain access capability used by the payment flow
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=Client=MockEthereumClient
type Client interface {
	// ChainID returns the chain id reported by the RPC endpoint
	ChainID(ctx context.Context) (*big.Int, error)

	// HasSigner reports whether a local signer is bound
	HasSigner() bool

	// Address returns the signer address in checksum form
	Address() (string, error)

	// Balance returns the wei balance of an address
	Balance(ctx context.Context, address string) (*big.Int, error)

	// Transaction returns the transaction for hash, or nil when the node does not know it
	Transaction(ctx context.Context, hash string) (*domain.ChainTransaction, error)

	// SendValueTransfer signs and submits a native transfer, returning its hash
	SendValueTransfer(ctx context.Context, to string, amount *big.Int) (string, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	chainID *big.Int
	client  adapter.EthClient
	signer  adapter.Signer
}

// NewClient creates a chain client. signer may be nil for read-only use.
func NewClient(chainID *big.Int, client adapter.EthClient, signer adapter.Signer) Client {
	return &ethereumClient{chainID: chainID, client: client, signer: signer}
}

func (c *ethereumClient) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, &domain.ChainAccessError{Op: "chain id", Err: err}
	}
	return id, nil
}

func (c *ethereumClient) HasSigner() bool {
	return c.signer != nil
}

func (c *ethereumClient) Address() (string, error) {
	if c.signer == nil {
		return "", domain.ErrNotInitialized
	}
	return c.signer.Address().Hex(), nil
}

func (c *ethereumClient) Balance(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: address %q", domain.ErrInvalidInput, address)
	}

	balance, err := c.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, &domain.ChainAccessError{Op: "balance", Err: err}
	}
	return balance, nil
}

func (c *ethereumClient) Transaction(ctx context.Context, hash string) (*domain.ChainTransaction, error) {
	tx, pending, err := c.client.TransactionByHash(ctx, common.HexToHash(hash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, nil
		}
		return nil, &domain.ChainAccessError{Op: "transaction", Err: err}
	}

	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return nil, &domain.ChainAccessError{Op: "recover sender", Err: err}
	}

	var to string
	if tx.To() != nil {
		to = tx.To().Hex()
	}

	logger.Debug("Fetched transaction",
		logger.TxHash(tx.Hash().Hex()),
		zap.Bool("pending", pending),
		zap.String("from", from.Hex()),
		zap.String("to", to))

	return &domain.ChainTransaction{
		Hash:  tx.Hash().Hex(),
		From:  from.Hex(),
		To:    to,
		Value: tx.Value(),
	}, nil
}

func (c *ethereumClient) SendValueTransfer(ctx context.Context, to string, amount *big.Int) (string, error) {
	if c.signer == nil {
		return "", domain.ErrNotInitialized
	}
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("%w: recipient %q", domain.ErrInvalidInput, to)
	}
	if amount == nil || amount.Sign() < 0 {
		return "", fmt.Errorf("%w: transfer amount", domain.ErrInvalidAmount)
	}

	from := c.signer.Address()
	recipient := common.HexToAddress(to)

	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gas, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &recipient,
		Value: amount,
	})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas: %w", err)
	}
	if gas < params.TxGas {
		gas = params.TxGas
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &recipient,
		Value:    amount,
		Gas:      gas,
		GasPrice: gasPrice,
	})

	signed, err := c.signer.SignTx(tx, c.chainID)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.InfoCtx(ctx, "Submitted value transfer",
		logger.TxHash(signed.Hash().Hex()),
		logger.Address(from.Hex()),
		zap.String("to", recipient.Hex()),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", gas))

	return signed.Hash().Hex(), nil
}

func (c *ethereumClient) Close() {
	c.client.Close()
}
