package ethereum_test

import (
	"context"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
	ethprovider "github.com/iryswiki/iryswiki/internal/providers/ethereum"
)

func TestClient_Integration(t *testing.T) {
	rpcURL := os.Getenv("IRYSWIKI_CHAIN_RPC_URL")
	if rpcURL == "" {
		t.Skip("Skipping integration test: IRYSWIKI_CHAIN_RPC_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, rpcURL)
	require.NoError(t, err)
	t.Cleanup(func() { ethClient.Close() })

	client := ethprovider.NewClient(big.NewInt(domain.DEFAULT_CHAIN_ID), ethClient, nil)

	chainID, err := client.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DEFAULT_CHAIN_ID), chainID.Int64())

	balance, err := client.Balance(ctx, domain.DEFAULT_PAYMENT_WALLET)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, balance.Sign(), 0)

	tx, err := client.Transaction(ctx, "0x0000000000000000000000000000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Nil(t, tx)
}
