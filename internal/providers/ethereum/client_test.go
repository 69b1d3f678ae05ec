package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/mocks"
	ethprovider "github.com/iryswiki/iryswiki/internal/providers/ethereum"
)

const (
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

var testChainID = big.NewInt(domain.DEFAULT_CHAIN_ID)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testClientMocks struct {
	ctrl      *gomock.Controller
	ethClient *mocks.MockEthClient
	signer    adapter.Signer
	client    ethprovider.Client
}

func setupTestClient(t *testing.T) *testClientMocks {
	ctrl := gomock.NewController(t)
	signer, err := adapter.NewKeySigner(testPrivateKey)
	require.NoError(t, err)

	tm := &testClientMocks{
		ctrl:      ctrl,
		ethClient: mocks.NewMockEthClient(ctrl),
		signer:    signer,
	}
	tm.client = ethprovider.NewClient(testChainID, tm.ethClient, signer)
	return tm
}

func TestClient_Address(t *testing.T) {
	tm := setupTestClient(t)
	defer tm.ctrl.Finish()

	address, err := tm.client.Address()
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)
	assert.True(t, tm.client.HasSigner())

	readOnly := ethprovider.NewClient(testChainID, tm.ethClient, nil)
	_, err = readOnly.Address()
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
	assert.False(t, readOnly.HasSigner())
}

func TestClient_Balance(t *testing.T) {
	tests := []struct {
		name    string
		address string
		setup   func(tm *testClientMocks)
		want    *big.Int
		wantErr error
	}{
		{
			name:    "returns balance",
			address: testAddress,
			setup: func(tm *testClientMocks) {
				tm.ethClient.EXPECT().
					BalanceAt(gomock.Any(), common.HexToAddress(testAddress), nil).
					Return(big.NewInt(500000000000000), nil)
			},
			want: big.NewInt(500000000000000),
		},
		{
			name:    "wraps rpc failure",
			address: testAddress,
			setup: func(tm *testClientMocks) {
				tm.ethClient.EXPECT().
					BalanceAt(gomock.Any(), gomock.Any(), nil).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: domain.ErrChainAccess,
		},
		{
			name:    "rejects malformed address",
			address: "0x123",
			setup:   func(tm *testClientMocks) {},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestClient(t)
			defer tm.ctrl.Finish()
			tt.setup(tm)

			balance, err := tm.client.Balance(context.Background(), tt.address)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, tt.want.Cmp(balance))
		})
	}
}

func TestClient_Transaction(t *testing.T) {
	recipient := common.HexToAddress(domain.DEFAULT_PAYMENT_WALLET)

	t.Run("recovers sender", func(t *testing.T) {
		tm := setupTestClient(t)
		defer tm.ctrl.Finish()

		tx := types.NewTx(&types.LegacyTx{
			Nonce:    1,
			To:       &recipient,
			Value:    big.NewInt(300000000000000),
			Gas:      params.TxGas,
			GasPrice: big.NewInt(1),
		})
		signed, err := tm.signer.SignTx(tx, testChainID)
		require.NoError(t, err)

		tm.ethClient.EXPECT().
			TransactionByHash(gomock.Any(), signed.Hash()).
			Return(signed, false, nil)

		got, err := tm.client.Transaction(context.Background(), signed.Hash().Hex())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, testAddress, got.From)
		assert.Equal(t, recipient.Hex(), got.To)
		assert.Equal(t, "300000000000000", got.Value.String())
	})

	t.Run("unknown hash returns nil", func(t *testing.T) {
		tm := setupTestClient(t)
		defer tm.ctrl.Finish()

		tm.ethClient.EXPECT().
			TransactionByHash(gomock.Any(), gomock.Any()).
			Return(nil, false, ethereum.NotFound)

		got, err := tm.client.Transaction(context.Background(), "0xabc")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("rpc failure", func(t *testing.T) {
		tm := setupTestClient(t)
		defer tm.ctrl.Finish()

		tm.ethClient.EXPECT().
			TransactionByHash(gomock.Any(), gomock.Any()).
			Return(nil, false, errors.New("timeout"))

		_, err := tm.client.Transaction(context.Background(), "0xabc")
		assert.ErrorIs(t, err, domain.ErrChainAccess)
	})
}

func TestClient_SendValueTransfer(t *testing.T) {
	amount := big.NewInt(300000000000000)

	t.Run("signs and submits", func(t *testing.T) {
		tm := setupTestClient(t)
		defer tm.ctrl.Finish()

		from := common.HexToAddress(testAddress)
		var sent *types.Transaction
		gomock.InOrder(
			tm.ethClient.EXPECT().PendingNonceAt(gomock.Any(), from).Return(uint64(7), nil),
			tm.ethClient.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1000000000), nil),
			tm.ethClient.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(0), nil),
			tm.ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
					sent = tx
					return nil
				}),
		)

		hash, err := tm.client.SendValueTransfer(context.Background(), domain.DEFAULT_PAYMENT_WALLET, amount)
		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.Equal(t, sent.Hash().Hex(), hash)
		assert.Equal(t, uint64(7), sent.Nonce())
		assert.Equal(t, params.TxGas, sent.Gas())
		assert.Equal(t, 0, amount.Cmp(sent.Value()))
		assert.Equal(t, common.HexToAddress(domain.DEFAULT_PAYMENT_WALLET), *sent.To())

		sender, err := types.Sender(types.LatestSignerForChainID(testChainID), sent)
		require.NoError(t, err)
		assert.Equal(t, from, sender)
	})

	t.Run("submission failure", func(t *testing.T) {
		tm := setupTestClient(t)
		defer tm.ctrl.Finish()

		tm.ethClient.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(0), nil)
		tm.ethClient.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1), nil)
		tm.ethClient.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(params.TxGas, nil)
		tm.ethClient.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(errors.New("nonce too low"))

		_, err := tm.client.SendValueTransfer(context.Background(), domain.DEFAULT_PAYMENT_WALLET, amount)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nonce too low")
	})

	t.Run("requires signer", func(t *testing.T) {
		tm := setupTestClient(t)
		defer tm.ctrl.Finish()

		readOnly := ethprovider.NewClient(testChainID, tm.ethClient, nil)
		_, err := readOnly.SendValueTransfer(context.Background(), domain.DEFAULT_PAYMENT_WALLET, amount)
		assert.ErrorIs(t, err, domain.ErrNotInitialized)
	})
}
