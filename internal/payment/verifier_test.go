package payment_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/mocks"
	"github.com/iryswiki/iryswiki/internal/payment"
	"github.com/iryswiki/iryswiki/internal/store"
)

const (
	testSender = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testHash   = "0xabc"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testVerifierMocks struct {
	ctrl     *gomock.Controller
	chain    *mocks.MockEthereumClient
	clock    *mocks.MockClock
	store    store.Store
	verifier payment.Verifier
}

func setupTestVerifier(t *testing.T) *testVerifierMocks {
	ctrl := gomock.NewController(t)
	tm := &testVerifierMocks{
		ctrl:  ctrl,
		chain: mocks.NewMockEthereumClient(ctrl),
		clock: mocks.NewMockClock(ctrl),
		store: store.NewStore(store.NewMemoryKV(), store.DefaultKeys(), adapter.NewJSON()),
	}
	tm.clock.EXPECT().Now().Return(time.UnixMilli(1700000000000)).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()
	tm.verifier = payment.NewVerifier(tm.chain, domain.DefaultFeePolicy(), tm.store, tm.clock, nil)
	return tm
}

func wei(amount string) *big.Int {
	v, err := domain.ParseAmount(amount)
	if err != nil {
		panic(err)
	}
	return v
}

func TestVerifier_SendPayment(t *testing.T) {
	t.Run("transfers fee to payment wallet", func(t *testing.T) {
		tm := setupTestVerifier(t)
		defer tm.ctrl.Finish()

		tm.chain.EXPECT().HasSigner().Return(true)
		tm.chain.EXPECT().
			SendValueTransfer(gomock.Any(), domain.DEFAULT_PAYMENT_WALLET, wei("0.0003")).
			Return(testHash, nil)

		hash, err := tm.verifier.SendPayment(context.Background(), "0.0003")
		require.NoError(t, err)
		assert.Equal(t, testHash, hash)
	})

	t.Run("no signer", func(t *testing.T) {
		tm := setupTestVerifier(t)
		defer tm.ctrl.Finish()

		tm.chain.EXPECT().HasSigner().Return(false)

		_, err := tm.verifier.SendPayment(context.Background(), "0.0003")
		assert.ErrorIs(t, err, domain.ErrNotInitialized)
	})

	t.Run("submission failure is a rejected transfer", func(t *testing.T) {
		tm := setupTestVerifier(t)
		defer tm.ctrl.Finish()

		cause := errors.New("user rejected")
		tm.chain.EXPECT().HasSigner().Return(true)
		tm.chain.EXPECT().SendValueTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return("", cause)

		_, err := tm.verifier.SendPayment(context.Background(), "0.0003")
		assert.ErrorIs(t, err, domain.ErrTransferRejected)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("unparseable amount", func(t *testing.T) {
		tm := setupTestVerifier(t)
		defer tm.ctrl.Finish()

		tm.chain.EXPECT().HasSigner().Return(true)

		_, err := tm.verifier.SendPayment(context.Background(), "lots")
		assert.ErrorIs(t, err, domain.ErrTransferRejected)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestVerifier_VerifyPayment(t *testing.T) {
	tests := []struct {
		name           string
		expectedAmount string
		expectedSender string
		tx             *domain.ChainTransaction
		txErr          error
		want           bool
	}{
		{
			name:           "exact amount",
			expectedAmount: "0.0003",
			expectedSender: testSender,
			tx:             &domain.ChainTransaction{Hash: testHash, From: testSender, To: domain.DEFAULT_PAYMENT_WALLET, Value: wei("0.0003")},
			want:           true,
		},
		{
			name:           "overpayment accepted",
			expectedAmount: "0.0001",
			expectedSender: testSender,
			tx:             &domain.ChainTransaction{Hash: testHash, From: testSender, To: domain.DEFAULT_PAYMENT_WALLET, Value: wei("0.0005")},
			want:           true,
		},
		{
			name:           "addresses compared case-insensitively",
			expectedAmount: "0.0002",
			expectedSender: "0XF39FD6E51AAD88F6F4CE6AB8827279CFFFB92266",
			tx:             &domain.ChainTransaction{Hash: testHash, From: testSender, To: "0x601f9e84d3b5621131896df22268b898729a259f", Value: wei("0.0002")},
			want:           true,
		},
		{
			name:           "underpayment",
			expectedAmount: "0.0003",
			expectedSender: testSender,
			tx:             &domain.ChainTransaction{Hash: testHash, From: testSender, To: domain.DEFAULT_PAYMENT_WALLET, Value: wei("0.00029")},
			want:           false,
		},
		{
			name:           "wrong recipient",
			expectedAmount: "0.0003",
			expectedSender: testSender,
			tx:             &domain.ChainTransaction{Hash: testHash, From: testSender, To: "0x0000000000000000000000000000000000000001", Value: wei("0.0003")},
			want:           false,
		},
		{
			name:           "contract creation has no recipient",
			expectedAmount: "0.0003",
			expectedSender: testSender,
			tx:             &domain.ChainTransaction{Hash: testHash, From: testSender, Value: wei("0.0003")},
			want:           false,
		},
		{
			name:           "wrong sender",
			expectedAmount: "0.0003",
			expectedSender: testSender,
			tx:             &domain.ChainTransaction{Hash: testHash, From: "0x0000000000000000000000000000000000000002", To: domain.DEFAULT_PAYMENT_WALLET, Value: wei("0.0003")},
			want:           false,
		},
		{
			name:           "unknown transaction",
			expectedAmount: "0.0003",
			expectedSender: testSender,
			want:           false,
		},
		{
			name:           "read failure",
			expectedAmount: "0.0003",
			expectedSender: testSender,
			txErr:          &domain.ChainAccessError{Op: "transaction", Err: errors.New("timeout")},
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestVerifier(t)
			defer tm.ctrl.Finish()

			tm.chain.EXPECT().Transaction(gomock.Any(), testHash).Return(tt.tx, tt.txErr)

			ctx := context.Background()
			got := tm.verifier.VerifyPayment(ctx, testHash, tt.expectedAmount, tt.expectedSender)
			assert.Equal(t, tt.want, got)

			txs, err := tm.store.ListVerifiedTransactions(ctx)
			require.NoError(t, err)
			if tt.want {
				require.Len(t, txs, 1)
				assert.Equal(t, testHash, txs[0].Hash)
				assert.True(t, txs[0].Verified)
			} else {
				assert.Empty(t, txs)
			}
		})
	}
}

func TestVerifier_VerifyPayment_LedgerEntry(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	tx := &domain.ChainTransaction{Hash: testHash, From: testSender, To: domain.DEFAULT_PAYMENT_WALLET, Value: wei("0.0005")}
	tm.chain.EXPECT().Transaction(gomock.Any(), testHash).Return(tx, nil).Times(2)

	assert.True(t, tm.verifier.VerifyPayment(ctx, testHash, "0.0003", testSender))
	assert.True(t, tm.verifier.VerifyPayment(ctx, testHash, "0.0003", testSender))

	txs, err := tm.store.ListVerifiedTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.VerifiedTransaction{
		Hash:      testHash,
		From:      testSender,
		Amount:    "0.0005",
		Purpose:   domain.PurposeThread,
		Timestamp: 1700000000000,
		Verified:  true,
	}, txs[0])
}

func TestVerifier_VerifyPayment_UnknownPurpose(t *testing.T) {
	tm := setupTestVerifier(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	tx := &domain.ChainTransaction{Hash: testHash, From: testSender, To: domain.DEFAULT_PAYMENT_WALLET, Value: wei("1")}
	tm.chain.EXPECT().Transaction(gomock.Any(), testHash).Return(tx, nil)

	assert.True(t, tm.verifier.VerifyPayment(ctx, testHash, "0.5", testSender))

	txs, err := tm.store.ListVerifiedTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.PurposeUnknown, txs[0].Purpose)
}

func TestVerifier_VerifyPayment_LedgerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := mocks.NewMockEthereumClient(ctrl)
	kv := mocks.NewMockKeyValueStore(ctrl)
	s := store.NewStore(kv, store.DefaultKeys(), adapter.NewJSON())
	v := payment.NewVerifier(chain, domain.DefaultFeePolicy(), s, adapter.NewClock(), nil)

	tx := &domain.ChainTransaction{Hash: testHash, From: testSender, To: domain.DEFAULT_PAYMENT_WALLET, Value: wei("0.0003")}
	chain.EXPECT().Transaction(gomock.Any(), testHash).Return(tx, nil)
	kv.EXPECT().Get(gomock.Any(), domain.DEFAULT_LEDGER_KEY).Return("", false, nil)
	kv.EXPECT().Set(gomock.Any(), domain.DEFAULT_LEDGER_KEY, gomock.Any()).Return(errors.New("quota exceeded"))

	assert.True(t, v.VerifyPayment(context.Background(), testHash, "0.0003", testSender))
}
