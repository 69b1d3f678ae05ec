package payment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/metrics"
	"github.com/iryswiki/iryswiki/internal/providers/ethereum"
)

// Ledger records verified payments
type Ledger interface {
	UpsertVerifiedTransaction(ctx context.Context, tx domain.VerifiedTransaction) error
}

// Verifier sends fee payments and checks them on chain
//
//go:generate mockgen -source=verifier.go -destination=../mocks/verifier.go -package=mocks -mock_names=Verifier=MockVerifier
type Verifier interface {
	// SendPayment transfers amount to the payment address and returns the transaction hash
	SendPayment(ctx context.Context, amount string) (string, error)

	// VerifyPayment reports whether hash pays at least expectedAmount from expectedSender to
	// the payment address. A passing payment is recorded in the ledger. Never fails.
	VerifyPayment(ctx context.Context, hash, expectedAmount, expectedSender string) bool
}

type verifier struct {
	chain   ethereum.Client
	fees    domain.FeePolicy
	ledger  Ledger
	clock   adapter.Clock
	metrics metrics.Recorder
}

// NewVerifier creates a payment verifier
func NewVerifier(chain ethereum.Client, fees domain.FeePolicy, ledger Ledger, clock adapter.Clock, recorder metrics.Recorder) Verifier {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &verifier{
		chain:   chain,
		fees:    fees,
		ledger:  ledger,
		clock:   clock,
		metrics: recorder,
	}
}

func (v *verifier) SendPayment(ctx context.Context, amount string) (string, error) {
	if !v.chain.HasSigner() {
		return "", domain.ErrNotInitialized
	}

	labels := map[string]string{"action": string(v.fees.PurposeForAmount(amount))}

	wei, err := domain.ParseAmount(amount)
	if err != nil {
		v.metrics.IncCounter(metrics.EventPaymentRejected, labels)
		return "", &domain.TransferRejectedError{Err: err}
	}

	hash, err := v.chain.SendValueTransfer(ctx, v.fees.Recipient, wei)
	if err != nil {
		if errors.Is(err, domain.ErrNotInitialized) {
			return "", err
		}
		v.metrics.IncCounter(metrics.EventPaymentRejected, labels)
		logger.WarnCtx(ctx, "Payment transfer rejected", logger.Amount(amount), zap.Error(err))
		return "", &domain.TransferRejectedError{Err: err}
	}

	v.metrics.IncCounter(metrics.EventPaymentSent, labels)
	logger.InfoCtx(ctx, "Payment sent",
		logger.TxHash(hash),
		logger.Amount(amount),
		zap.String("recipient", v.fees.Recipient))

	return hash, nil
}

func (v *verifier) VerifyPayment(ctx context.Context, hash, expectedAmount, expectedSender string) bool {
	purpose := v.fees.PurposeForAmount(expectedAmount)
	labels := map[string]string{"action": string(purpose)}

	start := v.clock.Now()
	ok := v.verify(ctx, hash, expectedAmount, expectedSender, purpose)
	v.metrics.ObserveLatency(metrics.OperationVerify, v.clock.Since(start), labels)

	if ok {
		v.metrics.IncCounter(metrics.EventPaymentVerified, labels)
	} else {
		v.metrics.IncCounter(metrics.EventVerifyAttemptFailed, labels)
	}
	return ok
}

func (v *verifier) verify(ctx context.Context, hash, expectedAmount, expectedSender string, purpose domain.Purpose) bool {
	expected, err := domain.ParseAmount(expectedAmount)
	if err != nil {
		logger.WarnCtx(ctx, "Cannot verify payment with invalid amount", logger.TxHash(hash), zap.Error(err))
		return false
	}

	tx, err := v.chain.Transaction(ctx, hash)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read payment transaction", logger.TxHash(hash), zap.Error(err))
		return false
	}
	if tx == nil {
		logger.WarnCtx(ctx, "Payment transaction not found", logger.TxHash(hash))
		return false
	}

	recipientOK := domain.SameAddress(tx.To, v.fees.Recipient)
	senderOK := domain.SameAddress(tx.From, expectedSender)
	amountOK := tx.Value != nil && tx.Value.Cmp(expected) >= 0

	logger.InfoCtx(ctx, "Payment verification result",
		logger.TxHash(hash),
		zap.Bool("recipient_ok", recipientOK),
		zap.Bool("sender_ok", senderOK),
		zap.Bool("amount_ok", amountOK),
		zap.String("to", tx.To),
		zap.String("from", tx.From),
		zap.String("value", domain.FormatAmount(tx.Value)),
		logger.Amount(expectedAmount))

	if !recipientOK || !senderOK || !amountOK {
		return false
	}

	record := domain.VerifiedTransaction{
		Hash:      hash,
		From:      expectedSender,
		Amount:    domain.FormatAmount(tx.Value),
		Purpose:   purpose,
		Timestamp: v.clock.Now().UnixMilli(),
		Verified:  true,
	}
	if err := v.ledger.UpsertVerifiedTransaction(ctx, record); err != nil {
		// a ledger write failure does not fail verification
		logger.WarnCtx(ctx, "Failed to record verified transaction", logger.TxHash(hash), zap.Error(err))
	}

	return true
}
