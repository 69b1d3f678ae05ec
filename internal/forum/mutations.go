package forum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/metrics"
)

// persistFunc builds and stores the record paid for by hash. It returns the event to publish.
type persistFunc func(ctx context.Context, hash, author string, now time.Time) (*domain.ContentEvent, error)

func (f *forum) CreateThread(ctx context.Context, input domain.NewThread) (string, error) {
	if !f.Ready() {
		return "", domain.ErrStoreNotInitialized
	}

	input = trimThread(input)
	if err := f.validateInput(input); err != nil {
		return "", err
	}

	return f.paidAction(ctx, domain.ActionThread, func(ctx context.Context, hash, author string, now time.Time) (*domain.ContentEvent, error) {
		ts := now.UnixMilli()
		thread := domain.Thread{
			ID:            domain.NewThreadID(now),
			Title:         input.Title,
			Category:      input.Category,
			Content:       input.Content,
			Author:        author,
			TransactionID: hash,
			LastActivity:  ts,
			CreatedAt:     ts,
			RepliesData:   []domain.Reply{},
		}

		if err := f.store.UpsertThread(ctx, thread); err != nil {
			return nil, err
		}

		logger.InfoCtx(ctx, "Thread created", zap.String("thread_id", thread.ID), logger.TxHash(hash))

		return &domain.ContentEvent{
			Type:            domain.ContentEventThreadCreated,
			Action:          domain.ActionThread,
			ID:              thread.ID,
			Author:          author,
			TransactionHash: hash,
			Timestamp:       ts,
		}, nil
	})
}

func (f *forum) CreateReply(ctx context.Context, threadID string, input domain.NewReply) (string, error) {
	if !f.Ready() {
		return "", domain.ErrStoreNotInitialized
	}

	input = trimReply(input)
	if err := f.validateInput(input); err != nil {
		return "", err
	}

	threadID = strings.TrimSpace(threadID)
	if threadID == "" {
		return "", fmt.Errorf("%w: thread id is required", domain.ErrInvalidInput)
	}

	// The parent must exist before any payment is made
	parent, err := f.store.GetThread(ctx, threadID)
	if err != nil {
		return "", err
	}
	if parent == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrThreadNotFound, threadID)
	}

	return f.paidAction(ctx, domain.ActionReply, func(ctx context.Context, hash, author string, now time.Time) (*domain.ContentEvent, error) {
		ts := now.UnixMilli()
		reply := domain.Reply{
			ID:            domain.NewReplyID(now),
			ThreadID:      threadID,
			Content:       input.Content,
			Author:        author,
			TransactionID: hash,
			CreatedAt:     ts,
		}

		updated, err := f.store.UpdateThread(ctx, threadID, func(t *domain.Thread) error {
			t.RepliesData = append(t.RepliesData, reply)
			t.Replies = len(t.RepliesData)
			t.LastActivity = ts
			return nil
		})
		if err != nil {
			return nil, err
		}
		if updated == nil {
			// Wiped between the existence check and the payment
			return nil, &domain.PersistenceError{Op: "create reply", Err: fmt.Errorf("%w: %s", domain.ErrThreadNotFound, threadID)}
		}

		logger.InfoCtx(ctx, "Reply created",
			zap.String("thread_id", threadID),
			zap.String("reply_id", reply.ID),
			logger.TxHash(hash),
		)

		return &domain.ContentEvent{
			Type:            domain.ContentEventReplyCreated,
			Action:          domain.ActionReply,
			ID:              reply.ID,
			ThreadID:        threadID,
			Author:          author,
			TransactionHash: hash,
			Timestamp:       ts,
		}, nil
	})
}

func (f *forum) SaveProfile(ctx context.Context, input domain.ProfileInput) (string, error) {
	if !f.Ready() {
		return "", domain.ErrStoreNotInitialized
	}

	input = trimProfile(input)
	if err := f.validateInput(input); err != nil {
		return "", err
	}

	if input.AvatarURL != "" {
		result := f.avatars.Check(input.AvatarURL)
		if !result.Valid {
			reason := "invalid avatar"
			if result.Error != nil {
				reason = *result.Error
			}
			return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, reason)
		}
	}

	return f.paidAction(ctx, domain.ActionProfile, func(ctx context.Context, hash, author string, now time.Time) (*domain.ContentEvent, error) {
		ts := now.UnixMilli()
		profile := domain.Profile{
			ID:            domain.ProfileID(author),
			Username:      input.Username,
			Bio:           input.Bio,
			AvatarURL:     input.AvatarURL,
			WalletAddress: author,
			TransactionID: hash,
			CreatedAt:     ts,
			UpdatedAt:     ts,
		}

		if err := f.store.UpsertProfile(ctx, profile); err != nil {
			return nil, err
		}

		logger.InfoCtx(ctx, "Profile saved", logger.Address(author), logger.TxHash(hash))

		return &domain.ContentEvent{
			Type:            domain.ContentEventProfileSaved,
			Action:          domain.ActionProfile,
			ID:              profile.ID,
			Author:          author,
			TransactionHash: hash,
			Timestamp:       ts,
		}, nil
	})
}

// paidAction runs the pay-then-persist sequence shared by every mutation:
// balance gate, payment, settle and verify, persist, publish.
func (f *forum) paidAction(ctx context.Context, action domain.ActionKind, persist persistFunc) (string, error) {
	start := f.clock.Now()
	labels := map[string]string{"action": string(action)}

	fee, err := f.config.Fees.Fee(action)
	if err != nil {
		return "", err
	}
	required, err := domain.ParseAmount(fee)
	if err != nil {
		return "", err
	}

	author, err := f.chain.Address()
	if err != nil {
		return "", err
	}

	balance, err := f.chain.Balance(ctx, author)
	if err != nil {
		return "", err
	}
	if balance.Cmp(required) < 0 {
		logger.WarnCtx(ctx, "Insufficient balance for paid action",
			logger.Action(string(action)),
			logger.Address(author),
			logger.Amount(fee),
			zap.String("balance", domain.FormatAmount(balance)),
		)
		return "", &domain.InsufficientBalanceError{
			Required: fee,
			Balance:  domain.FormatAmount(balance),
			Action:   action,
		}
	}

	hash, err := f.verifier.SendPayment(ctx, fee)
	if err != nil {
		return "", err
	}

	// The payment is out. Nothing after this point honours cancellation.
	ctx = context.WithoutCancel(ctx)

	verified := f.settle.Settle(ctx, func(ctx context.Context) bool {
		return f.verifier.VerifyPayment(ctx, hash, fee, author)
	})
	if !verified {
		f.metrics.IncCounter(metrics.EventMutationRejected, labels)
		logger.WarnCtx(ctx, "Payment verification failed, content not persisted",
			logger.Action(string(action)),
			logger.TxHash(hash),
		)
		return "", &domain.PaymentVerificationFailedError{Hash: hash}
	}

	event, err := persist(ctx, hash, author, f.clock.Now())
	if err != nil {
		err = paidPersistenceError(action, hash, err)
		f.metrics.IncCounter(metrics.EventPersistenceFailed, labels)
		// Retrying the action would pay again; the hash is the only way to recover
		logger.ErrorCtx(ctx, err,
			logger.Action(string(action)),
			logger.TxHash(hash),
			zap.String("hazard", "payment sent but content not persisted"),
		)
		return "", err
	}

	f.metrics.IncCounter(metrics.EventContentPersisted, labels)
	f.metrics.ObserveLatency(metrics.OperationAction, f.clock.Since(start), labels)

	if err := f.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish content event", logger.TxHash(hash), zap.Error(err))
	}

	return hash, nil
}

// paidPersistenceError attaches the payment hash to a persistence failure
func paidPersistenceError(action domain.ActionKind, hash string, err error) error {
	var perr *domain.PersistenceError
	if errors.As(err, &perr) {
		return &domain.PersistenceError{Op: perr.Op, Hash: hash, Err: perr.Err}
	}
	return &domain.PersistenceError{
		Op:   fmt.Sprintf("persist %s", strings.ToLower(string(action))),
		Hash: hash,
		Err:  err,
	}
}
