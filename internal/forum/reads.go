package forum

import (
	"context"

	"github.com/iryswiki/iryswiki/internal/domain"
)

func (f *forum) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	return f.store.ListThreads(ctx)
}

func (f *forum) RecordView(ctx context.Context, id string) (*domain.Thread, error) {
	return f.store.UpdateThread(ctx, id, func(t *domain.Thread) error {
		t.Views++
		return nil
	})
}

func (f *forum) GetThread(ctx context.Context, id string) (*domain.Thread, error) {
	return f.RecordView(ctx, id)
}

func (f *forum) GetProfile(ctx context.Context, address string) (*domain.Profile, error) {
	return f.store.GetProfileByAddress(ctx, address)
}

func (f *forum) GetVerifiedTransactions(ctx context.Context) ([]domain.VerifiedTransaction, error) {
	return f.store.ListVerifiedTransactions(ctx)
}

func (f *forum) GetVerifiedTransactionsBy(ctx context.Context, address string) ([]domain.VerifiedTransaction, error) {
	all, err := f.store.ListVerifiedTransactions(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.VerifiedTransaction, 0, len(all))
	for _, tx := range all {
		if domain.SameAddress(tx.From, address) {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

func (f *forum) RequirementFor(action domain.ActionKind) (domain.Requirement, error) {
	return f.config.Fees.RequirementFor(action)
}

func (f *forum) Categories() []domain.Category {
	return domain.Categories()
}

func (f *forum) Address() (string, error) {
	return f.chain.Address()
}

func (f *forum) Balance(ctx context.Context) (string, error) {
	address, err := f.chain.Address()
	if err != nil {
		return "", err
	}

	balance, err := f.chain.Balance(ctx, address)
	if err != nil {
		return "", err
	}

	return domain.FormatAmount(balance), nil
}

func (f *forum) Stats(ctx context.Context) (*domain.StorageStats, error) {
	return f.store.Stats(ctx)
}

func (f *forum) ClearAll(ctx context.Context) error {
	return f.store.Wipe(ctx)
}
