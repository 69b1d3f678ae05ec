package store

import (
	"context"
	"sort"
	"strings"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
)

// Keys are the three logical keys the collections are stored under
type Keys struct {
	Threads  string
	Profiles string
	Ledger   string
}

// DefaultKeys returns the storage keys used by the browser client
func DefaultKeys() Keys {
	return Keys{
		Threads:  domain.DEFAULT_THREADS_KEY,
		Profiles: domain.DEFAULT_PROFILES_KEY,
		Ledger:   domain.DEFAULT_LEDGER_KEY,
	}
}

// Store defines the typed collections of the content store.
// Every failure is a *domain.PersistenceError.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ListThreads returns every thread sorted by last activity, newest first
	ListThreads(ctx context.Context) ([]domain.Thread, error)
	// GetThread returns a thread by id, or nil
	GetThread(ctx context.Context, id string) (*domain.Thread, error)
	// UpsertThread replaces any thread with the same id and puts it first
	UpsertThread(ctx context.Context, thread domain.Thread) error
	// UpdateThread applies fn to a thread in place under the threads lock, nil when absent
	UpdateThread(ctx context.Context, id string, fn func(*domain.Thread) error) (*domain.Thread, error)

	// ListProfiles returns every profile, most recently saved first
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	// GetProfileByAddress returns the profile of a wallet (case-insensitive), or nil
	GetProfileByAddress(ctx context.Context, address string) (*domain.Profile, error)
	// UpsertProfile replaces the profile of the same wallet and puts it first
	UpsertProfile(ctx context.Context, profile domain.Profile) error

	// ListVerifiedTransactions returns the ledger in insertion order
	ListVerifiedTransactions(ctx context.Context) ([]domain.VerifiedTransaction, error)
	// UpsertVerifiedTransaction replaces any entry with the same hash and appends it
	UpsertVerifiedTransaction(ctx context.Context, tx domain.VerifiedTransaction) error

	// Stats summarises the three collections
	Stats(ctx context.Context) (*domain.StorageStats, error)
	// Wipe removes all three collections
	Wipe(ctx context.Context) error
	// Close releases the backend
	Close() error
}

type store struct {
	kv       KeyValueStore
	keys     Keys
	threads  *collection[domain.Thread]
	profiles *collection[domain.Profile]
	ledger   *collection[domain.VerifiedTransaction]
}

// NewStore creates a Store over a KeyValueStore
func NewStore(kv KeyValueStore, keys Keys, json adapter.JSON) Store {
	return &store{
		kv:       kv,
		keys:     keys,
		threads:  newCollection[domain.Thread](keys.Threads, placeFirst, kv, json),
		profiles: newCollection[domain.Profile](keys.Profiles, placeFirst, kv, json),
		ledger:   newCollection[domain.VerifiedTransaction](keys.Ledger, placeLast, kv, json),
	}
}

func (s *store) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	threads, err := s.threads.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastActivity > threads[j].LastActivity
	})
	return threads, nil
}

func (s *store) GetThread(ctx context.Context, id string) (*domain.Thread, error) {
	return s.threads.Get(ctx, id)
}

func (s *store) UpsertThread(ctx context.Context, thread domain.Thread) error {
	return s.threads.Upsert(ctx, thread)
}

func (s *store) UpdateThread(ctx context.Context, id string, fn func(*domain.Thread) error) (*domain.Thread, error) {
	return s.threads.Update(ctx, id, fn)
}

func (s *store) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *store) GetProfileByAddress(ctx context.Context, address string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, domain.NormalizeAddress(address))
}

func (s *store) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	return s.profiles.Upsert(ctx, profile)
}

func (s *store) ListVerifiedTransactions(ctx context.Context) ([]domain.VerifiedTransaction, error) {
	return s.ledger.List(ctx)
}

func (s *store) UpsertVerifiedTransaction(ctx context.Context, tx domain.VerifiedTransaction) error {
	return s.ledger.Upsert(ctx, tx)
}

func (s *store) Stats(ctx context.Context) (*domain.StorageStats, error) {
	threads, err := s.ListThreads(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	// threads are sorted by last activity, newest first
	recentThreads := threads[:min(3, len(threads))]

	// ledger appends, so the newest entries are at the end
	recentTxs := make([]domain.VerifiedTransaction, 0, 3)
	for i := len(txs) - 1; i >= 0 && len(recentTxs) < 3; i-- {
		recentTxs = append(recentTxs, txs[i])
	}

	return &domain.StorageStats{
		Threads:            len(threads),
		Profiles:           len(profiles),
		VerifiedTxs:        len(txs),
		RecentThreads:      recentThreads,
		RecentTransactions: recentTxs,
	}, nil
}

func (s *store) Wipe(ctx context.Context) error {
	s.threads.mu.Lock()
	defer s.threads.mu.Unlock()
	s.profiles.mu.Lock()
	defer s.profiles.mu.Unlock()
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if err := s.kv.Remove(ctx, s.keys.Threads, s.keys.Profiles, s.keys.Ledger); err != nil {
		return &domain.PersistenceError{Op: "wipe " + strings.Join([]string{s.keys.Threads, s.keys.Profiles, s.keys.Ledger}, ","), Err: err}
	}
	return nil
}

func (s *store) Close() error {
	return s.kv.Close()
}
