package forum

import (
	"context"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/adapter"
	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
	"github.com/iryswiki/iryswiki/internal/messaging"
	"github.com/iryswiki/iryswiki/internal/metrics"
	"github.com/iryswiki/iryswiki/internal/payment"
	"github.com/iryswiki/iryswiki/internal/providers/ethereum"
	"github.com/iryswiki/iryswiki/internal/store"
	"github.com/iryswiki/iryswiki/internal/uri"
)

// Forum is the payment-gated content store. Every mutation pays its fee,
// verifies the payment on chain and only then persists the record.
//
//go:generate mockgen -source=forum.go -destination=../mocks/forum.go -package=mocks -mock_names=Forum=MockForum
type Forum interface {
	// Initialize binds the session: a signer must be present and the RPC endpoint must
	// report the configured chain id
	Initialize(ctx context.Context) error
	// Reset drops the session readiness
	Reset()
	// Ready reports whether mutations are accepted
	Ready() bool

	// CreateThread pays the thread fee and persists a new thread, returning the payment hash
	CreateThread(ctx context.Context, input domain.NewThread) (string, error)
	// CreateReply pays the reply fee and appends a reply to a thread, returning the payment hash
	CreateReply(ctx context.Context, threadID string, input domain.NewReply) (string, error)
	// SaveProfile pays the profile fee and upserts the profile of the session wallet
	SaveProfile(ctx context.Context, input domain.ProfileInput) (string, error)

	// ListThreads returns every thread, most recent activity first
	ListThreads(ctx context.Context) ([]domain.Thread, error)
	// RecordView increments the views of a thread and returns it, nil when absent
	RecordView(ctx context.Context, id string) (*domain.Thread, error)
	// GetThread returns a thread and records a view
	GetThread(ctx context.Context, id string) (*domain.Thread, error)
	// GetProfile returns the profile of a wallet, nil when absent
	GetProfile(ctx context.Context, address string) (*domain.Profile, error)
	// GetVerifiedTransactions returns the whole ledger
	GetVerifiedTransactions(ctx context.Context) ([]domain.VerifiedTransaction, error)
	// GetVerifiedTransactionsBy returns the ledger entries paid by an address
	GetVerifiedTransactionsBy(ctx context.Context, address string) ([]domain.VerifiedTransaction, error)
	// RequirementFor returns what an action costs. No I/O.
	RequirementFor(action domain.ActionKind) (domain.Requirement, error)
	// Categories returns the thread categories
	Categories() []domain.Category

	// Address returns the session wallet address
	Address() (string, error)
	// Balance returns the formatted balance of the session wallet
	Balance(ctx context.Context) (string, error)
	// Stats summarises the stored collections
	Stats(ctx context.Context) (*domain.StorageStats, error)
	// ClearAll wipes threads, profiles and the ledger
	ClearAll(ctx context.Context) error
	// AuditLedger re-reads every ledger entry from the chain
	AuditLedger(ctx context.Context) (*AuditReport, error)
}

// Config holds the forum settings
type Config struct {
	ChainID      *big.Int
	Fees         domain.FeePolicy
	AuditWorkers int
}

type forum struct {
	config    Config
	store     store.Store
	chain     ethereum.Client
	verifier  payment.Verifier
	settle    payment.SettlePolicy
	avatars   uri.DataURIChecker
	publisher messaging.Publisher
	metrics   metrics.Recorder
	clock     adapter.Clock
	validate  *validator.Validate
	ready     atomic.Bool
}

// New creates a Forum. publisher and recorder may be nil.
func New(
	cfg Config,
	st store.Store,
	chain ethereum.Client,
	verifier payment.Verifier,
	settle payment.SettlePolicy,
	avatars uri.DataURIChecker,
	publisher messaging.Publisher,
	recorder metrics.Recorder,
	clock adapter.Clock,
) Forum {
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	if cfg.AuditWorkers <= 0 {
		cfg.AuditWorkers = DEFAULT_AUDIT_WORKERS
	}

	return &forum{
		config:    cfg,
		store:     st,
		chain:     chain,
		verifier:  verifier,
		settle:    settle,
		avatars:   avatars,
		publisher: publisher,
		metrics:   recorder,
		clock:     clock,
		validate:  newValidator(),
	}
}

func (f *forum) Initialize(ctx context.Context) error {
	if !f.chain.HasSigner() {
		return domain.ErrNotInitialized
	}

	chainID, err := f.chain.ChainID(ctx)
	if err != nil {
		return err
	}
	if f.config.ChainID != nil && chainID.Cmp(f.config.ChainID) != 0 {
		return fmt.Errorf("%w: expected %s, got %s", domain.ErrWrongChain, f.config.ChainID, chainID)
	}

	address, err := f.chain.Address()
	if err != nil {
		return err
	}

	balance, err := f.chain.Balance(ctx, address)
	if err != nil {
		return err
	}

	f.ready.Store(true)
	logger.InfoCtx(ctx, "Forum session initialized",
		logger.Address(address),
		zap.String("chain_id", chainID.String()),
		zap.String("balance", domain.FormatAmount(balance)),
	)

	return nil
}

func (f *forum) Reset() {
	f.ready.Store(false)
}

func (f *forum) Ready() bool {
	return f.ready.Load() && f.chain.HasSigner()
}
