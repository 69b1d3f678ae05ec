package forum

import (
	"context"
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/iryswiki/iryswiki/internal/domain"
	"github.com/iryswiki/iryswiki/internal/logger"
)

// AuditStatus is the outcome of re-reading one ledger entry
type AuditStatus string

const (
	AuditConfirmed  AuditStatus = "confirmed"
	AuditMissing    AuditStatus = "missing"
	AuditMismatched AuditStatus = "mismatched"
	AuditFailed     AuditStatus = "failed"
)

// AuditEntry is the audit outcome of one ledger entry
type AuditEntry struct {
	Hash   string      `json:"hash"`
	Status AuditStatus `json:"status"`
	Reason string      `json:"reason,omitempty"`
}

// AuditReport summarises a ledger audit. Entries keep ledger order.
type AuditReport struct {
	Checked    int          `json:"checked"`
	Confirmed  int          `json:"confirmed"`
	Missing    int          `json:"missing"`
	Mismatched int          `json:"mismatched"`
	Failed     int          `json:"failed"`
	Entries    []AuditEntry `json:"entries"`
}

// AuditLedger re-reads every ledger hash from the chain and compares it with the
// stored entry. It never modifies the ledger.
func (f *forum) AuditLedger(ctx context.Context) (*AuditReport, error) {
	ledger, err := f.store.ListVerifiedTransactions(ctx)
	if err != nil {
		return nil, err
	}

	startTime := f.clock.Now()
	logger.InfoCtx(ctx, "Starting ledger audit",
		zap.Int("entries", len(ledger)),
		zap.Int("worker_pool_size", f.config.AuditWorkers),
	)

	entries := make([]AuditEntry, len(ledger))
	var mu sync.Mutex

	pool := pond.NewPool(
		f.config.AuditWorkers,
		pond.WithContext(ctx),
	)
	for i, tx := range ledger {
		pool.Submit(func() {
			entry := f.auditEntry(ctx, tx)
			mu.Lock()
			entries[i] = entry
			mu.Unlock()
		})
	}
	pool.StopAndWait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ledger audit interrupted: %w", err)
	}

	report := &AuditReport{Checked: len(entries), Entries: entries}
	for _, e := range entries {
		switch e.Status {
		case AuditConfirmed:
			report.Confirmed++
		case AuditMissing:
			report.Missing++
		case AuditMismatched:
			report.Mismatched++
		default:
			report.Failed++
		}
	}

	logger.InfoCtx(ctx, "Ledger audit completed",
		zap.Duration("duration", f.clock.Since(startTime)),
		zap.Int("checked", report.Checked),
		zap.Int("confirmed", report.Confirmed),
		zap.Int("missing", report.Missing),
		zap.Int("mismatched", report.Mismatched),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}

func (f *forum) auditEntry(ctx context.Context, entry domain.VerifiedTransaction) AuditEntry {
	result := AuditEntry{Hash: entry.Hash}

	tx, err := f.chain.Transaction(ctx, entry.Hash)
	if err != nil {
		result.Status = AuditFailed
		result.Reason = err.Error()
		return result
	}
	if tx == nil {
		result.Status = AuditMissing
		result.Reason = "transaction not found"
		return result
	}

	switch {
	case !domain.SameAddress(tx.To, f.config.Fees.Recipient):
		result.Status = AuditMismatched
		result.Reason = fmt.Sprintf("recipient %s is not the payment wallet", tx.To)
	case !domain.SameAddress(tx.From, entry.From):
		result.Status = AuditMismatched
		result.Reason = fmt.Sprintf("sender %s differs from ledger %s", tx.From, entry.From)
	case domain.FormatAmount(tx.Value) != entry.Amount:
		result.Status = AuditMismatched
		result.Reason = fmt.Sprintf("value %s differs from ledger %s", domain.FormatAmount(tx.Value), entry.Amount)
	default:
		result.Status = AuditConfirmed
	}

	return result
}
