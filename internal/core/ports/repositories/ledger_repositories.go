package repositories

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// LedgerRepository defines persistence operations for the credit ledger:
// the client balance field and the append-only usage history.
//
// Usage records are immutable once saved; there is no update or delete.
// Find methods return records newest first.
type LedgerRepository interface {
	UpdateClientCredits(ctx context.Context, clientID string, newBalance int64) error
	SaveUsage(ctx context.Context, usage domain.Usage) error
	FindUsageByClientID(ctx context.Context, clientID string) ([]domain.Usage, error)
	FindAllUsage(ctx context.Context) ([]domain.Usage, error)
}

// AtomicLedgerRepository is implemented by stores that can persist a balance
// update and its paired usage record in a single transaction. The ledger
// service prefers this over the two ordered writes of LedgerRepository.
type AtomicLedgerRepository interface {
	LedgerRepository
	RecordCreditChange(ctx context.Context, clientID string, newBalance int64, usage domain.Usage) error
}
