package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
	"github.com/profileiq/profileiq-backend/internal/middleware"
	"github.com/profileiq/profileiq-backend/internal/models"
	"github.com/profileiq/profileiq-backend/internal/utils/mapping"
)

const usageColumns = `usage_id, client_id, type, amount, reason, candidate_name, profile_detected, timestamp, balance`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the credit ledger.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.AtomicLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AtomicLedgerRepository = (*PgxLedgerRepository)(nil)

// RecordCreditChange persists a balance update and its paired usage record
// in a single transaction. Either both rows land or neither does.
func (r *PgxLedgerRepository) RecordCreditChange(ctx context.Context, clientID string, newBalance int64, usage domain.Usage) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("failed to rollback credit change transaction", "error", rbErr, "client_id", clientID)
		}
	}()

	if err := r.updateClientCredits(ctx, tx, clientID, newBalance); err != nil {
		return err
	}
	if err := r.saveUsage(ctx, tx, usage); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateClientCredits overwrites a client's credit balance.
func (r *PgxLedgerRepository) UpdateClientCredits(ctx context.Context, clientID string, newBalance int64) error {
	return r.updateClientCredits(ctx, r.Pool, clientID, newBalance)
}

// SaveUsage appends an immutable usage record to the ledger.
func (r *PgxLedgerRepository) SaveUsage(ctx context.Context, usage domain.Usage) error {
	return r.saveUsage(ctx, r.Pool, usage)
}

// execer abstracts the pool and a transaction so the write paths can run in
// either.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *PgxLedgerRepository) updateClientCredits(ctx context.Context, db execer, clientID string, newBalance int64) error {
	query := `UPDATE clients SET credits = $2 WHERE client_id = $1;`

	cmdTag, err := db.Exec(ctx, query, clientID, newBalance)
	if err != nil {
		return fmt.Errorf("failed to update credits for client %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLedgerRepository) saveUsage(ctx context.Context, db execer, usage domain.Usage) error {
	modelUsage := mapping.ToModelUsage(usage)

	query := `
		INSERT INTO usage (` + usageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := db.Exec(ctx, query,
		modelUsage.UsageID,
		modelUsage.ClientID,
		modelUsage.Type,
		modelUsage.Amount,
		modelUsage.Reason,
		modelUsage.CandidateName,
		modelUsage.ProfileDetected,
		modelUsage.Timestamp,
		modelUsage.Balance,
	)
	if err != nil {
		return fmt.Errorf("failed to save usage %s: %w", modelUsage.UsageID, err)
	}
	return nil
}

// FindUsageByClientID retrieves a client's usage history, newest first.
func (r *PgxLedgerRepository) FindUsageByClientID(ctx context.Context, clientID string) ([]domain.Usage, error) {
	query := `
		SELECT ` + usageColumns + `
		FROM usage
		WHERE client_id = $1
		ORDER BY timestamp DESC, usage_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage for client %s: %w", clientID, err)
	}
	defer rows.Close()

	return collectUsageRows(rows)
}

// FindAllUsage retrieves usage records across all clients, newest first.
func (r *PgxLedgerRepository) FindAllUsage(ctx context.Context) ([]domain.Usage, error) {
	query := `
		SELECT ` + usageColumns + `
		FROM usage
		ORDER BY timestamp DESC, usage_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage: %w", err)
	}
	defer rows.Close()

	return collectUsageRows(rows)
}

func collectUsageRows(rows pgx.Rows) ([]domain.Usage, error) {
	modelUsages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Usage, error) {
		var usage models.Usage
		err := row.Scan(
			&usage.UsageID,
			&usage.ClientID,
			&usage.Type,
			&usage.Amount,
			&usage.Reason,
			&usage.CandidateName,
			&usage.ProfileDetected,
			&usage.Timestamp,
			&usage.Balance,
		)
		return usage, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Usage{}, nil
		}
		return nil, fmt.Errorf("failed to scan usage rows: %w", err)
	}

	return mapping.ToDomainUsageSlice(modelUsages), nil
}
