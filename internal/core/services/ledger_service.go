package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/middleware"
)

// ledgerService owns the authoritative balance and history per client.
// Every balance mutation is paired with exactly one usage record.
type ledgerService struct {
	clientRepo portsrepo.ClientRepository
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(clientRepo portsrepo.ClientRepository, ledgerRepo portsrepo.LedgerRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		clientRepo: clientRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AddCredits increases the client's balance by amount and appends the paired
// credit_added usage record. The balance write and the usage append are one
// logical unit: stores that support transactions persist them atomically,
// and on a non-transactional store a usage-append failure after a successful
// balance write is surfaced as apperrors.ErrPartialConsistency rather than a
// clean failure.
func (s *ledgerService) AddCredits(ctx context.Context, clientID string, amount int64, reason string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// The engine validates independently of the transport layer.
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be a positive integer, got %d", apperrors.ErrValidation, amount)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: credit reason is required", apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch client for credit addition", slog.String("client_id", clientID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	newBalance := client.Credits + amount
	usage := domain.Usage{
		UsageID:   uuid.NewString(),
		ClientID:  clientID,
		Type:      domain.UsageCreditAdded,
		Amount:    amount,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
		Balance:   newBalance,
	}

	if atomicRepo, ok := s.ledgerRepo.(portsrepo.AtomicLedgerRepository); ok {
		if err := atomicRepo.RecordCreditChange(ctx, clientID, newBalance, usage); err != nil {
			logger.Error("Failed to record credit change", slog.String("client_id", clientID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to record credit change: %w", err)
		}
	} else {
		// Balance write first, then the usage append. A failure between the
		// two leaves the ledger out of sync; surface it distinctly so it is
		// never mistaken for a clean failure.
		if err := s.ledgerRepo.UpdateClientCredits(ctx, clientID, newBalance); err != nil {
			logger.Error("Failed to update client balance", slog.String("client_id", clientID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to update client balance: %w", err)
		}
		if err := s.ledgerRepo.SaveUsage(ctx, usage); err != nil {
			logger.Error("Usage append failed after successful balance update",
				slog.String("client_id", clientID),
				slog.Int64("new_balance", newBalance),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrPartialConsistency, err)
		}
	}

	logger.Info("Credits added",
		slog.String("client_id", clientID),
		slog.Int64("amount", amount),
		slog.Int64("new_balance", newBalance))

	// Return the refreshed client view with history newest first.
	refreshed, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload client %s after credit addition: %w", clientID, err)
	}
	history, err := s.ledgerRepo.FindUsageByClientID(ctx, clientID)
	if err != nil {
		// The mutation already succeeded; render an empty history rather
		// than failing the whole command.
		logger.Warn("Failed to reload usage history after credit addition", slog.String("client_id", clientID), slog.String("error", err.Error()))
		history = []domain.Usage{}
	}
	refreshed.Usage = history
	return refreshed, nil
}
