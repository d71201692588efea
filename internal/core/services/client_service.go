package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/dto"
	"github.com/profileiq/profileiq-backend/internal/middleware"
	"github.com/profileiq/profileiq-backend/internal/utils"
)

// DefaultStartingCredits is the balance a new client opens with unless
// configured otherwise.
const DefaultStartingCredits int64 = 100

// clientService maps raw client records to the normalized directory view:
// identity fields combined with the ledger's per-client history.
type clientService struct {
	clientRepo      portsrepo.ClientRepository
	ledgerRepo      portsrepo.LedgerRepository
	startingCredits int64
}

// NewClientService creates a new client directory service. A non-positive
// startingCredits falls back to DefaultStartingCredits.
func NewClientService(clientRepo portsrepo.ClientRepository, ledgerRepo portsrepo.LedgerRepository, startingCredits int64) portssvc.ClientSvcFacade {
	if startingCredits <= 0 {
		startingCredits = DefaultStartingCredits
	}
	return &clientService{
		clientRepo:      clientRepo,
		ledgerRepo:      ledgerRepo,
		startingCredits: startingCredits,
	}
}

// Ensure clientService implements the portssvc.ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// mergeUsage attaches the client's history, newest first. A failed history
// fetch degrades to an empty history rather than failing the read.
func (s *clientService) mergeUsage(ctx context.Context, client *domain.Client) {
	usage, err := s.ledgerRepo.FindUsageByClientID(ctx, client.ClientID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to fetch usage history for client",
			slog.String("client_id", client.ClientID),
			slog.String("error", err.Error()))
		client.Usage = []domain.Usage{}
		return
	}
	if usage == nil {
		usage = []domain.Usage{}
	}
	client.Usage = usage
}

// ListClients retrieves all clients with their usage histories merged in.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	clients, err := s.clientRepo.FindClients(ctx)
	if err != nil {
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}

	for i := range clients {
		s.mergeUsage(ctx, &clients[i])
	}

	logger.Debug("Clients listed", slog.Int("count", len(clients)))
	return clients, nil
}

// GetClientByID retrieves a single client with its usage history.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find client by ID", slog.String("client_id", clientID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	s.mergeUsage(ctx, client)
	return client, nil
}

// CreateClient persists a new client with a generated API key, a server-set
// creation timestamp, the default starting balance and an empty history.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	apiKey, err := utils.GenerateAPIKey()
	if err != nil {
		logger.Error("Failed to generate API key", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	brandSlug := utils.Slugify(req.Brand)
	customURL := ""
	if brandSlug != "" {
		customURL = fmt.Sprintf("talentscanner.app/%s/questionario", brandSlug)
	}

	client := domain.Client{
		ClientID:  uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Credits:   s.startingCredits,
		APIKey:    apiKey,
		BrandSlug: brandSlug,
		CustomURL: customURL,
		CreatedAt: time.Now().UTC(),
		Usage:     []domain.Usage{},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID), slog.Int64("starting_credits", client.Credits))
	return &client, nil
}

// UpdateClient updates a client's identity fields.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	updated := false
	if req.Name != nil {
		client.Name = *req.Name
		updated = true
	}
	if req.Email != nil {
		client.Email = *req.Email
		updated = true
	}

	if updated {
		if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
			logger.Error("Failed to update client", slog.String("client_id", clientID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to update client: %w", err)
		}
		logger.Info("Client updated", slog.String("client_id", clientID))
	}

	s.mergeUsage(ctx, client)
	return client, nil
}

// DeleteClient removes a client. Its usage records cascade with it: history
// rows without an owning client would be unreachable through the directory.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete client", slog.String("client_id", clientID), slog.String("error", err.Error()))
		}
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}

	logger.Info("Client deleted", slog.String("client_id", clientID))
	return nil
}
