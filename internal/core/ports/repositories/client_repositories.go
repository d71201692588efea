package repositories

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// ClientRepository defines persistence operations for client identity
// records. Usage history is owned by LedgerRepository; the Usage field on
// returned clients is left empty here and merged by the directory service.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	FindClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}
