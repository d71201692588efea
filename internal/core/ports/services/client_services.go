package services

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/dto"
)

// ClientReaderSvc defines read operations for the client directory.
type ClientReaderSvc interface {
	// ListClients retrieves all clients with their usage history merged in.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// GetClientByID retrieves a single client with its usage history.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientWriterSvc defines write operations for the client directory.
type ClientWriterSvc interface {
	// CreateClient persists a new client with a generated API key and the
	// default starting balance.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient updates a client's identity fields.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client and its usage history.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client directory service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
