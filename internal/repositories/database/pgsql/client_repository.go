package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
	"github.com/profileiq/profileiq-backend/internal/models"
	"github.com/profileiq/profileiq-backend/internal/utils/mapping"
)

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client records.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

// SaveClient inserts a new client record.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (client_id, name, email, credits, api_key, brand_slug, custom_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.Email,
		modelClient.Credits,
		modelClient.APIKey,
		modelClient.BrandSlug,
		modelClient.CustomURL,
		modelClient.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save client %s: %w", modelClient.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, name, email, credits, api_key, brand_slug, custom_url, created_at
		FROM clients
		WHERE client_id = $1;
	`
	var modelClient models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&modelClient.ClientID,
		&modelClient.Name,
		&modelClient.Email,
		&modelClient.Credits,
		&modelClient.APIKey,
		&modelClient.BrandSlug,
		&modelClient.CustomURL,
		&modelClient.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by id %s: %w", clientID, err)
	}

	domainClient := mapping.ToDomainClient(modelClient)
	return &domainClient, nil
}

// FindClients retrieves all clients, oldest first.
func (r *PgxClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT client_id, name, email, credits, api_key, brand_slug, custom_url, created_at
		FROM clients
		ORDER BY created_at, client_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		var client models.Client
		err := row.Scan(
			&client.ClientID,
			&client.Name,
			&client.Email,
			&client.Credits,
			&client.APIKey,
			&client.BrandSlug,
			&client.CustomURL,
			&client.CreatedAt,
		)
		return client, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Client{}, nil
		}
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}

	return mapping.ToDomainClientSlice(modelClients), nil
}

// UpdateClient updates a client's mutable identity fields. The credit
// balance is owned by the ledger repository and is not written here.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)

	query := `
		UPDATE clients
		SET name = $2, email = $3, brand_slug = $4, custom_url = $5
		WHERE client_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.Email,
		modelClient.BrandSlug,
		modelClient.CustomURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", modelClient.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client. Usage rows cascade via the foreign key.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	query := `DELETE FROM clients WHERE client_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
