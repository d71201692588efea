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

type PgxChatbotRepository struct {
	BaseRepository
}

// newPgxChatbotRepository creates a new repository for chatbot responses.
func newPgxChatbotRepository(pool *pgxpool.Pool) portsrepo.ChatbotRepository {
	return &PgxChatbotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ChatbotRepository = (*PgxChatbotRepository)(nil)

// SaveResponse inserts or updates a canned response for its
// (profile, section, question) key.
func (r *PgxChatbotRepository) SaveResponse(ctx context.Context, response domain.ChatbotResponse) error {
	modelResp := mapping.ToModelChatbotResponse(response)

	query := `
		INSERT INTO chatbot_responses (response_id, profile_id, section, question, response)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (profile_id, section, question) DO UPDATE SET
			response = EXCLUDED.response;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelResp.ResponseID,
		modelResp.ProfileID,
		modelResp.Section,
		modelResp.Question,
		modelResp.Response,
	)
	if err != nil {
		return fmt.Errorf("failed to save chatbot response %s: %w", modelResp.ResponseID, err)
	}
	return nil
}

// FindResponse retrieves the canned response for a profile, section and
// question.
func (r *PgxChatbotRepository) FindResponse(ctx context.Context, profileID, section, question string) (*domain.ChatbotResponse, error) {
	query := `
		SELECT response_id, profile_id, section, question, response
		FROM chatbot_responses
		WHERE profile_id = $1 AND section = $2 AND question = $3;
	`
	var modelResp models.ChatbotResponse
	err := r.Pool.QueryRow(ctx, query, profileID, section, question).Scan(
		&modelResp.ResponseID,
		&modelResp.ProfileID,
		&modelResp.Section,
		&modelResp.Question,
		&modelResp.Response,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find chatbot response: %w", err)
	}

	domainResp := mapping.ToDomainChatbotResponse(modelResp)
	return &domainResp, nil
}

// FindResponses retrieves all configured canned responses.
func (r *PgxChatbotRepository) FindResponses(ctx context.Context) ([]domain.ChatbotResponse, error) {
	query := `
		SELECT response_id, profile_id, section, question, response
		FROM chatbot_responses
		ORDER BY profile_id, section, question;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query chatbot responses: %w", err)
	}
	defer rows.Close()

	modelResps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ChatbotResponse, error) {
		var resp models.ChatbotResponse
		err := row.Scan(&resp.ResponseID, &resp.ProfileID, &resp.Section, &resp.Question, &resp.Response)
		return resp, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ChatbotResponse{}, nil
		}
		return nil, fmt.Errorf("failed to scan chatbot responses: %w", err)
	}

	return mapping.ToDomainChatbotResponseSlice(modelResps), nil
}

// DeleteResponse removes a canned response by its ID.
func (r *PgxChatbotRepository) DeleteResponse(ctx context.Context, responseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM chatbot_responses WHERE response_id = $1;`, responseID)
	if err != nil {
		return fmt.Errorf("failed to delete chatbot response %s: %w", responseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
