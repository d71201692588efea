package repositories

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// ChatbotRepository defines persistence operations for canned chatbot
// responses. FindResponse returns apperrors.ErrNotFound when no row matches
// the (profile, section, question) key.
type ChatbotRepository interface {
	SaveResponse(ctx context.Context, response domain.ChatbotResponse) error
	FindResponse(ctx context.Context, profileID, section, question string) (*domain.ChatbotResponse, error)
	FindResponses(ctx context.Context) ([]domain.ChatbotResponse, error)
	DeleteResponse(ctx context.Context, responseID string) error
}
