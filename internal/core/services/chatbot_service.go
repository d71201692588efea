package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/dto"
	"github.com/profileiq/profileiq-backend/internal/middleware"
)

// chatbotService serves canned responses looked up by profile, section and
// question. No inference happens here.
type chatbotService struct {
	chatbotRepo portsrepo.ChatbotRepository
}

// NewChatbotService creates a new chatbot service.
func NewChatbotService(chatbotRepo portsrepo.ChatbotRepository) portssvc.ChatbotSvcFacade {
	return &chatbotService{chatbotRepo: chatbotRepo}
}

var _ portssvc.ChatbotSvcFacade = (*chatbotService)(nil)

// GetResponse returns the configured answer for the lookup key, or the fixed
// fallback message when none exists.
func (s *chatbotService) GetResponse(ctx context.Context, profileID, section, question string) (string, error) {
	response, err := s.chatbotRepo.FindResponse(ctx, profileID, section, question)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.ChatbotFallbackResponse, nil
		}
		middleware.GetLoggerFromCtx(ctx).Error("Failed to look up chatbot response",
			slog.String("profile_id", profileID),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to look up chatbot response: %w", err)
	}
	return response.Response, nil
}

func (s *chatbotService) CreateResponse(ctx context.Context, req dto.CreateChatbotResponseRequest) (*domain.ChatbotResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	response := domain.ChatbotResponse{
		ResponseID: uuid.NewString(),
		ProfileID:  req.ProfileID,
		Section:    req.Section,
		Question:   req.Question,
		Response:   req.Response,
	}

	if err := s.chatbotRepo.SaveResponse(ctx, response); err != nil {
		logger.Error("Failed to save chatbot response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save chatbot response: %w", err)
	}

	logger.Info("Chatbot response created", slog.String("response_id", response.ResponseID))
	return &response, nil
}

func (s *chatbotService) ListResponses(ctx context.Context) ([]domain.ChatbotResponse, error) {
	responses, err := s.chatbotRepo.FindResponses(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list chatbot responses", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve chatbot responses: %w", err)
	}
	return responses, nil
}

func (s *chatbotService) DeleteResponse(ctx context.Context, responseID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.chatbotRepo.DeleteResponse(ctx, responseID); err != nil {
		return fmt.Errorf("failed to delete chatbot response %s: %w", responseID, err)
	}

	logger.Info("Chatbot response deleted", slog.String("response_id", responseID))
	return nil
}
