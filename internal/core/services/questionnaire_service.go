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
)

// questionnaireService provides CRUD over questionnaires and their
// questions.
type questionnaireService struct {
	questionnaireRepo portsrepo.QuestionnaireRepository
}

// NewQuestionnaireService creates a new questionnaire service.
func NewQuestionnaireService(questionnaireRepo portsrepo.QuestionnaireRepository) portssvc.QuestionnaireSvcFacade {
	return &questionnaireService{questionnaireRepo: questionnaireRepo}
}

var _ portssvc.QuestionnaireSvcFacade = (*questionnaireService)(nil)

// buildQuestions materializes question entities from a request payload,
// preserving payload order as Position.
func buildQuestions(questionnaireID string, reqs []dto.QuestionRequest) []domain.Question {
	questions := make([]domain.Question, len(reqs))
	for i, q := range reqs {
		questions[i] = domain.Question{
			QuestionID:      uuid.NewString(),
			QuestionnaireID: questionnaireID,
			Text:            q.Text,
			Section:         q.Section,
			Position:        i,
		}
	}
	return questions
}

func (s *questionnaireService) CreateQuestionnaire(ctx context.Context, req dto.CreateQuestionnaireRequest) (*domain.Questionnaire, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	questionnaire := domain.Questionnaire{
		QuestionnaireID: uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		IsActive:        req.IsActive,
		CreatedAt:       time.Now().UTC(),
	}
	questionnaire.Questions = buildQuestions(questionnaire.QuestionnaireID, req.Questions)

	if err := s.questionnaireRepo.SaveQuestionnaire(ctx, questionnaire); err != nil {
		logger.Error("Failed to save questionnaire", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save questionnaire: %w", err)
	}

	logger.Info("Questionnaire created", slog.String("questionnaire_id", questionnaire.QuestionnaireID))
	return &questionnaire, nil
}

func (s *questionnaireService) GetQuestionnaireByID(ctx context.Context, questionnaireID string) (*domain.Questionnaire, error) {
	questionnaire, err := s.questionnaireRepo.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find questionnaire", slog.String("questionnaire_id", questionnaireID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find questionnaire %s: %w", questionnaireID, err)
	}
	return questionnaire, nil
}

func (s *questionnaireService) ListQuestionnaires(ctx context.Context) ([]domain.Questionnaire, error) {
	questionnaires, err := s.questionnaireRepo.FindQuestionnaires(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list questionnaires", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve questionnaires: %w", err)
	}
	return questionnaires, nil
}

func (s *questionnaireService) UpdateQuestionnaire(ctx context.Context, questionnaireID string, req dto.UpdateQuestionnaireRequest) (*domain.Questionnaire, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	questionnaire, err := s.questionnaireRepo.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("failed to find questionnaire %s: %w", questionnaireID, err)
	}

	if req.Title != nil {
		questionnaire.Title = *req.Title
	}
	if req.Description != nil {
		questionnaire.Description = *req.Description
	}
	if req.IsActive != nil {
		questionnaire.IsActive = *req.IsActive
	}
	if req.Questions != nil {
		questionnaire.Questions = buildQuestions(questionnaireID, *req.Questions)
	}

	if err := s.questionnaireRepo.UpdateQuestionnaire(ctx, *questionnaire); err != nil {
		logger.Error("Failed to update questionnaire", slog.String("questionnaire_id", questionnaireID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update questionnaire: %w", err)
	}

	logger.Info("Questionnaire updated", slog.String("questionnaire_id", questionnaireID))
	return questionnaire, nil
}

func (s *questionnaireService) DeleteQuestionnaire(ctx context.Context, questionnaireID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.questionnaireRepo.DeleteQuestionnaire(ctx, questionnaireID); err != nil {
		return fmt.Errorf("failed to delete questionnaire %s: %w", questionnaireID, err)
	}

	logger.Info("Questionnaire deleted", slog.String("questionnaire_id", questionnaireID))
	return nil
}
