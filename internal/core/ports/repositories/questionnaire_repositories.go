package repositories

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// QuestionnaireRepository defines persistence operations for questionnaires
// and their questions. Save and Update replace the questionnaire's question
// set as a whole.
type QuestionnaireRepository interface {
	SaveQuestionnaire(ctx context.Context, questionnaire domain.Questionnaire) error
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*domain.Questionnaire, error)
	FindQuestionnaires(ctx context.Context) ([]domain.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, questionnaire domain.Questionnaire) error
	DeleteQuestionnaire(ctx context.Context, questionnaireID string) error
	CountActiveQuestionnaires(ctx context.Context) (int, error)
}
