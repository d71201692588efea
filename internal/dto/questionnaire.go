package dto

import (
	"time"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// QuestionRequest is a single question within a create/update payload.
type QuestionRequest struct {
	Text    string `json:"text" binding:"required"`
	Section string `json:"section"`
}

// CreateQuestionnaireRequest defines the data required to create a
// questionnaire. Questions keep their payload order.
type CreateQuestionnaireRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	IsActive    bool              `json:"isActive"`
	Questions   []QuestionRequest `json:"questions" binding:"dive"`
}

// UpdateQuestionnaireRequest defines the data allowed for updating a
// questionnaire. A non-nil Questions slice replaces the question set.
type UpdateQuestionnaireRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	IsActive    *bool              `json:"isActive"`
	Questions   *[]QuestionRequest `json:"questions" binding:"omitempty,dive"`
}

// QuestionResponse is a question as rendered in a questionnaire view.
type QuestionResponse struct {
	QuestionID string `json:"questionID"`
	Text       string `json:"text"`
	Section    string `json:"section,omitempty"`
	Position   int    `json:"position"`
}

// QuestionnaireResponse is the full questionnaire view.
type QuestionnaireResponse struct {
	QuestionnaireID string             `json:"questionnaireID"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	IsActive        bool               `json:"isActive"`
	CreatedAt       time.Time          `json:"createdAt"`
	Questions       []QuestionResponse `json:"questions"`
}

// ListQuestionnairesResponse wraps the questionnaire listing.
type ListQuestionnairesResponse struct {
	Questionnaires []QuestionnaireResponse `json:"questionnaires"`
}

// ToQuestionnaireResponse converts a domain.Questionnaire to its DTO.
func ToQuestionnaireResponse(q *domain.Questionnaire) QuestionnaireResponse {
	questions := make([]QuestionResponse, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = QuestionResponse{
			QuestionID: question.QuestionID,
			Text:       question.Text,
			Section:    question.Section,
			Position:   question.Position,
		}
	}
	return QuestionnaireResponse{
		QuestionnaireID: q.QuestionnaireID,
		Title:           q.Title,
		Description:     q.Description,
		IsActive:        q.IsActive,
		CreatedAt:       q.CreatedAt,
		Questions:       questions,
	}
}

// ToListQuestionnairesResponse converts a slice of questionnaires to the
// listing DTO.
func ToListQuestionnairesResponse(questionnaires []domain.Questionnaire) ListQuestionnairesResponse {
	responses := make([]QuestionnaireResponse, len(questionnaires))
	for i := range questionnaires {
		responses[i] = ToQuestionnaireResponse(&questionnaires[i])
	}
	return ListQuestionnairesResponse{Questionnaires: responses}
}
