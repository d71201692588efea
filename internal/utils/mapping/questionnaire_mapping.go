package mapping

import (
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/models"
)

// ToModelQuestionnaire converts a domain Questionnaire to a model Questionnaire
func ToModelQuestionnaire(d domain.Questionnaire) models.Questionnaire {
	return models.Questionnaire{
		QuestionnaireID: d.QuestionnaireID,
		Title:           d.Title,
		Description:     d.Description,
		IsActive:        d.IsActive,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainQuestionnaire converts a model Questionnaire to a domain Questionnaire
func ToDomainQuestionnaire(m models.Questionnaire) domain.Questionnaire {
	return domain.Questionnaire{
		QuestionnaireID: m.QuestionnaireID,
		Title:           m.Title,
		Description:     m.Description,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		Questions:       []domain.Question{},
	}
}

// ToModelQuestion converts a domain Question to a model Question
func ToModelQuestion(d domain.Question) models.Question {
	return models.Question{
		QuestionID:      d.QuestionID,
		QuestionnaireID: d.QuestionnaireID,
		Text:            d.Text,
		Section:         d.Section,
		Position:        d.Position,
	}
}

// ToDomainQuestion converts a model Question to a domain Question
func ToDomainQuestion(m models.Question) domain.Question {
	return domain.Question{
		QuestionID:      m.QuestionID,
		QuestionnaireID: m.QuestionnaireID,
		Text:            m.Text,
		Section:         m.Section,
		Position:        m.Position,
	}
}

// ToDomainQuestionSlice converts a slice of model Questions to a slice of domain Questions
func ToDomainQuestionSlice(ms []models.Question) []domain.Question {
	ds := make([]domain.Question, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuestion(m)
	}
	return ds
}
