package domain

import "time"

// Questionnaire is an authored assessment form.
type Questionnaire struct {
	QuestionnaireID string     `json:"questionnaireID"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
	Questions       []Question `json:"questions"`
}

// Question is a single item within a questionnaire, ordered by Position.
type Question struct {
	QuestionID      string `json:"questionID"`
	QuestionnaireID string `json:"questionnaireID"`
	Text            string `json:"text"`
	Section         string `json:"section"`
	Position        int    `json:"position"`
}
