package models

import "time"

// Questionnaire is the database row shape for a questionnaire record.
type Questionnaire struct {
	QuestionnaireID string    `db:"questionnaire_id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
}

// Question is the database row shape for a question record.
type Question struct {
	QuestionID      string `db:"question_id"`
	QuestionnaireID string `db:"questionnaire_id"`
	Text            string `db:"text"`
	Section         string `db:"section"`
	Position        int    `db:"position"`
}
