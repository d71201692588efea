package models

// ChatbotResponse is the database row shape for a canned chatbot response.
type ChatbotResponse struct {
	ResponseID string `db:"response_id"`
	ProfileID  string `db:"profile_id"`
	Section    string `db:"section"`
	Question   string `db:"question"`
	Response   string `db:"response"`
}
