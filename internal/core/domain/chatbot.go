package domain

// ChatbotFallbackResponse is returned when no canned response matches a
// lookup.
const ChatbotFallbackResponse = "I don't have a specific answer for this question. Please configure more responses."

// ChatbotResponse is a canned answer keyed by profile, section and question.
type ChatbotResponse struct {
	ResponseID string `json:"responseID"`
	ProfileID  string `json:"profileID"`
	Section    string `json:"section"`
	Question   string `json:"question"`
	Response   string `json:"response"`
}
