package dto

import "github.com/profileiq/profileiq-backend/internal/core/domain"

// ChatbotLookupParams is the canned-response lookup key.
type ChatbotLookupParams struct {
	ProfileID string `form:"profileID" binding:"required"`
	Section   string `form:"section" binding:"required"`
	Question  string `form:"question" binding:"required"`
}

// ChatbotAnswerResponse carries the looked-up (or fallback) answer.
type ChatbotAnswerResponse struct {
	Response string `json:"response"`
}

// CreateChatbotResponseRequest defines the data required to author a canned
// response.
type CreateChatbotResponseRequest struct {
	ProfileID string `json:"profileID" binding:"required"`
	Section   string `json:"section" binding:"required"`
	Question  string `json:"question" binding:"required"`
	Response  string `json:"response" binding:"required"`
}

// ChatbotResponseResponse is an authored canned response.
type ChatbotResponseResponse struct {
	ResponseID string `json:"responseID"`
	ProfileID  string `json:"profileID"`
	Section    string `json:"section"`
	Question   string `json:"question"`
	Response   string `json:"response"`
}

// ListChatbotResponsesResponse wraps the canned-response listing.
type ListChatbotResponsesResponse struct {
	Responses []ChatbotResponseResponse `json:"responses"`
}

// ToChatbotResponseResponse converts a domain.ChatbotResponse to its DTO.
func ToChatbotResponseResponse(r *domain.ChatbotResponse) ChatbotResponseResponse {
	return ChatbotResponseResponse{
		ResponseID: r.ResponseID,
		ProfileID:  r.ProfileID,
		Section:    r.Section,
		Question:   r.Question,
		Response:   r.Response,
	}
}

// ToListChatbotResponsesResponse converts a slice of canned responses to the
// listing DTO.
func ToListChatbotResponsesResponse(responses []domain.ChatbotResponse) ListChatbotResponsesResponse {
	out := make([]ChatbotResponseResponse, len(responses))
	for i := range responses {
		out[i] = ToChatbotResponseResponse(&responses[i])
	}
	return ListChatbotResponsesResponse{Responses: out}
}
