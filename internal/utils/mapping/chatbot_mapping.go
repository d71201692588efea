package mapping

import (
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/models"
)

// ToModelChatbotResponse converts a domain ChatbotResponse to a model ChatbotResponse
func ToModelChatbotResponse(d domain.ChatbotResponse) models.ChatbotResponse {
	return models.ChatbotResponse{
		ResponseID: d.ResponseID,
		ProfileID:  d.ProfileID,
		Section:    d.Section,
		Question:   d.Question,
		Response:   d.Response,
	}
}

// ToDomainChatbotResponse converts a model ChatbotResponse to a domain ChatbotResponse
func ToDomainChatbotResponse(m models.ChatbotResponse) domain.ChatbotResponse {
	return domain.ChatbotResponse{
		ResponseID: m.ResponseID,
		ProfileID:  m.ProfileID,
		Section:    m.Section,
		Question:   m.Question,
		Response:   m.Response,
	}
}

// ToDomainChatbotResponseSlice converts a slice of model ChatbotResponses to a slice of domain ChatbotResponses
func ToDomainChatbotResponseSlice(ms []models.ChatbotResponse) []domain.ChatbotResponse {
	ds := make([]domain.ChatbotResponse, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainChatbotResponse(m)
	}
	return ds
}
