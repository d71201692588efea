package dto

import (
	"time"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// UsageResponse is a single ledger entry as rendered in a client's history.
type UsageResponse struct {
	UsageID         string           `json:"usageID"`
	Type            domain.UsageType `json:"type"`
	Amount          int64            `json:"amount"`
	Reason          string           `json:"reason,omitempty"`
	CandidateName   string           `json:"candidateName,omitempty"`
	ProfileDetected string           `json:"profileDetected,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
	Balance         int64            `json:"balance"`
}

// ToUsageResponse converts a domain.Usage to its response DTO.
func ToUsageResponse(u domain.Usage) UsageResponse {
	return UsageResponse{
		UsageID:         u.UsageID,
		Type:            u.Type,
		Amount:          u.Amount,
		Reason:          u.Reason,
		CandidateName:   u.CandidateName,
		ProfileDetected: u.ProfileDetected,
		Timestamp:       u.Timestamp,
		Balance:         u.Balance,
	}
}

// ToUsageResponses converts a slice of domain.Usage to response DTOs.
func ToUsageResponses(usage []domain.Usage) []UsageResponse {
	responses := make([]UsageResponse, len(usage))
	for i, u := range usage {
		responses[i] = ToUsageResponse(u)
	}
	return responses
}
