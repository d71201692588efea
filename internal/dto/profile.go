package dto

import (
	"time"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// RuleRequest is a threshold rule within a profile payload.
type RuleRequest struct {
	Competency string `json:"competency" binding:"required"`
	Operator   string `json:"operator" binding:"required,oneof=gt gte lt lte eq"`
	Threshold  int    `json:"threshold"`
}

// CreateProfileRequest defines the data required to create a profile.
type CreateProfileRequest struct {
	Name        string        `json:"name" binding:"required"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Rules       []RuleRequest `json:"rules" binding:"dive"`
}

// UpdateProfileRequest defines the data allowed for updating a profile.
// A non-nil Rules slice replaces the rule set.
type UpdateProfileRequest struct {
	Name        *string        `json:"name"`
	Category    *string        `json:"category"`
	Description *string        `json:"description"`
	Rules       *[]RuleRequest `json:"rules" binding:"omitempty,dive"`
}

// RuleResponse is a threshold rule as rendered in a profile view.
type RuleResponse struct {
	RuleID     string `json:"ruleID"`
	Competency string `json:"competency"`
	Operator   string `json:"operator"`
	Threshold  int    `json:"threshold"`
}

// ProfileResponse is the full profile view.
type ProfileResponse struct {
	ProfileID   string         `json:"profileID"`
	Name        string         `json:"name"`
	Category    string         `json:"category,omitempty"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Rules       []RuleResponse `json:"rules"`
}

// ListProfilesResponse wraps the profile listing.
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// ToProfileResponse converts a domain.Profile to its DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	rules := make([]RuleResponse, len(p.Rules))
	for i, rule := range p.Rules {
		rules[i] = RuleResponse{
			RuleID:     rule.RuleID,
			Competency: rule.Competency,
			Operator:   rule.Operator,
			Threshold:  rule.Threshold,
		}
	}
	return ProfileResponse{
		ProfileID:   p.ProfileID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		Rules:       rules,
	}
}

// ToListProfilesResponse converts a slice of profiles to the listing DTO.
func ToListProfilesResponse(profiles []domain.Profile) ListProfilesResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = ToProfileResponse(&profiles[i])
	}
	return ListProfilesResponse{Profiles: responses}
}
