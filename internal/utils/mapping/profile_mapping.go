package mapping

import (
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/models"
)

// ToModelProfile converts a domain Profile to a model Profile
func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		ProfileID:   d.ProfileID,
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainProfile converts a model Profile to a domain Profile
func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ProfileID:   m.ProfileID,
		Name:        m.Name,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		Rules:       []domain.Rule{},
	}
}

// ToModelRule converts a domain Rule to a model Rule
func ToModelRule(d domain.Rule) models.Rule {
	return models.Rule{
		RuleID:     d.RuleID,
		ProfileID:  d.ProfileID,
		Competency: d.Competency,
		Operator:   d.Operator,
		Threshold:  d.Threshold,
	}
}

// ToDomainRule converts a model Rule to a domain Rule
func ToDomainRule(m models.Rule) domain.Rule {
	return domain.Rule{
		RuleID:     m.RuleID,
		ProfileID:  m.ProfileID,
		Competency: m.Competency,
		Operator:   m.Operator,
		Threshold:  m.Threshold,
	}
}

// ToDomainRuleSlice converts a slice of model Rules to a slice of domain Rules
func ToDomainRuleSlice(ms []models.Rule) []domain.Rule {
	ds := make([]domain.Rule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRule(m)
	}
	return ds
}
