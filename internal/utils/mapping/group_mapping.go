package mapping

import (
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/models"
)

// ToModelGroup converts a domain Group to a model Group
func ToModelGroup(d domain.Group) models.Group {
	return models.Group{
		GroupID:     d.GroupID,
		Name:        d.Name,
		Description: d.Description,
		Tags:        d.Tags,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainGroup converts a model Group to a domain Group
func ToDomainGroup(m models.Group) domain.Group {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Group{
		GroupID:     m.GroupID,
		Name:        m.Name,
		Description: m.Description,
		Tags:        tags,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainGroupSlice converts a slice of model Groups to a slice of domain Groups
func ToDomainGroupSlice(ms []models.Group) []domain.Group {
	ds := make([]domain.Group, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroup(m)
	}
	return ds
}
