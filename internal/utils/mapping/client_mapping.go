package mapping

import (
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	"github.com/profileiq/profileiq-backend/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:  d.ClientID,
		Name:      d.Name,
		Email:     d.Email,
		Credits:   d.Credits,
		APIKey:    d.APIKey,
		BrandSlug: d.BrandSlug,
		CustomURL: d.CustomURL,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainClient converts a model Client to a domain Client. Usage history
// lives in a separate table and is left empty here.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:  m.ClientID,
		Name:      m.Name,
		Email:     m.Email,
		Credits:   m.Credits,
		APIKey:    m.APIKey,
		BrandSlug: m.BrandSlug,
		CustomURL: m.CustomURL,
		CreatedAt: m.CreatedAt,
		Usage:     []domain.Usage{},
	}
}

// ToDomainClientSlice converts a slice of model Clients to a slice of domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
