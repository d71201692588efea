package dto

import (
	"time"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// CreateClientRequest defines the data required to create a client.
// Brand is optional free text used to derive the questionnaire URL slug.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Brand string `json:"brand"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// AddCreditsRequest is the credit-addition command payload. The ledger
// service re-validates both fields independently of binding.
type AddCreditsRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Reason string `json:"reason" binding:"required"`
}

// ClientResponse is the directory view of a client: identity fields plus
// the merged usage history and the derived status band.
type ClientResponse struct {
	ClientID  string              `json:"clientID"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Credits   int64               `json:"credits"`
	Status    domain.CreditStatus `json:"status"`
	APIKey    string              `json:"apiKey"`
	BrandSlug string              `json:"brandSlug,omitempty"`
	CustomURL string              `json:"customUrl,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	Usage     []UsageResponse     `json:"usage"`
}

// ListClientsResponse wraps the full directory listing.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Email:     c.Email,
		Credits:   c.Credits,
		Status:    c.Status(),
		APIKey:    c.APIKey,
		BrandSlug: c.BrandSlug,
		CustomURL: c.CustomURL,
		CreatedAt: c.CreatedAt,
		Usage:     ToUsageResponses(c.Usage),
	}
}

// ToListClientsResponse converts a slice of domain.Client to the listing DTO.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Clients: responses}
}
