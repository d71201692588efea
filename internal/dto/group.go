package dto

import (
	"time"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// CreateGroupRequest defines the data required to create a group.
type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// UpdateGroupRequest defines the data allowed for updating a group.
type UpdateGroupRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
}

// GroupResponse is the group view.
type GroupResponse struct {
	GroupID     string    `json:"groupID"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListGroupsResponse wraps the group listing.
type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToGroupResponse converts a domain.Group to its DTO.
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:     g.GroupID,
		Name:        g.Name,
		Description: g.Description,
		Tags:        g.Tags,
		CreatedAt:   g.CreatedAt,
	}
}

// ToListGroupsResponse converts a slice of groups to the listing DTO.
func ToListGroupsResponse(groups []domain.Group) ListGroupsResponse {
	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = ToGroupResponse(&groups[i])
	}
	return ListGroupsResponse{Groups: responses}
}
