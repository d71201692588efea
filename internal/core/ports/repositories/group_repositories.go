package repositories

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// GroupRepository defines persistence operations for respondent groups.
type GroupRepository interface {
	SaveGroup(ctx context.Context, group domain.Group) error
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)
	FindGroups(ctx context.Context) ([]domain.Group, error)
	UpdateGroup(ctx context.Context, group domain.Group) error
	DeleteGroup(ctx context.Context, groupID string) error
}
