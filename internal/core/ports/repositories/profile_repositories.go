package repositories

import (
	"context"

	"github.com/profileiq/profileiq-backend/internal/core/domain"
)

// ProfileRepository defines persistence operations for behavioral profiles
// and their threshold rules.
type ProfileRepository interface {
	SaveProfile(ctx context.Context, profile domain.Profile) error
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
	FindProfiles(ctx context.Context) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, profile domain.Profile) error
	DeleteProfile(ctx context.Context, profileID string) error
	CountProfiles(ctx context.Context) (int, error)
}
