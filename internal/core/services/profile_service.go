package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/dto"
	"github.com/profileiq/profileiq-backend/internal/middleware"
)

// profileService provides CRUD over behavioral profiles and their threshold
// rules. Rule evaluation against questionnaire answers happens outside this
// service.
type profileService struct {
	profileRepo portsrepo.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo portsrepo.ProfileRepository) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func buildRules(profileID string, reqs []dto.RuleRequest) []domain.Rule {
	rules := make([]domain.Rule, len(reqs))
	for i, r := range reqs {
		rules[i] = domain.Rule{
			RuleID:     uuid.NewString(),
			ProfileID:  profileID,
			Competency: r.Competency,
			Operator:   r.Operator,
			Threshold:  r.Threshold,
		}
	}
	return rules
}

func (s *profileService) CreateProfile(ctx context.Context, req dto.CreateProfileRequest) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile := domain.Profile{
		ProfileID:   uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	profile.Rules = buildRules(profile.ProfileID, req.Rules)

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		logger.Error("Failed to save profile", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	logger.Info("Profile created", slog.String("profile_id", profile.ProfileID))
	return &profile, nil
}

func (s *profileService) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find profile", slog.String("profile_id", profileID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find profile %s: %w", profileID, err)
	}
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.FindProfiles(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list profiles", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	return profiles, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, profileID string, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to find profile %s: %w", profileID, err)
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Category != nil {
		profile.Category = *req.Category
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Rules != nil {
		profile.Rules = buildRules(profileID, *req.Rules)
	}

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		logger.Error("Failed to update profile", slog.String("profile_id", profileID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	logger.Info("Profile updated", slog.String("profile_id", profileID))
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, profileID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.profileRepo.DeleteProfile(ctx, profileID); err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", profileID, err)
	}

	logger.Info("Profile deleted", slog.String("profile_id", profileID))
	return nil
}
