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

// groupService provides CRUD over respondent groups.
type groupService struct {
	groupRepo portsrepo.GroupRepository
}

// NewGroupService creates a new group service.
func NewGroupService(groupRepo portsrepo.GroupRepository) portssvc.GroupSvcFacade {
	return &groupService{groupRepo: groupRepo}
}

var _ portssvc.GroupSvcFacade = (*groupService)(nil)

func (s *groupService) CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (*domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	group := domain.Group{
		GroupID:     uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		logger.Error("Failed to save group", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save group: %w", err)
	}

	logger.Info("Group created", slog.String("group_id", group.GroupID))
	return &group, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find group", slog.String("group_id", groupID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find group %s: %w", groupID, err)
	}
	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.groupRepo.FindGroups(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list groups", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve groups: %w", err)
	}
	return groups, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest) (*domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to find group %s: %w", groupID, err)
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.Tags != nil {
		group.Tags = *req.Tags
	}

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		logger.Error("Failed to update group", slog.String("group_id", groupID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	logger.Info("Group updated", slog.String("group_id", groupID))
	return group, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.groupRepo.DeleteGroup(ctx, groupID); err != nil {
		return fmt.Errorf("failed to delete group %s: %w", groupID, err)
	}

	logger.Info("Group deleted", slog.String("group_id", groupID))
	return nil
}
