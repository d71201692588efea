package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/profileiq/profileiq-backend/internal/apperrors"
	"github.com/profileiq/profileiq-backend/internal/core/domain"
	portsrepo "github.com/profileiq/profileiq-backend/internal/core/ports/repositories"
	"github.com/profileiq/profileiq-backend/internal/models"
	"github.com/profileiq/profileiq-backend/internal/utils/mapping"
)

type PgxGroupRepository struct {
	BaseRepository
}

// newPgxGroupRepository creates a new repository for respondent groups.
func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepository {
	return &PgxGroupRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.GroupRepository = (*PgxGroupRepository)(nil)

// SaveGroup inserts a new group record.
func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	modelGroup := mapping.ToModelGroup(group)

	query := `
		INSERT INTO groups (group_id, name, description, tags, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelGroup.GroupID,
		modelGroup.Name,
		modelGroup.Description,
		modelGroup.Tags,
		modelGroup.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save group %s: %w", modelGroup.GroupID, err)
	}
	return nil
}

// FindGroupByID retrieves a group by its ID.
func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	query := `
		SELECT group_id, name, description, tags, created_at
		FROM groups
		WHERE group_id = $1;
	`
	var modelGroup models.Group
	err := r.Pool.QueryRow(ctx, query, groupID).Scan(
		&modelGroup.GroupID,
		&modelGroup.Name,
		&modelGroup.Description,
		&modelGroup.Tags,
		&modelGroup.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group by id %s: %w", groupID, err)
	}

	domainGroup := mapping.ToDomainGroup(modelGroup)
	return &domainGroup, nil
}

// FindGroups retrieves all groups.
func (r *PgxGroupRepository) FindGroups(ctx context.Context) ([]domain.Group, error) {
	query := `
		SELECT group_id, name, description, tags, created_at
		FROM groups
		ORDER BY created_at, group_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	modelGroups, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Group, error) {
		var group models.Group
		err := row.Scan(&group.GroupID, &group.Name, &group.Description, &group.Tags, &group.CreatedAt)
		return group, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Group{}, nil
		}
		return nil, fmt.Errorf("failed to scan groups: %w", err)
	}

	return mapping.ToDomainGroupSlice(modelGroups), nil
}

// UpdateGroup updates a group's fields.
func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	modelGroup := mapping.ToModelGroup(group)

	query := `
		UPDATE groups
		SET name = $2, description = $3, tags = $4
		WHERE group_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelGroup.GroupID,
		modelGroup.Name,
		modelGroup.Description,
		modelGroup.Tags,
	)
	if err != nil {
		return fmt.Errorf("failed to update group %s: %w", modelGroup.GroupID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGroup removes a group by its ID.
func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM groups WHERE group_id = $1;`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group %s: %w", groupID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
