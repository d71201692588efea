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
	"github.com/profileiq/profileiq-backend/internal/middleware"
	"github.com/profileiq/profileiq-backend/internal/models"
	"github.com/profileiq/profileiq-backend/internal/utils/mapping"
)

type PgxProfileRepository struct {
	BaseRepository
}

// newPgxProfileRepository creates a new repository for behavioral profiles.
func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepository {
	return &PgxProfileRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProfileRepository = (*PgxProfileRepository)(nil)

// SaveProfile inserts a profile and its rules in one transaction.
func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("failed to rollback profile save", "error", rbErr, "profile_id", profile.ProfileID)
		}
	}()

	modelProfile := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO profiles (profile_id, name, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, query,
		modelProfile.ProfileID,
		modelProfile.Name,
		modelProfile.Category,
		modelProfile.Description,
		modelProfile.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", modelProfile.ProfileID, err)
	}

	if err := r.insertRules(ctx, tx, profile.Rules); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindProfileByID retrieves a profile with its rules.
func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `
		SELECT profile_id, name, category, description, created_at
		FROM profiles
		WHERE profile_id = $1;
	`
	var modelProfile models.Profile
	err := r.Pool.QueryRow(ctx, query, profileID).Scan(
		&modelProfile.ProfileID,
		&modelProfile.Name,
		&modelProfile.Category,
		&modelProfile.Description,
		&modelProfile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile by id %s: %w", profileID, err)
	}

	rules, err := r.findRules(ctx, profileID)
	if err != nil {
		return nil, err
	}

	domainProfile := mapping.ToDomainProfile(modelProfile)
	domainProfile.Rules = rules
	return &domainProfile, nil
}

// FindProfiles retrieves all profiles without their rules.
func (r *PgxProfileRepository) FindProfiles(ctx context.Context) ([]domain.Profile, error) {
	query := `
		SELECT profile_id, name, category, description, created_at
		FROM profiles
		ORDER BY created_at, profile_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	modelProfiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Profile, error) {
		var p models.Profile
		err := row.Scan(&p.ProfileID, &p.Name, &p.Category, &p.Description, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Profile{}, nil
		}
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}

	domainProfiles := make([]domain.Profile, len(modelProfiles))
	for i, m := range modelProfiles {
		domainProfiles[i] = mapping.ToDomainProfile(m)
	}
	return domainProfiles, nil
}

// UpdateProfile updates a profile and replaces its rule set.
func (r *PgxProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("failed to rollback profile update", "error", rbErr, "profile_id", profile.ProfileID)
		}
	}()

	modelProfile := mapping.ToModelProfile(profile)
	query := `
		UPDATE profiles
		SET name = $2, category = $3, description = $4
		WHERE profile_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelProfile.ProfileID,
		modelProfile.Name,
		modelProfile.Category,
		modelProfile.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", modelProfile.ProfileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM rules WHERE profile_id = $1;`, modelProfile.ProfileID); err != nil {
		return fmt.Errorf("failed to clear rules for profile %s: %w", modelProfile.ProfileID, err)
	}
	if err := r.insertRules(ctx, tx, profile.Rules); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteProfile removes a profile. Rules cascade via the foreign key.
func (r *PgxProfileRepository) DeleteProfile(ctx context.Context, profileID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM profiles WHERE profile_id = $1;`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountProfiles counts all configured profiles.
func (r *PgxProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

func (r *PgxProfileRepository) insertRules(ctx context.Context, tx pgx.Tx, rules []domain.Rule) error {
	query := `
		INSERT INTO rules (rule_id, profile_id, competency, operator, threshold)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, rule := range rules {
		modelRule := mapping.ToModelRule(rule)
		if _, err := tx.Exec(ctx, query,
			modelRule.RuleID,
			modelRule.ProfileID,
			modelRule.Competency,
			modelRule.Operator,
			modelRule.Threshold,
		); err != nil {
			return fmt.Errorf("failed to save rule %s: %w", modelRule.RuleID, err)
		}
	}
	return nil
}

func (r *PgxProfileRepository) findRules(ctx context.Context, profileID string) ([]domain.Rule, error) {
	query := `
		SELECT rule_id, profile_id, competency, operator, threshold
		FROM rules
		WHERE profile_id = $1
		ORDER BY rule_id;
	`
	rows, err := r.Pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules for profile %s: %w", profileID, err)
	}
	defer rows.Close()

	modelRules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rule, error) {
		var rule models.Rule
		err := row.Scan(&rule.RuleID, &rule.ProfileID, &rule.Competency, &rule.Operator, &rule.Threshold)
		return rule, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Rule{}, nil
		}
		return nil, fmt.Errorf("failed to scan rules: %w", err)
	}

	return mapping.ToDomainRuleSlice(modelRules), nil
}
