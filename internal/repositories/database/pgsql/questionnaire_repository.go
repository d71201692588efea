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

type PgxQuestionnaireRepository struct {
	BaseRepository
}

// newPgxQuestionnaireRepository creates a new repository for questionnaires.
func newPgxQuestionnaireRepository(pool *pgxpool.Pool) portsrepo.QuestionnaireRepository {
	return &PgxQuestionnaireRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.QuestionnaireRepository = (*PgxQuestionnaireRepository)(nil)

// SaveQuestionnaire inserts a questionnaire and its questions in one
// transaction.
func (r *PgxQuestionnaireRepository) SaveQuestionnaire(ctx context.Context, questionnaire domain.Questionnaire) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("failed to rollback questionnaire save", "error", rbErr, "questionnaire_id", questionnaire.QuestionnaireID)
		}
	}()

	modelQ := mapping.ToModelQuestionnaire(questionnaire)
	query := `
		INSERT INTO questionnaires (questionnaire_id, title, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, query,
		modelQ.QuestionnaireID,
		modelQ.Title,
		modelQ.Description,
		modelQ.IsActive,
		modelQ.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save questionnaire %s: %w", modelQ.QuestionnaireID, err)
	}

	if err := r.insertQuestions(ctx, tx, questionnaire.Questions); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindQuestionnaireByID retrieves a questionnaire with its questions in
// position order.
func (r *PgxQuestionnaireRepository) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*domain.Questionnaire, error) {
	query := `
		SELECT questionnaire_id, title, description, is_active, created_at
		FROM questionnaires
		WHERE questionnaire_id = $1;
	`
	var modelQ models.Questionnaire
	err := r.Pool.QueryRow(ctx, query, questionnaireID).Scan(
		&modelQ.QuestionnaireID,
		&modelQ.Title,
		&modelQ.Description,
		&modelQ.IsActive,
		&modelQ.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find questionnaire by id %s: %w", questionnaireID, err)
	}

	questions, err := r.findQuestions(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	domainQ := mapping.ToDomainQuestionnaire(modelQ)
	domainQ.Questions = questions
	return &domainQ, nil
}

// FindQuestionnaires retrieves all questionnaires without their questions.
func (r *PgxQuestionnaireRepository) FindQuestionnaires(ctx context.Context) ([]domain.Questionnaire, error) {
	query := `
		SELECT questionnaire_id, title, description, is_active, created_at
		FROM questionnaires
		ORDER BY created_at, questionnaire_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query questionnaires: %w", err)
	}
	defer rows.Close()

	modelQs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Questionnaire, error) {
		var q models.Questionnaire
		err := row.Scan(&q.QuestionnaireID, &q.Title, &q.Description, &q.IsActive, &q.CreatedAt)
		return q, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Questionnaire{}, nil
		}
		return nil, fmt.Errorf("failed to scan questionnaires: %w", err)
	}

	domainQs := make([]domain.Questionnaire, len(modelQs))
	for i, m := range modelQs {
		domainQs[i] = mapping.ToDomainQuestionnaire(m)
	}
	return domainQs, nil
}

// UpdateQuestionnaire updates a questionnaire and replaces its question set.
func (r *PgxQuestionnaireRepository) UpdateQuestionnaire(ctx context.Context, questionnaire domain.Questionnaire) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("failed to rollback questionnaire update", "error", rbErr, "questionnaire_id", questionnaire.QuestionnaireID)
		}
	}()

	modelQ := mapping.ToModelQuestionnaire(questionnaire)
	query := `
		UPDATE questionnaires
		SET title = $2, description = $3, is_active = $4
		WHERE questionnaire_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		modelQ.QuestionnaireID,
		modelQ.Title,
		modelQ.Description,
		modelQ.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update questionnaire %s: %w", modelQ.QuestionnaireID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE questionnaire_id = $1;`, modelQ.QuestionnaireID); err != nil {
		return fmt.Errorf("failed to clear questions for questionnaire %s: %w", modelQ.QuestionnaireID, err)
	}
	if err := r.insertQuestions(ctx, tx, questionnaire.Questions); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteQuestionnaire removes a questionnaire. Questions cascade via the
// foreign key.
func (r *PgxQuestionnaireRepository) DeleteQuestionnaire(ctx context.Context, questionnaireID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM questionnaires WHERE questionnaire_id = $1;`, questionnaireID)
	if err != nil {
		return fmt.Errorf("failed to delete questionnaire %s: %w", questionnaireID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountActiveQuestionnaires counts questionnaires currently marked active.
func (r *PgxQuestionnaireRepository) CountActiveQuestionnaires(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM questionnaires WHERE is_active;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active questionnaires: %w", err)
	}
	return count, nil
}

func (r *PgxQuestionnaireRepository) insertQuestions(ctx context.Context, tx pgx.Tx, questions []domain.Question) error {
	query := `
		INSERT INTO questions (question_id, questionnaire_id, text, section, position)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, question := range questions {
		modelQuestion := mapping.ToModelQuestion(question)
		if _, err := tx.Exec(ctx, query,
			modelQuestion.QuestionID,
			modelQuestion.QuestionnaireID,
			modelQuestion.Text,
			modelQuestion.Section,
			modelQuestion.Position,
		); err != nil {
			return fmt.Errorf("failed to save question %s: %w", modelQuestion.QuestionID, err)
		}
	}
	return nil
}

func (r *PgxQuestionnaireRepository) findQuestions(ctx context.Context, questionnaireID string) ([]domain.Question, error) {
	query := `
		SELECT question_id, questionnaire_id, text, section, position
		FROM questions
		WHERE questionnaire_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions for questionnaire %s: %w", questionnaireID, err)
	}
	defer rows.Close()

	modelQuestions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Question, error) {
		var q models.Question
		err := row.Scan(&q.QuestionID, &q.QuestionnaireID, &q.Text, &q.Section, &q.Position)
		return q, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Question{}, nil
		}
		return nil, fmt.Errorf("failed to scan questions: %w", err)
	}

	return mapping.ToDomainQuestionSlice(modelQuestions), nil
}
