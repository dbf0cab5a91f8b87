package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/util"
)

const solutionColumns = `id, title, description, image, icon, locale, position, is_active, created_at, updated_at`

type SolutionRepository struct {
	*config.Database
}

func NewSolutionRepository(database *config.Database) *SolutionRepository {
	return &SolutionRepository{database}
}

func (r *SolutionRepository) Create(ctx context.Context, solution *model.Solution) error {
	query := `INSERT INTO solutions (id, title, description, image, icon, locale, position, is_active)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING created_at, updated_at`

	err := r.DB.QueryRowxContext(ctx, query,
		solution.ID, solution.Title, solution.Description, solution.Image, solution.Icon,
		solution.Locale, solution.Position, solution.IsActive,
	).Scan(&solution.CreatedAt, &solution.UpdatedAt)

	if err != nil {
		return util.LogError("[SolutionRepo] inserting solution failed", err)
	}
	return nil
}

func (r *SolutionRepository) ListActive(ctx context.Context, locale string) ([]model.Solution, error) {
	query := `SELECT ` + solutionColumns + ` FROM solutions WHERE is_active = TRUE`
	args := []any{}
	if locale != "" {
		args = append(args, locale)
		query += ` AND locale = $1`
	}
	query += ` ORDER BY position ASC`

	solutions := []model.Solution{}
	if err := sqlx.SelectContext(ctx, r.DB, &solutions, query, args...); err != nil {
		return nil, util.LogError("[SolutionRepo] listing active solutions failed", err)
	}
	return solutions, nil
}

func (r *SolutionRepository) ListAll(ctx context.Context, locale string) ([]model.Solution, error) {
	query := `SELECT ` + solutionColumns + ` FROM solutions`
	args := []any{}
	if locale != "" {
		args = append(args, locale)
		query += ` WHERE locale = $1`
	}
	query += ` ORDER BY position ASC`

	solutions := []model.Solution{}
	if err := sqlx.SelectContext(ctx, r.DB, &solutions, query, args...); err != nil {
		return nil, util.LogError("[SolutionRepo] listing solutions failed", err)
	}
	return solutions, nil
}

func (r *SolutionRepository) GetByID(ctx context.Context, id string) (*model.Solution, error) {
	var solution model.Solution
	err := sqlx.GetContext(ctx, r.DB, &solution, `SELECT `+solutionColumns+` FROM solutions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[SolutionRepo] solution lookup failed", err)
	}
	return &solution, nil
}

func (r *SolutionRepository) Update(ctx context.Context, solution *model.Solution) error {
	query := `UPDATE solutions
				SET title = $2, description = $3, image = $4, icon = $5, locale = $6,
					position = $7, is_active = $8, updated_at = NOW()
				WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query,
		solution.ID, solution.Title, solution.Description, solution.Image, solution.Icon,
		solution.Locale, solution.Position, solution.IsActive)
	if err != nil {
		return util.LogError("[SolutionRepo] updating solution failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[SolutionRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SolutionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM solutions WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[SolutionRepo] deleting solution failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[SolutionRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
