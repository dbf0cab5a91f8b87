package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/util"
)

const realisationColumns = `id, title, description, category, images, thumbnail, technologies, client_name, project_date, status, featured, locale, created_at, updated_at`

type RealisationRepository struct {
	*config.Database
}

func NewRealisationRepository(database *config.Database) *RealisationRepository {
	return &RealisationRepository{database}
}

func (r *RealisationRepository) Create(ctx context.Context, realisation *model.Realisation) error {
	query := `INSERT INTO realisations (id, title, description, category, images, thumbnail, technologies, client_name, project_date, status, featured, locale)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
				RETURNING created_at, updated_at`

	err := r.DB.QueryRowxContext(ctx, query,
		realisation.ID, realisation.Title, realisation.Description, realisation.Category,
		realisation.Images, realisation.Thumbnail, realisation.Technologies,
		realisation.ClientName, realisation.ProjectDate, realisation.Status,
		realisation.Featured, realisation.Locale,
	).Scan(&realisation.CreatedAt, &realisation.UpdatedAt)

	if err != nil {
		return util.LogError("[RealisationRepo] inserting realisation failed", err)
	}
	return nil
}

// List filters by status ("" means any), category, featured-only and locale.
func (r *RealisationRepository) List(ctx context.Context, status, category, locale string, featuredOnly bool) ([]model.Realisation, error) {
	query := `SELECT ` + realisationColumns + ` FROM realisations WHERE 1=1`
	args := []any{}

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if status != "" {
		query += ` AND status = ` + next(status)
	}
	if category != "" {
		query += ` AND category = ` + next(category)
	}
	if locale != "" {
		query += ` AND locale = ` + next(locale)
	}
	if featuredOnly {
		query += ` AND featured = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	realisations := []model.Realisation{}
	if err := sqlx.SelectContext(ctx, r.DB, &realisations, query, args...); err != nil {
		return nil, util.LogError("[RealisationRepo] listing realisations failed", err)
	}
	return realisations, nil
}

func (r *RealisationRepository) GetByID(ctx context.Context, id string) (*model.Realisation, error) {
	var realisation model.Realisation
	err := sqlx.GetContext(ctx, r.DB, &realisation, `SELECT `+realisationColumns+` FROM realisations WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[RealisationRepo] realisation lookup failed", err)
	}
	return &realisation, nil
}

func (r *RealisationRepository) Update(ctx context.Context, realisation *model.Realisation) error {
	query := `UPDATE realisations
				SET title = $2, description = $3, category = $4, images = $5, thumbnail = $6,
					technologies = $7, client_name = $8, project_date = $9, status = $10,
					featured = $11, locale = $12, updated_at = NOW()
				WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query,
		realisation.ID, realisation.Title, realisation.Description, realisation.Category,
		realisation.Images, realisation.Thumbnail, realisation.Technologies,
		realisation.ClientName, realisation.ProjectDate, realisation.Status,
		realisation.Featured, realisation.Locale)
	if err != nil {
		return util.LogError("[RealisationRepo] updating realisation failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[RealisationRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RealisationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM realisations WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[RealisationRepo] deleting realisation failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[RealisationRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
