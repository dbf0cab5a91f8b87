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

const model3dColumns = `id, name, description, category, model_url, thumbnail_url, default_settings, is_active, position, locale, created_at, updated_at`

type Model3DRepository struct {
	*config.Database
}

func NewModel3DRepository(database *config.Database) *Model3DRepository {
	return &Model3DRepository{database}
}

func (r *Model3DRepository) Create(ctx context.Context, m *model.Model3D) error {
	query := `INSERT INTO models_3d (id, name, description, category, model_url, thumbnail_url, default_settings, is_active, position, locale)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				RETURNING created_at, updated_at`

	err := r.DB.QueryRowxContext(ctx, query,
		m.ID, m.Name, m.Description, m.Category, m.ModelURL, m.ThumbnailURL,
		m.DefaultSettings, m.IsActive, m.Position, m.Locale,
	).Scan(&m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		return util.LogError("[Model3DRepo] inserting model failed", err)
	}
	return nil
}

func (r *Model3DRepository) ListActive(ctx context.Context, category, locale string) ([]model.Model3D, error) {
	query := `SELECT ` + model3dColumns + ` FROM models_3d WHERE is_active = TRUE`
	args := []any{}

	if category != "" {
		args = append(args, category)
		query += ` AND category = $1`
	}
	if locale != "" {
		args = append(args, locale)
		if len(args) == 1 {
			query += ` AND locale = $1`
		} else {
			query += ` AND locale = $2`
		}
	}
	query += ` ORDER BY position ASC`

	models := []model.Model3D{}
	if err := sqlx.SelectContext(ctx, r.DB, &models, query, args...); err != nil {
		return nil, util.LogError("[Model3DRepo] listing active models failed", err)
	}
	return models, nil
}

func (r *Model3DRepository) ListAll(ctx context.Context) ([]model.Model3D, error) {
	query := `SELECT ` + model3dColumns + ` FROM models_3d ORDER BY position ASC`

	models := []model.Model3D{}
	if err := sqlx.SelectContext(ctx, r.DB, &models, query); err != nil {
		return nil, util.LogError("[Model3DRepo] listing models failed", err)
	}
	return models, nil
}

func (r *Model3DRepository) GetByID(ctx context.Context, id string) (*model.Model3D, error) {
	var m model.Model3D
	err := sqlx.GetContext(ctx, r.DB, &m, `SELECT `+model3dColumns+` FROM models_3d WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[Model3DRepo] model lookup failed", err)
	}
	return &m, nil
}

func (r *Model3DRepository) Update(ctx context.Context, m *model.Model3D) error {
	query := `UPDATE models_3d
				SET name = $2, description = $3, category = $4, model_url = $5, thumbnail_url = $6,
					default_settings = $7, is_active = $8, position = $9, locale = $10, updated_at = NOW()
				WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Description, m.Category, m.ModelURL, m.ThumbnailURL,
		m.DefaultSettings, m.IsActive, m.Position, m.Locale)
	if err != nil {
		return util.LogError("[Model3DRepo] updating model failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[Model3DRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Model3DRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM models_3d WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[Model3DRepo] deleting model failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[Model3DRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
