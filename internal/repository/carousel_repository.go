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

const carouselColumns = `id, title, subtitle, image, cta_text, cta_link, position, locale, is_active, created_at, updated_at`

type CarouselRepository struct {
	*config.Database
}

func NewCarouselRepository(database *config.Database) *CarouselRepository {
	return &CarouselRepository{database}
}

func (r *CarouselRepository) Create(ctx context.Context, slide *model.CarouselSlide) error {
	query := `INSERT INTO carousel (id, title, subtitle, image, cta_text, cta_link, position, locale, is_active)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				RETURNING created_at, updated_at`

	err := r.DB.QueryRowxContext(ctx, query,
		slide.ID, slide.Title, slide.Subtitle, slide.Image, slide.CTAText, slide.CTALink,
		slide.Position, slide.Locale, slide.IsActive,
	).Scan(&slide.CreatedAt, &slide.UpdatedAt)

	if err != nil {
		return util.LogError("[CarouselRepo] inserting slide failed", err)
	}
	return nil
}

// ListActive serves the public carousel: active slides only, in display order.
func (r *CarouselRepository) ListActive(ctx context.Context, locale string) ([]model.CarouselSlide, error) {
	query := `SELECT ` + carouselColumns + ` FROM carousel WHERE is_active = TRUE`
	args := []any{}
	if locale != "" {
		args = append(args, locale)
		query += ` AND locale = $1`
	}
	query += ` ORDER BY position ASC`

	slides := []model.CarouselSlide{}
	if err := sqlx.SelectContext(ctx, r.DB, &slides, query, args...); err != nil {
		return nil, util.LogError("[CarouselRepo] listing active slides failed", err)
	}
	return slides, nil
}

func (r *CarouselRepository) ListAll(ctx context.Context, locale string) ([]model.CarouselSlide, error) {
	query := `SELECT ` + carouselColumns + ` FROM carousel`
	args := []any{}
	if locale != "" {
		args = append(args, locale)
		query += ` WHERE locale = $1`
	}
	query += ` ORDER BY position ASC`

	slides := []model.CarouselSlide{}
	if err := sqlx.SelectContext(ctx, r.DB, &slides, query, args...); err != nil {
		return nil, util.LogError("[CarouselRepo] listing slides failed", err)
	}
	return slides, nil
}

func (r *CarouselRepository) GetByID(ctx context.Context, id string) (*model.CarouselSlide, error) {
	var slide model.CarouselSlide
	err := sqlx.GetContext(ctx, r.DB, &slide, `SELECT `+carouselColumns+` FROM carousel WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[CarouselRepo] slide lookup failed", err)
	}
	return &slide, nil
}

func (r *CarouselRepository) Update(ctx context.Context, slide *model.CarouselSlide) error {
	query := `UPDATE carousel
				SET title = $2, subtitle = $3, image = $4, cta_text = $5, cta_link = $6,
					position = $7, locale = $8, is_active = $9, updated_at = NOW()
				WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query,
		slide.ID, slide.Title, slide.Subtitle, slide.Image, slide.CTAText, slide.CTALink,
		slide.Position, slide.Locale, slide.IsActive)
	if err != nil {
		return util.LogError("[CarouselRepo] updating slide failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[CarouselRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CarouselRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM carousel WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[CarouselRepo] deleting slide failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[CarouselRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
