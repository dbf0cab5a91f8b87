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

const blogColumns = `id, title, slug, excerpt, content, cover_image, status, category, tags, author, published_at, scheduled_at, views, locale, created_at, updated_at`

type BlogRepository struct {
	*config.Database
}

func NewBlogRepository(database *config.Database) *BlogRepository {
	return &BlogRepository{database}
}

func (r *BlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	query := `INSERT INTO blog_posts (id, title, slug, excerpt, content, cover_image, status, category, tags, author, published_at, scheduled_at, locale)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
				RETURNING created_at, updated_at, views`

	err := r.DB.QueryRowxContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.CoverImage,
		post.Status, post.Category, post.Tags, post.Author,
		post.PublishedAt, post.ScheduledAt, post.Locale,
	).Scan(&post.CreatedAt, &post.UpdatedAt, &post.Views)

	if err != nil {
		return util.LogError("[BlogRepo] inserting blog post failed", err)
	}
	return nil
}

// List applies the optional filters and paginates newest first.
func (r *BlogRepository) List(ctx context.Context, query model.BlogQuery) (*model.BlogPage, error) {
	where := ` WHERE 1=1`
	args := []any{}

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if query.Search != "" {
		p := next("%" + query.Search + "%")
		where += ` AND (title ILIKE ` + p + ` OR excerpt ILIKE ` + p + ` OR content ILIKE ` + p + `)`
	}
	if query.Category != "" {
		where += ` AND category = ` + next(query.Category)
	}
	if query.Status != "" {
		where += ` AND status = ` + next(query.Status)
	}
	if query.Tag != "" {
		where += ` AND ` + next(query.Tag) + ` = ANY(tags)`
	}
	if query.Locale != "" {
		where += ` AND locale = ` + next(query.Locale)
	}

	var total int
	if err := sqlx.GetContext(ctx, r.DB, &total, `SELECT COUNT(*) FROM blog_posts`+where, args...); err != nil {
		return nil, util.LogError("[BlogRepo] counting blog posts failed", err)
	}

	offset := (query.Page - 1) * query.Limit
	listQuery := `SELECT ` + blogColumns + ` FROM blog_posts` + where +
		` ORDER BY created_at DESC LIMIT ` + next(query.Limit) + ` OFFSET ` + next(offset)

	posts := []model.BlogPost{}
	if err := sqlx.SelectContext(ctx, r.DB, &posts, listQuery, args...); err != nil {
		return nil, util.LogError("[BlogRepo] listing blog posts failed", err)
	}

	return &model.BlogPage{
		Data: posts,
		Meta: model.PageMeta{
			Total:      total,
			Page:       query.Page,
			Limit:      query.Limit,
			TotalPages: (total + query.Limit - 1) / query.Limit,
		},
	}, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := sqlx.GetContext(ctx, r.DB, &post, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[BlogRepo] blog post lookup failed", err)
	}
	return &post, nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := sqlx.GetContext(ctx, r.DB, &post, `SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[BlogRepo] blog post lookup by slug failed", err)
	}
	return &post, nil
}

func (r *BlogRepository) IncrementViews(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id = $1`, id); err != nil {
		return util.LogError("[BlogRepo] incrementing views failed", err)
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, post *model.BlogPost) error {
	query := `UPDATE blog_posts
				SET title = $2, slug = $3, excerpt = $4, content = $5, cover_image = $6,
					status = $7, category = $8, tags = $9, author = $10,
					published_at = $11, scheduled_at = $12, locale = $13, updated_at = NOW()
				WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.CoverImage,
		post.Status, post.Category, post.Tags, post.Author,
		post.PublishedAt, post.ScheduledAt, post.Locale)
	if err != nil {
		return util.LogError("[BlogRepo] updating blog post failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[BlogRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[BlogRepo] deleting blog post failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[BlogRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
