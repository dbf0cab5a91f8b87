package ports

import (
	"context"

	"multipoles-backend/internal/model"
)

// BlogRepository : SQL layer for blog posts
type BlogRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	List(ctx context.Context, query model.BlogQuery) (*model.BlogPage, error)
	GetByID(ctx context.Context, id string) (*model.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	IncrementViews(ctx context.Context, id string) error
	Update(ctx context.Context, post *model.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// CarouselRepository / TeamRepository / SolutionRepository : SQL layer
// for the cached public content sections
type CarouselRepository interface {
	Create(ctx context.Context, slide *model.CarouselSlide) error
	ListActive(ctx context.Context, locale string) ([]model.CarouselSlide, error)
	ListAll(ctx context.Context, locale string) ([]model.CarouselSlide, error)
	GetByID(ctx context.Context, id string) (*model.CarouselSlide, error)
	Update(ctx context.Context, slide *model.CarouselSlide) error
	Delete(ctx context.Context, id string) error
}

type TeamRepository interface {
	Create(ctx context.Context, member *model.TeamMember) error
	ListActive(ctx context.Context, locale string) ([]model.TeamMember, error)
	ListAll(ctx context.Context, locale string) ([]model.TeamMember, error)
	GetByID(ctx context.Context, id string) (*model.TeamMember, error)
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id string) error
}

type SolutionRepository interface {
	Create(ctx context.Context, solution *model.Solution) error
	ListActive(ctx context.Context, locale string) ([]model.Solution, error)
	ListAll(ctx context.Context, locale string) ([]model.Solution, error)
	GetByID(ctx context.Context, id string) (*model.Solution, error)
	Update(ctx context.Context, solution *model.Solution) error
	Delete(ctx context.Context, id string) error
}

type ContactFormRepository interface {
	Save(ctx context.Context, form *model.ContactForm) error
	List(ctx context.Context, page, limit int, status string) (*model.ContactFormPage, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type DevisFormRepository interface {
	Save(ctx context.Context, form *model.DevisForm) error
	List(ctx context.Context, page, limit int, status string) (*model.DevisFormPage, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// ContentCache : redis layer for public content listings
type ContentCache interface {
	Get(ctx context.Context, section, locale string, dest any) (bool, error)
	Set(ctx context.Context, section, locale string, value any) error
	Invalidate(ctx context.Context, section string) error
}
