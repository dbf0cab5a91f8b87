package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/ports"
)

type BlogService struct {
	blogRepository ports.BlogRepository
	s3Storage      ports.S3Storage
}

func NewBlogService(blogRepository ports.BlogRepository, s3Storage ports.S3Storage) *BlogService {
	return &BlogService{
		blogRepository: blogRepository,
		s3Storage:      s3Storage,
	}
}

func (s *BlogService) Create(ctx context.Context, post *model.BlogPost) (*model.BlogPost, error) {
	post.ID = uuid.New().String()
	if post.Status == "" {
		post.Status = model.BlogStatusDraft
	}
	if post.Locale == "" {
		post.Locale = locale.French
	}

	if err := s.blogRepository.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) List(ctx context.Context, query model.BlogQuery) (*model.BlogPage, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 12
	}
	return s.blogRepository.List(ctx, query)
}

// ListPublic forces the published filter; drafts and scheduled posts
// never leave the admin surface.
func (s *BlogService) ListPublic(ctx context.Context, query model.BlogQuery) (*model.BlogPage, error) {
	query.Status = model.BlogStatusPublished
	return s.List(ctx, query)
}

func (s *BlogService) Get(ctx context.Context, id string) (*model.BlogPost, error) {
	return s.blogRepository.GetByID(ctx, id)
}

// GetBySlug serves the public article page and counts the view.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.blogRepository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.blogRepository.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.Views++

	return post, nil
}

func (s *BlogService) Update(ctx context.Context, id string, updated *model.BlogPost) (*model.BlogPost, error) {
	post, err := s.blogRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated.Base = post.Base
	updated.Views = post.Views
	if updated.PublishedAt == nil {
		updated.PublishedAt = post.PublishedAt
	}
	if updated.ScheduledAt == nil {
		updated.ScheduledAt = post.ScheduledAt
	}

	if err := s.blogRepository.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.blogRepository.Delete(ctx, id)
}

func (s *BlogService) Publish(ctx context.Context, id string) (*model.BlogPost, error) {
	post, err := s.blogRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.Status = model.BlogStatusPublished
	post.PublishedAt = &now

	if err := s.blogRepository.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) Schedule(ctx context.Context, id string, scheduledAt time.Time) (*model.BlogPost, error) {
	post, err := s.blogRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Status = model.BlogStatusScheduled
	post.ScheduledAt = &scheduledAt

	if err := s.blogRepository.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) UploadURL(ctx context.Context, filename string) (*model.UploadTarget, error) {
	return s.s3Storage.PresignUpload(ctx, "blog", filename)
}
