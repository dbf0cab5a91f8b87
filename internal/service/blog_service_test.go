package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/repository"
	"multipoles-backend/internal/service"
)

// ===== MOCKS =====

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepository) List(ctx context.Context, query model.BlogQuery) (*model.BlogPage, error) {
	args := m.Called(ctx, query)
	if p, ok := args.Get(0).(*model.BlogPage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.BlogPost); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	args := m.Called(ctx, slug)
	if p, ok := args.Get(0).(*model.BlogPost); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlogRepository) IncrementViews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogRepository) Update(ctx context.Context, post *model.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockS3Storage struct {
	mock.Mock
}

func (m *MockS3Storage) PresignUpload(ctx context.Context, folder, filename string) (*model.UploadTarget, error) {
	args := m.Called(ctx, folder, filename)
	if t, ok := args.Get(0).(*model.UploadTarget); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockS3Storage) PresignDownload(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteByURL(ctx context.Context, fileURL string) error {
	return m.Called(ctx, fileURL).Error(0)
}

// ===== TESTS =====

func newTestBlogService() (*service.BlogService, *MockBlogRepository, *MockS3Storage) {
	blogRepo := new(MockBlogRepository)
	s3Storage := new(MockS3Storage)
	return service.NewBlogService(blogRepo, s3Storage), blogRepo, s3Storage
}

func testPost(status string) *model.BlogPost {
	post := &model.BlogPost{
		Title:   "Enseignes lumineuses",
		Slug:    "enseignes-lumineuses",
		Content: "…",
		Status:  status,
		Locale:  locale.French,
	}
	post.ID = "b1"
	return post
}

func TestCreatePost_DefaultsDraftAndFrench(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	blogRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.BlogPost")).Return(nil)

	created, err := blogService.Create(context.Background(), &model.BlogPost{
		Title:   "Sans statut",
		Slug:    "sans-statut",
		Content: "…",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.BlogStatusDraft, created.Status)
	assert.Equal(t, locale.French, created.Locale)
}

func TestCreatePost_KeepsExplicitStatus(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	blogRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := blogService.Create(context.Background(), testPost(model.BlogStatusPublished))

	require.NoError(t, err)
	assert.Equal(t, model.BlogStatusPublished, created.Status)
}

func TestListPublic_ForcesPublishedFilter(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	var seen model.BlogQuery
	blogRepo.On("List", mock.Anything, mock.AnythingOfType("model.BlogQuery")).
		Run(func(args mock.Arguments) {
			seen = args.Get(1).(model.BlogQuery)
		}).
		Return(&model.BlogPage{}, nil)

	_, err := blogService.ListPublic(context.Background(), model.BlogQuery{Status: model.BlogStatusDraft})

	require.NoError(t, err)
	assert.Equal(t, model.BlogStatusPublished, seen.Status)
	assert.Equal(t, 1, seen.Page)
	assert.Equal(t, 12, seen.Limit)
}

func TestGetBySlug_CountsView(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	post := testPost(model.BlogStatusPublished)
	post.Views = 41
	blogRepo.On("GetBySlug", mock.Anything, post.Slug).Return(post, nil)
	blogRepo.On("IncrementViews", mock.Anything, "b1").Return(nil)

	got, err := blogService.GetBySlug(context.Background(), post.Slug)

	require.NoError(t, err)
	assert.Equal(t, 42, got.Views)
	blogRepo.AssertExpectations(t)
}

func TestGetBySlug_NotFound(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	blogRepo.On("GetBySlug", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := blogService.GetBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	blogRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}

func TestUpdatePost_PreservesViewsAndTimestamps(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	publishedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	existing := testPost(model.BlogStatusPublished)
	existing.Views = 17
	existing.PublishedAt = &publishedAt

	blogRepo.On("GetByID", mock.Anything, "b1").Return(existing, nil)
	blogRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BlogPost")).Return(nil)

	updated, err := blogService.Update(context.Background(), "b1", &model.BlogPost{
		Title:   "Titre revu",
		Slug:    existing.Slug,
		Content: "nouveau contenu",
		Status:  model.BlogStatusPublished,
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", updated.ID)
	assert.Equal(t, 17, updated.Views)
	require.NotNil(t, updated.PublishedAt)
	assert.True(t, publishedAt.Equal(*updated.PublishedAt))
}

func TestPublishPost_SetsStatusAndTimestamp(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	blogRepo.On("GetByID", mock.Anything, "b1").Return(testPost(model.BlogStatusDraft), nil)
	blogRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BlogPost")).Return(nil)

	published, err := blogService.Publish(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, model.BlogStatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.WithinDuration(t, time.Now().UTC(), *published.PublishedAt, time.Minute)
}

func TestSchedulePost(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	blogRepo.On("GetByID", mock.Anything, "b1").Return(testPost(model.BlogStatusDraft), nil)
	blogRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.BlogPost")).Return(nil)

	at := time.Now().Add(48 * time.Hour).UTC()
	scheduled, err := blogService.Schedule(context.Background(), "b1", at)

	require.NoError(t, err)
	assert.Equal(t, model.BlogStatusScheduled, scheduled.Status)
	require.NotNil(t, scheduled.ScheduledAt)
	assert.True(t, at.Equal(*scheduled.ScheduledAt))
}

func TestPublishPost_NotFound(t *testing.T) {
	blogService, blogRepo, _ := newTestBlogService()

	blogRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := blogService.Publish(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBlogUploadURL(t *testing.T) {
	blogService, _, s3Storage := newTestBlogService()

	target := &model.UploadTarget{UploadURL: "https://bucket/put", FileURL: "https://cdn/blog/x.png", Key: "blog/x.png"}
	s3Storage.On("PresignUpload", mock.Anything, "blog", "cover.png").Return(target, nil)

	got, err := blogService.UploadURL(context.Background(), "cover.png")

	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestBlogUploadURL_PresignError(t *testing.T) {
	blogService, _, s3Storage := newTestBlogService()

	s3Storage.On("PresignUpload", mock.Anything, "blog", "cover.png").Return(nil, errors.New("presign failed"))

	_, err := blogService.UploadURL(context.Background(), "cover.png")
	assert.Error(t, err)
}
