package service

import (
	"context"

	"github.com/google/uuid"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/ports"
	"multipoles-backend/internal/repository"
)

type Model3DService struct {
	modelRepository *repository.Model3DRepository
	s3Storage       ports.S3Storage
}

func NewModel3DService(modelRepository *repository.Model3DRepository, s3Storage ports.S3Storage) *Model3DService {
	return &Model3DService{
		modelRepository: modelRepository,
		s3Storage:       s3Storage,
	}
}

func (s *Model3DService) ListPublic(ctx context.Context, category, loc string) ([]model.Model3D, error) {
	return s.modelRepository.ListActive(ctx, category, loc)
}

func (s *Model3DService) ListAdmin(ctx context.Context) ([]model.Model3D, error) {
	return s.modelRepository.ListAll(ctx)
}

func (s *Model3DService) Get(ctx context.Context, id string) (*model.Model3D, error) {
	return s.modelRepository.GetByID(ctx, id)
}

func (s *Model3DService) Create(ctx context.Context, m *model.Model3D) (*model.Model3D, error) {
	m.ID = uuid.New().String()
	if m.Locale == "" {
		m.Locale = locale.French
	}

	if err := s.modelRepository.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Model3DService) Update(ctx context.Context, id string, m *model.Model3D) (*model.Model3D, error) {
	current, err := s.modelRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Base = current.Base
	if err := s.modelRepository.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Model3DService) Delete(ctx context.Context, id string) error {
	return s.modelRepository.Delete(ctx, id)
}

// UploadURL presigns an upload slot for a .glb/.gltf asset or its
// preview image.
func (s *Model3DService) UploadURL(ctx context.Context, filename string) (*model.UploadTarget, error) {
	return s.s3Storage.PresignUpload(ctx, "models-3d", filename)
}
