package service

import (
	"context"

	"github.com/google/uuid"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/ports"
	"multipoles-backend/internal/repository"
)

type RealisationService struct {
	realisationRepository *repository.RealisationRepository
	s3Storage             ports.S3Storage
}

func NewRealisationService(realisationRepository *repository.RealisationRepository, s3Storage ports.S3Storage) *RealisationService {
	return &RealisationService{
		realisationRepository: realisationRepository,
		s3Storage:             s3Storage,
	}
}

func (s *RealisationService) ListPublic(ctx context.Context, category, loc string, featuredOnly bool) ([]model.Realisation, error) {
	return s.realisationRepository.List(ctx, model.RealisationStatusPublished, category, loc, featuredOnly)
}

func (s *RealisationService) ListAdmin(ctx context.Context, status, category, loc string) ([]model.Realisation, error) {
	return s.realisationRepository.List(ctx, status, category, loc, false)
}

func (s *RealisationService) Get(ctx context.Context, id string) (*model.Realisation, error) {
	return s.realisationRepository.GetByID(ctx, id)
}

func (s *RealisationService) Create(ctx context.Context, realisation *model.Realisation) (*model.Realisation, error) {
	realisation.ID = uuid.New().String()
	if realisation.Status == "" {
		realisation.Status = model.RealisationStatusDraft
	}
	if realisation.Locale == "" {
		realisation.Locale = locale.French
	}

	if err := s.realisationRepository.Create(ctx, realisation); err != nil {
		return nil, err
	}
	return realisation, nil
}

func (s *RealisationService) Update(ctx context.Context, id string, realisation *model.Realisation) (*model.Realisation, error) {
	current, err := s.realisationRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	realisation.Base = current.Base
	if err := s.realisationRepository.Update(ctx, realisation); err != nil {
		return nil, err
	}
	return realisation, nil
}

func (s *RealisationService) Delete(ctx context.Context, id string) error {
	return s.realisationRepository.Delete(ctx, id)
}

func (s *RealisationService) UploadURL(ctx context.Context, filename string) (*model.UploadTarget, error) {
	return s.s3Storage.PresignUpload(ctx, "realisations", filename)
}
