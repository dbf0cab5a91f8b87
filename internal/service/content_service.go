package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/ports"
)

// Cache sections for the public listings. Cache failures are logged
// and served from the database instead; the cache is an optimization,
// never a source of truth.
const (
	cacheSectionCarousel  = "carousel"
	cacheSectionTeam      = "team"
	cacheSectionSolutions = "solutions"
)

type CarouselService struct {
	carouselRepository ports.CarouselRepository
	cache              ports.ContentCache
}

func NewCarouselService(carouselRepository ports.CarouselRepository, cache ports.ContentCache) *CarouselService {
	return &CarouselService{carouselRepository: carouselRepository, cache: cache}
}

func (s *CarouselService) ListPublic(ctx context.Context, loc string) ([]model.CarouselSlide, error) {
	var cached []model.CarouselSlide
	if hit, err := s.cache.Get(ctx, cacheSectionCarousel, loc, &cached); err == nil && hit {
		return cached, nil
	}

	slides, err := s.carouselRepository.ListActive(ctx, loc)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheSectionCarousel, loc, slides); err != nil {
		log.Printf("carousel cache fill failed: %v", err)
	}
	return slides, nil
}

func (s *CarouselService) ListAdmin(ctx context.Context, loc string) ([]model.CarouselSlide, error) {
	return s.carouselRepository.ListAll(ctx, loc)
}

func (s *CarouselService) Get(ctx context.Context, id string) (*model.CarouselSlide, error) {
	return s.carouselRepository.GetByID(ctx, id)
}

func (s *CarouselService) Create(ctx context.Context, slide *model.CarouselSlide) (*model.CarouselSlide, error) {
	slide.ID = uuid.New().String()
	if slide.Locale == "" {
		slide.Locale = locale.French
	}

	if err := s.carouselRepository.Create(ctx, slide); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheSectionCarousel)
	return slide, nil
}

func (s *CarouselService) Update(ctx context.Context, id string, slide *model.CarouselSlide) (*model.CarouselSlide, error) {
	current, err := s.carouselRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slide.Base = current.Base
	if err := s.carouselRepository.Update(ctx, slide); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheSectionCarousel)
	return slide, nil
}

func (s *CarouselService) Delete(ctx context.Context, id string) error {
	if err := s.carouselRepository.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, cacheSectionCarousel)
	return nil
}

func (s *CarouselService) invalidate(ctx context.Context, section string) {
	if err := s.cache.Invalidate(ctx, section); err != nil {
		log.Printf("cache invalidation failed for %s: %v", section, err)
	}
}

type TeamService struct {
	teamRepository ports.TeamRepository
	cache          ports.ContentCache
}

func NewTeamService(teamRepository ports.TeamRepository, cache ports.ContentCache) *TeamService {
	return &TeamService{teamRepository: teamRepository, cache: cache}
}

func (s *TeamService) ListPublic(ctx context.Context, loc string) ([]model.TeamMember, error) {
	var cached []model.TeamMember
	if hit, err := s.cache.Get(ctx, cacheSectionTeam, loc, &cached); err == nil && hit {
		return cached, nil
	}

	members, err := s.teamRepository.ListActive(ctx, loc)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheSectionTeam, loc, members); err != nil {
		log.Printf("team cache fill failed: %v", err)
	}
	return members, nil
}

func (s *TeamService) ListAdmin(ctx context.Context, loc string) ([]model.TeamMember, error) {
	return s.teamRepository.ListAll(ctx, loc)
}

func (s *TeamService) Get(ctx context.Context, id string) (*model.TeamMember, error) {
	return s.teamRepository.GetByID(ctx, id)
}

func (s *TeamService) Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
	member.ID = uuid.New().String()
	if member.Locale == "" {
		member.Locale = locale.French
	}

	if err := s.teamRepository.Create(ctx, member); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return member, nil
}

func (s *TeamService) Update(ctx context.Context, id string, member *model.TeamMember) (*model.TeamMember, error) {
	current, err := s.teamRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Base = current.Base
	if err := s.teamRepository.Update(ctx, member); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return member, nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	if err := s.teamRepository.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TeamService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cacheSectionTeam); err != nil {
		log.Printf("cache invalidation failed for %s: %v", cacheSectionTeam, err)
	}
}

type SolutionService struct {
	solutionRepository ports.SolutionRepository
	cache              ports.ContentCache
}

func NewSolutionService(solutionRepository ports.SolutionRepository, cache ports.ContentCache) *SolutionService {
	return &SolutionService{solutionRepository: solutionRepository, cache: cache}
}

func (s *SolutionService) ListPublic(ctx context.Context, loc string) ([]model.Solution, error) {
	var cached []model.Solution
	if hit, err := s.cache.Get(ctx, cacheSectionSolutions, loc, &cached); err == nil && hit {
		return cached, nil
	}

	solutions, err := s.solutionRepository.ListActive(ctx, loc)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheSectionSolutions, loc, solutions); err != nil {
		log.Printf("solutions cache fill failed: %v", err)
	}
	return solutions, nil
}

func (s *SolutionService) ListAdmin(ctx context.Context, loc string) ([]model.Solution, error) {
	return s.solutionRepository.ListAll(ctx, loc)
}

func (s *SolutionService) Get(ctx context.Context, id string) (*model.Solution, error) {
	return s.solutionRepository.GetByID(ctx, id)
}

func (s *SolutionService) Create(ctx context.Context, solution *model.Solution) (*model.Solution, error) {
	solution.ID = uuid.New().String()
	if solution.Locale == "" {
		solution.Locale = locale.French
	}

	if err := s.solutionRepository.Create(ctx, solution); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return solution, nil
}

func (s *SolutionService) Update(ctx context.Context, id string, solution *model.Solution) (*model.Solution, error) {
	current, err := s.solutionRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	solution.Base = current.Base
	if err := s.solutionRepository.Update(ctx, solution); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return solution, nil
}

func (s *SolutionService) Delete(ctx context.Context, id string) error {
	if err := s.solutionRepository.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *SolutionService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cacheSectionSolutions); err != nil {
		log.Printf("cache invalidation failed for %s: %v", cacheSectionSolutions, err)
	}
}
