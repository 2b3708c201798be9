package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aifolio/internal/cache"
	apperrors "aifolio/internal/errors"
	"aifolio/internal/model"
	"aifolio/internal/repository"
)

const (
	caseStudyListKey    = "case-studies:all"
	caseStudySlugPrefix = "case-studies:slug:"
	caseStudyCacheTTL   = 5 * time.Minute
)

// CaseStudyService handles portfolio entries. Reads go through a fail-safe
// cache; every write invalidates it.
type CaseStudyService interface {
	List(ctx context.Context) ([]model.CaseStudy, error)
	GetBySlug(ctx context.Context, slug string) (*model.CaseStudy, error)
	Create(ctx context.Context, input model.InsertCaseStudy) (*model.CaseStudy, error)
	Update(ctx context.Context, id int, patch model.UpdateCaseStudy) (*model.CaseStudy, error)
	Delete(ctx context.Context, id int) error
}

type caseStudyService struct {
	studies repository.CaseStudyRepository
	cache   *cache.Client
}

// NewCaseStudyService creates a new case-study service.
func NewCaseStudyService(studies repository.CaseStudyRepository, cacheClient *cache.Client) CaseStudyService {
	return &caseStudyService{studies: studies, cache: cacheClient}
}

// List returns every case study in insertion order. Drafts are included:
// the public listing does not filter by status.
func (s *caseStudyService) List(ctx context.Context) ([]model.CaseStudy, error) {
	if data, _ := s.cache.Get(ctx, caseStudyListKey); data != nil {
		var cached []model.CaseStudy
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	studies, err := s.studies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}

	if data, err := json.Marshal(studies); err == nil {
		_ = s.cache.Set(ctx, caseStudyListKey, data, caseStudyCacheTTL)
	}
	return studies, nil
}

func (s *caseStudyService) GetBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	key := caseStudySlugPrefix + slug
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.CaseStudy
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	study, err := s.studies.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrCaseStudyNotFound
		}
		return nil, fmt.Errorf("find case study: %w", err)
	}

	if data, err := json.Marshal(study); err == nil {
		_ = s.cache.Set(ctx, key, data, caseStudyCacheTTL)
	}
	return study, nil
}

func (s *caseStudyService) Create(ctx context.Context, input model.InsertCaseStudy) (*model.CaseStudy, error) {
	if input.Status == "" {
		input.Status = model.StatusPublished
	}
	study, err := s.studies.Create(ctx, input)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, fmt.Errorf("create case study: %w", err)
	}
	s.invalidate(ctx, study.Slug)
	return study, nil
}

func (s *caseStudyService) Update(ctx context.Context, id int, patch model.UpdateCaseStudy) (*model.CaseStudy, error) {
	previous, err := s.studies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrCaseStudyNotFound
		}
		return nil, fmt.Errorf("find case study: %w", err)
	}

	study, err := s.studies.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrCaseStudyNotFound
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, fmt.Errorf("update case study: %w", err)
	}

	s.invalidate(ctx, previous.Slug)
	if study.Slug != previous.Slug {
		s.invalidate(ctx, study.Slug)
	}
	return study, nil
}

func (s *caseStudyService) Delete(ctx context.Context, id int) error {
	previous, err := s.studies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrCaseStudyNotFound
		}
		return fmt.Errorf("find case study: %w", err)
	}

	existed, err := s.studies.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete case study: %w", err)
	}
	if !existed {
		return apperrors.ErrCaseStudyNotFound
	}

	s.invalidate(ctx, previous.Slug)
	return nil
}

func (s *caseStudyService) invalidate(ctx context.Context, slug string) {
	_ = s.cache.Delete(ctx, caseStudyListKey)
	_ = s.cache.Delete(ctx, caseStudySlugPrefix+slug)
}
