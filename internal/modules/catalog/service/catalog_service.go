package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"hindidrill/internal/modules/catalog/domain"
	catalogout "hindidrill/internal/modules/catalog/port/out"
	apperrors "hindidrill/internal/platform/errors"
)

type CatalogService struct {
	source catalogout.LessonSource
	logger *log.Logger

	mu      sync.RWMutex
	lessons []domain.Lesson
	loaded  bool
}

func NewCatalogService(source catalogout.LessonSource, logger *log.Logger) *CatalogService {
	return &CatalogService{source: source, logger: logger}
}

// Load fetches the catalog, removes duplicate names and replaces the cached
// copy used by Get. A failed load keeps the previous cache.
func (s *CatalogService) Load(ctx context.Context) ([]domain.Lesson, error) {
	lessons, err := s.source.FetchLessons(ctx)
	if err != nil {
		s.logger.Warn("catalog load failed", "err", err)
		if errors.Is(err, apperrors.ErrCatalogUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCatalogUnavailable, err)
	}
	valid := make([]domain.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if err := lesson.Validate(); err != nil {
			s.logger.Warn("skipping lesson", "err", err)
			continue
		}
		valid = append(valid, lesson)
	}
	deduped := domain.Dedupe(valid)

	s.mu.Lock()
	s.lessons = deduped
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("catalog loaded", "lessons", len(deduped), "dropped", len(lessons)-len(deduped))
	out := make([]domain.Lesson, len(deduped))
	copy(out, deduped)
	return out, nil
}

func (s *CatalogService) Get(ctx context.Context, lessonID domain.LessonID) (domain.Lesson, error) {
	if strings.TrimSpace(string(lessonID)) == "" {
		return domain.Lesson{}, fmt.Errorf("%w: lesson id is required", apperrors.ErrInvalidInput)
	}
	s.mu.RLock()
	lessons, loaded := s.lessons, s.loaded
	s.mu.RUnlock()
	if !loaded {
		var err error
		if lessons, err = s.Load(ctx); err != nil {
			return domain.Lesson{}, err
		}
	}
	lesson, ok := domain.Find(lessons, lessonID)
	if !ok {
		return domain.Lesson{}, fmt.Errorf("lesson %s: %w", lessonID, apperrors.ErrNotFound)
	}
	return lesson, nil
}
