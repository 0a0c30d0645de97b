package out

import (
	"context"
	"fmt"
	"net/http"

	"hindidrill/internal/modules/catalog/domain"
	apperrors "hindidrill/internal/platform/errors"
	"hindidrill/internal/platform/httpjson"
)

type HTTPLessonSource struct {
	client *http.Client
	url    string
}

func NewHTTPLessonSource(client *http.Client, baseURL, lessonsPath string) *HTTPLessonSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLessonSource{client: client, url: baseURL + lessonsPath}
}

func (s *HTTPLessonSource) FetchLessons(ctx context.Context) ([]domain.Lesson, error) {
	var lessons []domain.Lesson
	if err := httpjson.Get(ctx, s.client, s.url, &lessons); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCatalogUnavailable, err)
	}
	if lessons == nil {
		lessons = []domain.Lesson{}
	}
	return lessons, nil
}
