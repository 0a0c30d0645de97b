package out

import (
	"context"

	"hindidrill/internal/modules/catalog/domain"
)

type LessonSource interface {
	FetchLessons(ctx context.Context) ([]domain.Lesson, error)
}
