package in

import (
	"context"

	"hindidrill/internal/modules/catalog/dto"
)

type Usecase interface {
	Load(ctx context.Context) ([]dto.LessonOutput, error)
	Get(ctx context.Context, lessonID string) (dto.LessonOutput, error)
}
