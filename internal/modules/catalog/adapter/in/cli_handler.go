package in

import (
	"context"

	"hindidrill/internal/modules/catalog/dto"
	catalogin "hindidrill/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListLessons(ctx context.Context) ([]dto.LessonOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) GetLesson(ctx context.Context, lessonID string) (dto.LessonOutput, error) {
	return h.usecase.Get(ctx, lessonID)
}
