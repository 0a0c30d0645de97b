package in

import (
	"context"

	"hindidrill/internal/modules/drill/dto"
	drillin "hindidrill/internal/modules/drill/port/in"
)

type CLIHandler struct {
	usecase drillin.Usecase
}

func NewCLIHandler(usecase drillin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListWords(ctx context.Context, lessonID string) ([]dto.WordOutput, error) {
	return h.usecase.ListWords(ctx, lessonID)
}
