package in

import (
	"context"

	"hindidrill/internal/modules/profile/dto"
	profilein "hindidrill/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context, name string) (dto.ProfileOutput, error) {
	return h.usecase.Get(ctx, name)
}

func (h CLIHandler) Export(ctx context.Context, name, format string) ([]byte, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Name: name, Format: dto.ExportFormat(format)})
}
