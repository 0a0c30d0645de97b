package in

import (
	"context"

	"hindidrill/internal/modules/profile/dto"
)

type Usecase interface {
	// Open returns the named profile, creating it on first use.
	Open(ctx context.Context, input dto.OpenInput) (dto.ProfileOutput, error)
	Get(ctx context.Context, name string) (dto.ProfileOutput, error)
	IncrementPlays(ctx context.Context, name string) (int, error)
	RecordVerified(ctx context.Context, input dto.RecordVerifiedInput) error
	Export(ctx context.Context, input dto.ExportInput) ([]byte, error)
}
