package in

import (
	"context"

	"hindidrill/internal/modules/speech/dto"
)

type Usecase interface {
	// Available reports whether speech recognition works in this environment.
	// It is decided once at startup.
	Available() bool
	Verify(ctx context.Context, input dto.VerifyInput) dto.VerdictOutput
	Play(ctx context.Context, input dto.PlayInput) error
	Doctor(ctx context.Context) (dto.DoctorOutput, error)
	// Wait blocks until background playback has finished.
	Wait()
}
