package in

import (
	"context"

	"hindidrill/internal/modules/speech/dto"
	speechin "hindidrill/internal/modules/speech/port/in"
)

type CLIHandler struct {
	usecase speechin.Usecase
}

func NewCLIHandler(usecase speechin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Doctor(ctx context.Context) (dto.DoctorOutput, error) {
	return h.usecase.Doctor(ctx)
}

// Say plays text and returns once playback has finished.
func (h CLIHandler) Say(ctx context.Context, profile, text string) error {
	if err := h.usecase.Play(ctx, dto.PlayInput{Profile: profile, Text: text}); err != nil {
		return err
	}
	h.usecase.Wait()
	return nil
}

func (h CLIHandler) Listen(ctx context.Context, expected string) dto.VerdictOutput {
	return h.usecase.Verify(ctx, dto.VerifyInput{Expected: expected})
}
