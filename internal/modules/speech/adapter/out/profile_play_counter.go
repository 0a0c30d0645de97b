package out

import (
	"context"

	profilein "hindidrill/internal/modules/profile/port/in"
	speechout "hindidrill/internal/modules/speech/port/out"
)

type ProfilePlayCounter struct {
	profiles profilein.Usecase
}

func NewProfilePlayCounter(profiles profilein.Usecase) speechout.PlayCounter {
	return &ProfilePlayCounter{profiles: profiles}
}

func (c *ProfilePlayCounter) IncrementPlays(ctx context.Context, profile string) (int, error) {
	return c.profiles.IncrementPlays(ctx, profile)
}
