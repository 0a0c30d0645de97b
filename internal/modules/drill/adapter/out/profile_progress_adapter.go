package out

import (
	"context"

	"hindidrill/internal/modules/drill/domain"
	drillout "hindidrill/internal/modules/drill/port/out"
	"hindidrill/internal/modules/profile/dto"
	profilein "hindidrill/internal/modules/profile/port/in"
)

type ProfileProgressAdapter struct {
	profiles profilein.Usecase
}

func NewProfileProgressAdapter(profiles profilein.Usecase) drillout.ProfilePort {
	return &ProfileProgressAdapter{profiles: profiles}
}

func (a *ProfileProgressAdapter) Open(ctx context.Context, name string) (domain.Learner, error) {
	profile, err := a.profiles.Open(ctx, dto.OpenInput{Name: name})
	if err != nil {
		return domain.Learner{}, err
	}
	return domain.Learner{Name: profile.Name, PlayCount: profile.PronunciationPlayCount}, nil
}

func (a *ProfileProgressAdapter) RecordVerified(ctx context.Context, profile, lessonID, word string) error {
	return a.profiles.RecordVerified(ctx, dto.RecordVerifiedInput{Name: profile, LessonID: lessonID, Word: word})
}
