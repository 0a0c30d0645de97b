package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"hindidrill/internal/modules/profile/domain"
	"hindidrill/internal/modules/profile/dto"
	profilein "hindidrill/internal/modules/profile/port/in"
	"hindidrill/internal/modules/profile/service"
	apperrors "hindidrill/internal/platform/errors"
	"hindidrill/internal/platform/markdown"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Open(ctx context.Context, input dto.OpenInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.Open(ctx, input.Name)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) Get(ctx context.Context, name string) (dto.ProfileOutput, error) {
	profile, err := i.svc.Get(ctx, name)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) IncrementPlays(ctx context.Context, name string) (int, error) {
	return i.svc.IncrementPlays(ctx, name)
}

func (i *Interactor) RecordVerified(ctx context.Context, input dto.RecordVerifiedInput) error {
	return i.svc.RecordVerified(ctx, input.Name, input.LessonID, input.Word)
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) ([]byte, error) {
	profile, err := i.svc.Get(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	out := toOutput(profile)
	switch input.Format {
	case "", dto.ExportYAML:
		raw, err := yaml.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("marshal profile report: %w", err)
		}
		return raw, nil
	case dto.ExportMarkdown:
		return renderMarkdown(out)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", apperrors.ErrInvalidInput, input.Format)
	}
}

type reportMeta struct {
	Name                   string `yaml:"name"`
	PronunciationPlayCount int    `yaml:"pronunciation_play_count"`
	VerifiedCount          int    `yaml:"verified_count"`
	UpdatedAt              string `yaml:"updated_at,omitempty"`
}

func renderMarkdown(out dto.ProfileOutput) ([]byte, error) {
	body := strings.Builder{}
	fmt.Fprintf(&body, "# Progress: %s\n", out.Name)
	if len(out.Lessons) == 0 {
		body.WriteString("\nNo verified words yet.\n")
	}
	for _, lesson := range out.Lessons {
		fmt.Fprintf(&body, "\n## Lesson %s\n\n", lesson.LessonID)
		for _, word := range lesson.Verified {
			fmt.Fprintf(&body, "- %s\n", word)
		}
	}
	return markdown.Render(reportMeta{
		Name:                   out.Name,
		PronunciationPlayCount: out.PronunciationPlayCount,
		VerifiedCount:          out.VerifiedCount,
		UpdatedAt:              out.UpdatedAt,
	}, body.String())
}

func toOutput(profile domain.Profile) dto.ProfileOutput {
	lessons := make([]dto.LessonProgressOutput, 0, len(profile.Progress))
	for _, lessonID := range profile.LessonIDs() {
		progress := profile.Progress[lessonID]
		lessons = append(lessons, dto.LessonProgressOutput{
			LessonID:  lessonID,
			Verified:  append([]string(nil), progress.Verified...),
			UpdatedAt: formatTime(progress.UpdatedAt),
		})
	}
	return dto.ProfileOutput{
		Name:                   profile.Name,
		PronunciationPlayCount: profile.PronunciationPlayCount,
		VerifiedCount:          profile.VerifiedCount(),
		Lessons:                lessons,
		CreatedAt:              formatTime(profile.CreatedAt),
		UpdatedAt:              formatTime(profile.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}
