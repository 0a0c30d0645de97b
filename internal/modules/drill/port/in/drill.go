package in

import (
	"context"

	"hindidrill/internal/modules/drill/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error)
	SelectLesson(ctx context.Context, lessonID string) (dto.SessionOutput, error)
	ListWords(ctx context.Context, lessonID string) ([]dto.WordOutput, error)
	Next() dto.SessionOutput
	Previous() dto.SessionOutput
	Speak() dto.SessionOutput
	Pronounce() (dto.SessionOutput, error)
	Snapshot() dto.SessionOutput
	Subscribe(fn func(dto.SessionOutput))
	Wait()
	Close()
}
