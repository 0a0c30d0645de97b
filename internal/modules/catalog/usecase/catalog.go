package usecase

import (
	"context"

	"hindidrill/internal/modules/catalog/domain"
	"hindidrill/internal/modules/catalog/dto"
	catalogin "hindidrill/internal/modules/catalog/port/in"
	"hindidrill/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) ([]dto.LessonOutput, error) {
	lessons, err := i.svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LessonOutput, 0, len(lessons))
	for _, lesson := range lessons {
		out = append(out, toOutput(lesson))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, lessonID string) (dto.LessonOutput, error) {
	lesson, err := i.svc.Get(ctx, domain.LessonID(lessonID))
	if err != nil {
		return dto.LessonOutput{}, err
	}
	return toOutput(lesson), nil
}

func toOutput(lesson domain.Lesson) dto.LessonOutput {
	return dto.LessonOutput{ID: string(lesson.ID), Name: lesson.Name, Description: lesson.Description}
}
