package in

import (
	"context"

	"hindidrill/internal/modules/drill/dto"
	drillin "hindidrill/internal/modules/drill/port/in"
)

type TUIHandler struct {
	usecase drillin.Usecase
}

func NewTUIHandler(usecase drillin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Start(ctx context.Context, name string) (dto.SessionOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{Name: name})
}

func (h TUIHandler) SelectLesson(ctx context.Context, lessonID string) (dto.SessionOutput, error) {
	return h.usecase.SelectLesson(ctx, lessonID)
}

func (h TUIHandler) Next() dto.SessionOutput {
	return h.usecase.Next()
}

func (h TUIHandler) Previous() dto.SessionOutput {
	return h.usecase.Previous()
}

func (h TUIHandler) Speak() dto.SessionOutput {
	return h.usecase.Speak()
}

func (h TUIHandler) Pronounce() (dto.SessionOutput, error) {
	return h.usecase.Pronounce()
}

func (h TUIHandler) Snapshot() dto.SessionOutput {
	return h.usecase.Snapshot()
}

// Watch forwards every session change to fn until the handler is closed.
func (h TUIHandler) Watch(fn func(dto.SessionOutput)) {
	h.usecase.Subscribe(fn)
}

func (h TUIHandler) Close() {
	h.usecase.Subscribe(nil)
	h.usecase.Close()
}
