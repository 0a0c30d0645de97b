package out

import (
	"context"

	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
	apperrors "hindidrill/internal/platform/errors"
)

// NoopEngine is the "none" engine. Nothing is supported.
type NoopEngine struct{}

func NewNoopEngine() speechout.Engine {
	return NoopEngine{}
}

func (NoopEngine) Name() string { return "none" }

func (NoopEngine) Probe(context.Context) (domain.Capabilities, error) {
	return domain.Capabilities{Detail: "speech disabled by configuration"}, nil
}

func (NoopEngine) Recognize(context.Context, domain.Settings) (<-chan domain.CapabilityEvent, error) {
	return nil, apperrors.ErrCapabilityUnsupported
}

func (NoopEngine) Speak(context.Context, string, string) error {
	return apperrors.ErrCapabilityUnsupported
}
