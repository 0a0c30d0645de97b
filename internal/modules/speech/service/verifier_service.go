package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"hindidrill/internal/modules/speech/domain"
	speechout "hindidrill/internal/modules/speech/port/out"
	apperrors "hindidrill/internal/platform/errors"
)

type VerifierService struct {
	engine    speechout.Engine
	settings  domain.Settings
	timeout   time.Duration
	available bool
	logger    *log.Logger

	busy atomic.Bool
}

func NewVerifierService(engine speechout.Engine, settings domain.Settings, caps domain.Capabilities, timeout time.Duration, logger *log.Logger) *VerifierService {
	return &VerifierService{
		engine:    engine,
		settings:  settings,
		timeout:   timeout,
		available: caps.Recognize,
		logger:    logger,
	}
}

func (s *VerifierService) Available() bool {
	return s.available
}

// Verify runs one recognition round against expected. Only one round runs at
// a time; a concurrent call returns a busy capability error at once.
func (s *VerifierService) Verify(ctx context.Context, expected string) domain.Verdict {
	if !s.available {
		return domain.NewCapabilityError("speech recognition unsupported", apperrors.ErrCapabilityUnsupported)
	}
	if !s.busy.CompareAndSwap(false, true) {
		return domain.NewCapabilityError("already listening", apperrors.ErrCapabilityBusy)
	}
	defer s.busy.Store(false)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	events, err := s.engine.Recognize(ctx, s.settings)
	if err != nil {
		s.logger.Warn("recognition failed to start", "engine", s.engine.Name(), "err", err)
		return domain.NewCapabilityError(err.Error(), fmt.Errorf("%w: %w", apperrors.ErrCapabilityError, err))
	}

	var collected []domain.CapabilityEvent
collect:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				break collect
			}
			collected = append(collected, ev)
			if ev.Terminal() {
				break collect
			}
		case <-ctx.Done():
			s.logger.Debug("recognition round timed out", "expected", expected)
			break collect
		}
	}

	verdict := domain.Fold(expected, collected)
	if verdict.Kind == domain.CapabilityError {
		verdict.Err = fmt.Errorf("%w: %s", apperrors.ErrCapabilityError, verdict.Reason)
	}
	s.logger.Info("verification round", "expected", expected, "verdict", verdict.Kind, "transcript", verdict.Transcript)
	return verdict
}
