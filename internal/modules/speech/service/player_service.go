package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	speechout "hindidrill/internal/modules/speech/port/out"
	apperrors "hindidrill/internal/platform/errors"
)

const speakTimeout = 30 * time.Second

type PlayerService struct {
	engine   speechout.Engine
	counter  speechout.PlayCounter
	locale   string
	canSpeak bool
	logger   *log.Logger

	playing sync.WaitGroup
}

func NewPlayerService(engine speechout.Engine, counter speechout.PlayCounter, locale string, canSpeak bool, logger *log.Logger) *PlayerService {
	return &PlayerService{engine: engine, counter: counter, locale: locale, canSpeak: canSpeak, logger: logger}
}

// Play counts the request against profile and starts playback in the
// background. Playback outcome is only logged.
func (s *PlayerService) Play(ctx context.Context, profile, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("%w: nothing to pronounce", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(profile) == "" {
		return 0, apperrors.ErrNoProfile
	}
	count, err := s.counter.IncrementPlays(ctx, profile)
	if err != nil {
		return 0, fmt.Errorf("count play: %w", err)
	}
	if !s.canSpeak {
		s.logger.Warn("speech synthesis unavailable", "engine", s.engine.Name())
		return count, nil
	}
	s.playing.Add(1)
	go func() {
		defer s.playing.Done()
		speakCtx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		defer cancel()
		if err := s.engine.Speak(speakCtx, text, s.locale); err != nil {
			s.logger.Warn("playback failed", "engine", s.engine.Name(), "err", err)
		}
	}()
	return count, nil
}

// Wait blocks until background playback has finished.
func (s *PlayerService) Wait() {
	s.playing.Wait()
}
