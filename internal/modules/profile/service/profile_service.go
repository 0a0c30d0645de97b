package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hindidrill/internal/modules/profile/domain"
	profileout "hindidrill/internal/modules/profile/port/out"
	"hindidrill/internal/platform/clock"
	apperrors "hindidrill/internal/platform/errors"
)

type ProfileService struct {
	clock clock.Clock
	store profileout.ProfileStore
}

func NewProfileService(clock clock.Clock, store profileout.ProfileStore) *ProfileService {
	return &ProfileService{clock: clock, store: store}
}

func (s *ProfileService) Open(ctx context.Context, name string) (domain.Profile, error) {
	normalized, err := domain.NormalizeName(name)
	if err != nil {
		return domain.Profile{}, err
	}
	profile, err := s.store.Load(ctx, normalized)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Profile{}, err
	}
	fresh, err := domain.New(normalized, s.clock.Now())
	if err != nil {
		return domain.Profile{}, err
	}
	return s.store.Ensure(ctx, fresh)
}

func (s *ProfileService) Get(ctx context.Context, name string) (domain.Profile, error) {
	normalized, err := domain.NormalizeName(name)
	if err != nil {
		return domain.Profile{}, err
	}
	return s.store.Load(ctx, normalized)
}

func (s *ProfileService) IncrementPlays(ctx context.Context, name string) (int, error) {
	normalized, err := domain.NormalizeName(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrNoProfile, err)
	}
	return s.store.IncrementPlays(ctx, normalized, s.clock.Now())
}

func (s *ProfileService) RecordVerified(ctx context.Context, name, lessonID, word string) error {
	normalized, err := domain.NormalizeName(name)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrNoProfile, err)
	}
	lessonID = strings.TrimSpace(lessonID)
	word = strings.TrimSpace(word)
	if lessonID == "" || word == "" {
		return fmt.Errorf("%w: lesson id and word are required", apperrors.ErrInvalidInput)
	}
	return s.store.RecordVerified(ctx, normalized, lessonID, word, s.clock.Now())
}
