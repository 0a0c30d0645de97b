package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "hindidrill/internal/platform/errors"
)

// LessonProgress is the set of words verified inside one lesson.
type LessonProgress struct {
	Verified  []string
	UpdatedAt time.Time
}

type Profile struct {
	Name                   string
	PronunciationPlayCount int
	Progress               map[string]LessonProgress
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NormalizeName trims surrounding whitespace and rejects blank names.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: profile name is required", apperrors.ErrInvalidInput)
	}
	return trimmed, nil
}

func New(name string, now time.Time) (Profile, error) {
	normalized, err := NormalizeName(name)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		Name:      normalized,
		Progress:  map[string]LessonProgress{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Verify marks word as verified in lessonID. It reports whether the word was
// new for that lesson.
func (p *Profile) Verify(lessonID, word string, at time.Time) bool {
	if p.Progress == nil {
		p.Progress = map[string]LessonProgress{}
	}
	progress := p.Progress[lessonID]
	if slices.Contains(progress.Verified, word) {
		return false
	}
	progress.Verified = append(progress.Verified, word)
	progress.UpdatedAt = at
	p.Progress[lessonID] = progress
	p.UpdatedAt = at
	return true
}

func (p Profile) VerifiedCount() int {
	total := 0
	for _, progress := range p.Progress {
		total += len(progress.Verified)
	}
	return total
}

// LessonIDs returns the lessons with progress, sorted.
func (p Profile) LessonIDs() []string {
	ids := make([]string, 0, len(p.Progress))
	for id := range p.Progress {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
