package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	apperrors "hindidrill/internal/platform/errors"
)

// Settings configures a recognition round. One fixed locale, one utterance,
// final results only, a single hypothesis.
type Settings struct {
	Locale          string
	Continuous      bool
	InterimResults  bool
	MaxAlternatives int
}

func NewSettings(locale string) Settings {
	return Settings{Locale: strings.TrimSpace(locale), MaxAlternatives: 1}
}

func (s Settings) Validate() error {
	if _, err := language.Parse(s.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", apperrors.ErrInvalidInput, s.Locale, err)
	}
	if s.Continuous || s.InterimResults {
		return fmt.Errorf("%w: only single final utterances are supported", apperrors.ErrInvalidInput)
	}
	if s.MaxAlternatives != 1 {
		return fmt.Errorf("%w: max alternatives must be 1", apperrors.ErrInvalidInput)
	}
	return nil
}

// Tag is the parsed locale, or und when it does not parse.
func (s Settings) Tag() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}
