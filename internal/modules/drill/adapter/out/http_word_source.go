package out

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"hindidrill/internal/modules/drill/domain"
	drillout "hindidrill/internal/modules/drill/port/out"
	apperrors "hindidrill/internal/platform/errors"
	"hindidrill/internal/platform/httpjson"
	"hindidrill/internal/platform/id"
)

type wordPayload struct {
	ID              id.Opaque `json:"id"`
	HindiWord       string    `json:"hindi_word"`
	EnglishMeaning  string    `json:"english_meaning"`
	ExampleSentence string    `json:"example_sentence"`
	ImageURL        string    `json:"image_url"`
	Pronunciation   string    `json:"pronunciation"`
	Level           int       `json:"level"`
}

type HTTPWordSource struct {
	client    *http.Client
	baseURL   string
	wordsPath string
}

// NewHTTPWordSource builds a source for wordsPath, which must contain the
// {id} placeholder.
func NewHTTPWordSource(client *http.Client, baseURL, wordsPath string) drillout.WordSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPWordSource{client: client, baseURL: baseURL, wordsPath: wordsPath}
}

func (s *HTTPWordSource) FetchWords(ctx context.Context, lessonID string) ([]domain.Word, error) {
	endpoint := s.baseURL + strings.ReplaceAll(s.wordsPath, "{id}", url.PathEscape(lessonID))
	var payload []wordPayload
	if err := httpjson.Get(ctx, s.client, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("lesson %s: %w: %w", lessonID, apperrors.ErrWordsUnavailable, err)
	}
	words := make([]domain.Word, 0, len(payload))
	for _, p := range payload {
		words = append(words, domain.Word{
			ID:              string(p.ID),
			HindiWord:       p.HindiWord,
			EnglishMeaning:  p.EnglishMeaning,
			ExampleSentence: p.ExampleSentence,
			ImageURL:        p.ImageURL,
			Pronunciation:   p.Pronunciation,
			Level:           p.Level,
		})
	}
	return words, nil
}
