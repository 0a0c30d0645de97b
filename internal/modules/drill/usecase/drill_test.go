package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hindidrill/internal/modules/drill/domain"
	"hindidrill/internal/modules/drill/dto"
	"hindidrill/internal/modules/drill/service"
	"hindidrill/internal/modules/drill/usecase"
	apperrors "hindidrill/internal/platform/errors"
	"hindidrill/internal/platform/logging"
)

type staticWords map[string][]domain.Word

func (s staticWords) FetchWords(_ context.Context, lessonID string) ([]domain.Word, error) {
	words, ok := s[lessonID]
	if !ok {
		return nil, fmt.Errorf("%w: lesson %s", apperrors.ErrWordsUnavailable, lessonID)
	}
	return words, nil
}

type offlineVerifier struct{}

func (offlineVerifier) Available() bool { return false }
func (offlineVerifier) Verify(context.Context, string) domain.Verdict {
	return domain.Verdict{Kind: domain.VerdictError, Reason: "unsupported"}
}

type countingPronouncer struct{ plays int }

func (p *countingPronouncer) Play(context.Context, string, string) error {
	p.plays++
	return nil
}

type memoryProfiles struct{}

func (memoryProfiles) Open(_ context.Context, name string) (domain.Learner, error) {
	return domain.Learner{Name: name, PlayCount: 3}, nil
}
func (memoryProfiles) RecordVerified(context.Context, string, string, string) error { return nil }

type knownLessons map[string]bool

func (k knownLessons) Confirm(_ context.Context, lessonID string) error {
	if !k[lessonID] {
		return fmt.Errorf("%w: lesson %s", apperrors.ErrNotFound, lessonID)
	}
	return nil
}

var animals = []domain.Word{
	{HindiWord: "कुत्ता", EnglishMeaning: "dog"},
	{HindiWord: "बिल्ली", EnglishMeaning: "cat"},
}

func newInteractor(t *testing.T) (*usecase.Interactor, *countingPronouncer) {
	t.Helper()
	words := staticWords{"1": animals, "2": nil}
	player := &countingPronouncer{}
	ctrl := service.NewController(service.ControllerDeps{
		Words:      words,
		Verifier:   offlineVerifier{},
		Pronouncer: player,
		Profiles:   memoryProfiles{},
		Logger:     logging.Discard(),
	})
	t.Cleanup(ctrl.Close)
	uc := usecase.NewInteractor(ctrl, words, knownLessons{"1": true, "2": true}, memoryProfiles{})
	return uc.(*usecase.Interactor), player
}

func TestStartRequiresName(t *testing.T) {
	t.Parallel()

	uc, _ := newInteractor(t)
	if _, err := uc.Start(context.Background(), dto.StartInput{Name: "  "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	out, err := uc.Start(context.Background(), dto.StartInput{Name: " asha "})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if out.Profile != "asha" || out.PlayCount != 3 {
		t.Fatalf("unexpected session: %+v", out)
	}
}

func TestSelectLessonBrowsesFreelyWithoutSpeech(t *testing.T) {
	t.Parallel()

	uc, _ := newInteractor(t)
	out, err := uc.SelectLesson(context.Background(), "1")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if out.Notice != dto.NoticeLoading {
		t.Fatalf("notice = %q, want loading", out.Notice)
	}
	uc.Wait()

	out = uc.Snapshot()
	if !out.HasWord || out.Word.HindiWord != "कुत्ता" || out.NavigationLocked {
		t.Fatalf("unexpected session: %+v", out)
	}
	out = uc.Next()
	if out.Word.HindiWord != "बिल्ली" || out.CanAdvance {
		t.Fatalf("unexpected session after next: %+v", out)
	}
	out = uc.Next()
	if out.Word.HindiWord != "बिल्ली" {
		t.Fatalf("advance past the end moved the cursor")
	}
}

func TestSelectUnknownLessonKeepsSession(t *testing.T) {
	t.Parallel()

	uc, _ := newInteractor(t)
	before := uc.Snapshot()
	out, err := uc.SelectLesson(context.Background(), "99")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if out.Version != before.Version || out.LoadingLessonID != "" {
		t.Fatalf("unknown lesson should not start a fetch: %+v", out)
	}
}

func TestEmptyLessonShowsNoWords(t *testing.T) {
	t.Parallel()

	uc, _ := newInteractor(t)
	if _, err := uc.SelectLesson(context.Background(), "2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	uc.Wait()
	out := uc.Snapshot()
	if out.Notice != dto.NoticeNoWords || out.HasWord {
		t.Fatalf("unexpected session: %+v", out)
	}
}

func TestPronounceNeedsProfile(t *testing.T) {
	t.Parallel()

	uc, player := newInteractor(t)
	if _, err := uc.SelectLesson(context.Background(), "1"); err != nil {
		t.Fatalf("select: %v", err)
	}
	uc.Wait()
	if _, err := uc.Pronounce(); !errors.Is(err, apperrors.ErrNoProfile) {
		t.Fatalf("expected no profile, got %v", err)
	}
	if _, err := uc.Start(context.Background(), dto.StartInput{Name: "asha"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := uc.Pronounce()
	if err != nil {
		t.Fatalf("pronounce: %v", err)
	}
	if player.plays != 1 || out.PlayCount != 4 {
		t.Fatalf("plays = %d, count = %d", player.plays, out.PlayCount)
	}
}

func TestListWords(t *testing.T) {
	t.Parallel()

	uc, _ := newInteractor(t)
	words, err := uc.ListWords(context.Background(), "1")
	if err != nil {
		t.Fatalf("list words: %v", err)
	}
	if len(words) != 2 || words[1].EnglishMeaning != "cat" {
		t.Fatalf("words = %+v", words)
	}
	if _, err := uc.ListWords(context.Background(), "99"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.ListWords(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
