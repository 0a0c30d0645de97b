package usecase

import (
	"context"
	"fmt"
	"strings"

	"hindidrill/internal/modules/drill/domain"
	"hindidrill/internal/modules/drill/dto"
	drillin "hindidrill/internal/modules/drill/port/in"
	drillout "hindidrill/internal/modules/drill/port/out"
	"hindidrill/internal/modules/drill/service"
	apperrors "hindidrill/internal/platform/errors"
)

type Interactor struct {
	ctrl     *service.Controller
	words    drillout.WordSource
	catalog  drillout.LessonCatalog
	profiles drillout.ProfilePort
}

func NewInteractor(ctrl *service.Controller, words drillout.WordSource, catalog drillout.LessonCatalog, profiles drillout.ProfilePort) drillin.Usecase {
	return &Interactor{ctrl: ctrl, words: words, catalog: catalog, profiles: profiles}
}

// Start opens the learner's profile and binds it to the session.
func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return dto.SessionOutput{}, fmt.Errorf("%w: display name is required", apperrors.ErrInvalidInput)
	}
	learner, err := i.profiles.Open(ctx, name)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(i.ctrl.SetLearner(learner)), nil
}

// SelectLesson confirms the lesson with the catalog and starts loading its
// words. The returned snapshot shows the load in progress.
func (i *Interactor) SelectLesson(ctx context.Context, lessonID string) (dto.SessionOutput, error) {
	lessonID = strings.TrimSpace(lessonID)
	if lessonID == "" {
		return dto.SessionOutput{}, fmt.Errorf("%w: lesson id is required", apperrors.ErrInvalidInput)
	}
	if i.catalog != nil {
		if err := i.catalog.Confirm(ctx, lessonID); err != nil {
			return toOutput(i.ctrl.Snapshot()), err
		}
	}
	return toOutput(i.ctrl.Dispatch(domain.LessonSelected{LessonID: lessonID})), nil
}

// ListWords fetches a lesson's words without touching the session.
func (i *Interactor) ListWords(ctx context.Context, lessonID string) ([]dto.WordOutput, error) {
	lessonID = strings.TrimSpace(lessonID)
	if lessonID == "" {
		return nil, fmt.Errorf("%w: lesson id is required", apperrors.ErrInvalidInput)
	}
	if i.catalog != nil {
		if err := i.catalog.Confirm(ctx, lessonID); err != nil {
			return nil, err
		}
	}
	words, err := i.words.FetchWords(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WordOutput, 0, len(words))
	for _, w := range words {
		out = append(out, toWordOutput(w))
	}
	return out, nil
}

func (i *Interactor) Next() dto.SessionOutput {
	return toOutput(i.ctrl.Dispatch(domain.NextRequested{}))
}

func (i *Interactor) Previous() dto.SessionOutput {
	return toOutput(i.ctrl.Dispatch(domain.PreviousRequested{}))
}

func (i *Interactor) Speak() dto.SessionOutput {
	return toOutput(i.ctrl.Dispatch(domain.SpeakRequested{}))
}

func (i *Interactor) Pronounce() (dto.SessionOutput, error) {
	if i.ctrl.Snapshot().Profile == "" {
		return toOutput(i.ctrl.Snapshot()), apperrors.ErrNoProfile
	}
	return toOutput(i.ctrl.Dispatch(domain.PronounceRequested{})), nil
}

func (i *Interactor) Snapshot() dto.SessionOutput {
	return toOutput(i.ctrl.Snapshot())
}

func (i *Interactor) Subscribe(fn func(dto.SessionOutput)) {
	if fn == nil {
		i.ctrl.Subscribe(nil)
		return
	}
	i.ctrl.Subscribe(func(snap domain.Snapshot) { fn(toOutput(snap)) })
}

func (i *Interactor) Wait() {
	i.ctrl.Wait()
}

func (i *Interactor) Close() {
	i.ctrl.Close()
}

func toOutput(snap domain.Snapshot) dto.SessionOutput {
	s := snap.State
	out := dto.SessionOutput{
		Version:             snap.Version,
		SessionID:           snap.SessionID,
		Profile:             snap.Profile,
		PlayCount:           snap.PlayCount,
		ActiveLessonID:      s.ActiveLessonID,
		LoadingLessonID:     s.LoadingLessonID,
		Cursor:              s.Words.Cursor(),
		Total:               s.Words.Len(),
		VerificationPending: s.VerificationPending,
		NavigationLocked:    s.NavigationLocked,
		CapabilityAvailable: s.CapabilityAvailable,
		CanAdvance:          s.CanAdvance(),
		CanRetreat:          s.CanRetreat(),
		CanSpeak:            s.CanSpeak(),
		Feedback: dto.FeedbackOutput{
			Kind:       s.LastFeedback.Kind.String(),
			Transcript: s.LastFeedback.Transcript,
			Expected:   s.LastFeedback.Expected,
			Message:    s.LastFeedback.Message,
		},
		Notice: s.Notice.String(),
	}
	if word, ok := s.CurrentWord(); ok {
		out.HasWord = true
		out.Word = toWordOutput(word)
	}
	return out
}

func toWordOutput(word domain.Word) dto.WordOutput {
	return dto.WordOutput{
		ID:              word.ID,
		HindiWord:       word.HindiWord,
		EnglishMeaning:  word.EnglishMeaning,
		ExampleSentence: word.ExampleSentence,
		ImageURL:        word.ImageURL,
		Pronunciation:   word.Pronunciation,
		Level:           word.Level,
	}
}
