package domain_test

import (
	"errors"
	"testing"

	"hindidrill/internal/modules/drill/domain"
)

// load selects lessonID and completes its fetch with words.
func load(t *testing.T, s domain.State, lessonID string, words []domain.Word) domain.State {
	t.Helper()
	s, effects := domain.Transition(s, domain.LessonSelected{LessonID: lessonID})
	fetch := findEffect[domain.FetchWords](effects)
	if fetch == nil {
		t.Fatalf("expected fetch effect, got %#v", effects)
	}
	s, _ = domain.Transition(s, domain.WordsLoaded{LessonID: lessonID, Seq: fetch.Seq, Words: words})
	return s
}

func findEffect[T domain.Effect](effects []domain.Effect) *T {
	for _, eff := range effects {
		if typed, ok := eff.(T); ok {
			return &typed
		}
	}
	return nil
}

func current(t *testing.T, s domain.State) string {
	t.Helper()
	word, ok := s.CurrentWord()
	if !ok {
		t.Fatalf("expected a current word")
	}
	return word.HindiWord
}

func speak(t *testing.T, s domain.State) (domain.State, domain.StartVerification) {
	t.Helper()
	s, effects := domain.Transition(s, domain.SpeakRequested{})
	start := findEffect[domain.StartVerification](effects)
	if start == nil {
		t.Fatalf("expected verification to start, got %#v", effects)
	}
	if !s.VerificationPending || s.LastFeedback.Kind != domain.FeedbackListening {
		t.Fatalf("expected listening state, got %+v", s.LastFeedback)
	}
	return s, *start
}

func TestSelectingLessonShowsFirstWordAndAdvancesToEnd(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(false), "animals", animals())
	if got := current(t, s); got != "कुत्ता" {
		t.Fatalf("expected कुत्ता, got %q", got)
	}
	s, _ = domain.Transition(s, domain.NextRequested{})
	if got := current(t, s); got != "बिल्ली" {
		t.Fatalf("expected बिल्ली, got %q", got)
	}
	epoch := s.WordEpoch
	s, _ = domain.Transition(s, domain.NextRequested{})
	if got := current(t, s); got != "बिल्ली" || s.WordEpoch != epoch {
		t.Fatalf("next at last word must be a no-op, got %q", got)
	}
}

func TestCapabilityAbsentNeverLocks(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(false), "animals", animals())
	for i := 0; i < 3; i++ {
		if s.NavigationLocked {
			t.Fatalf("navigation must never lock without capability (step %d)", i)
		}
		s, _ = domain.Transition(s, domain.NextRequested{})
	}
	s = load(t, s, "fruits", []domain.Word{{HindiWord: "आम"}})
	if s.NavigationLocked {
		t.Fatalf("navigation must never lock without capability")
	}
	if _, effects := domain.Transition(s, domain.SpeakRequested{}); len(effects) != 0 {
		t.Fatalf("speak must be rejected without capability, got %#v", effects)
	}
}

func TestLockHoldsUntilMatchForSameWord(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "animals", animals())
	if !s.NavigationLocked {
		t.Fatalf("expected lock for gated word")
	}
	s, _ = domain.Transition(s, domain.NextRequested{})
	if current(t, s) != "कुत्ता" {
		t.Fatalf("locked next must not move")
	}
	s, start := speak(t, s)
	s, _ = domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictNoInput}})
	if !s.NavigationLocked || s.LastFeedback.Kind != domain.FeedbackNoInput {
		t.Fatalf("no input must keep lock, got locked=%v feedback=%v", s.NavigationLocked, s.LastFeedback.Kind)
	}
	s, start = speak(t, s)
	s, _ = domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictError, Reason: "not-allowed"}})
	if !s.NavigationLocked || s.LastFeedback.Kind != domain.FeedbackMicError || s.LastFeedback.Message != "not-allowed" {
		t.Fatalf("error must keep lock, got %+v", s.LastFeedback)
	}
	s, start = speak(t, s)
	s, _ = domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMatched, Transcript: "कुत्ता"}})
	if s.NavigationLocked {
		t.Fatalf("match must unlock navigation")
	}
}

func TestBlankSpokenFormNeverLocks(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "mixed", []domain.Word{{HindiWord: " ", EnglishMeaning: "?"}, {HindiWord: "पानी"}})
	if s.NavigationLocked {
		t.Fatalf("blank spoken form must not lock")
	}
	if _, effects := domain.Transition(s, domain.PronounceRequested{}); len(effects) != 0 {
		t.Fatalf("pronounce must be rejected for blank word, got %#v", effects)
	}
	s, _ = domain.Transition(s, domain.NextRequested{})
	if !s.NavigationLocked {
		t.Fatalf("lock must be recomputed for the new word")
	}
}

func TestMatchSchedulesAutoAdvance(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "animals", animals())
	s, start := speak(t, s)
	s, effects := domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMatched, Transcript: "कुत्ता"}})
	if s.LastFeedback.Kind != domain.FeedbackCorrect || s.LastFeedback.Transcript != "कुत्ता" {
		t.Fatalf("expected correct feedback, got %+v", s.LastFeedback)
	}
	record := findEffect[domain.RecordVerified](effects)
	if record == nil || record.LessonID != "animals" || record.Word != "कुत्ता" {
		t.Fatalf("expected progress record, got %#v", effects)
	}
	schedule := findEffect[domain.ScheduleAutoAdvance](effects)
	if schedule == nil {
		t.Fatalf("expected auto-advance to be scheduled")
	}
	s, _ = domain.Transition(s, domain.AutoAdvanceFired{Token: schedule.Token})
	if current(t, s) != "बिल्ली" {
		t.Fatalf("expected auto-advance to बिल्ली")
	}
	if !s.NavigationLocked || s.LastFeedback.Kind != domain.FeedbackNone {
		t.Fatalf("new word must start idle and locked")
	}
	s, _ = domain.Transition(s, domain.AutoAdvanceFired{Token: schedule.Token})
	if current(t, s) != "बिल्ली" {
		t.Fatalf("a second fire must be ignored")
	}
}

func TestMatchOnLastWordDoesNotSchedule(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "one", []domain.Word{{HindiWord: "घर"}})
	s, start := speak(t, s)
	s, effects := domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMatched, Transcript: "घर"}})
	if findEffect[domain.ScheduleAutoAdvance](effects) != nil {
		t.Fatalf("no auto-advance at the last word")
	}
	if s.NavigationLocked || s.LastFeedback.Kind != domain.FeedbackCorrect {
		t.Fatalf("expected verified and unlocked at last word")
	}
}

func TestMismatchKeepsLockWithoutAutoAdvance(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "animals", animals())
	s, start := speak(t, s)
	s, effects := domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMismatched, Transcript: "बिल्ली"}})
	if !s.NavigationLocked {
		t.Fatalf("mismatch must keep the lock")
	}
	if s.LastFeedback.Kind != domain.FeedbackMismatch || s.LastFeedback.Expected != "कुत्ता" || s.LastFeedback.Transcript != "बिल्ली" {
		t.Fatalf("unexpected feedback %+v", s.LastFeedback)
	}
	if len(effects) != 0 {
		t.Fatalf("mismatch must not emit effects, got %#v", effects)
	}
}

func TestSecondSpeakWhileListeningIsNoop(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "animals", animals())
	s, _ = speak(t, s)
	if _, effects := domain.Transition(s, domain.SpeakRequested{}); len(effects) != 0 {
		t.Fatalf("second speak must be ignored, got %#v", effects)
	}
}

func TestManualNavigationCancelsAutoAdvance(t *testing.T) {
	t.Parallel()
	words := append(animals(), domain.Word{HindiWord: "गाय", EnglishMeaning: "cow"})
	s := load(t, domain.NewState(true), "animals", words)
	s, start := speak(t, s)
	s, effects := domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMatched}})
	schedule := findEffect[domain.ScheduleAutoAdvance](effects)
	if schedule == nil {
		t.Fatalf("expected schedule")
	}
	s, effects = domain.Transition(s, domain.NextRequested{})
	cancel := findEffect[domain.CancelAutoAdvance](effects)
	if cancel == nil || cancel.Token != schedule.Token {
		t.Fatalf("manual next must cancel the pending auto-advance, got %#v", effects)
	}
	if current(t, s) != "बिल्ली" {
		t.Fatalf("manual next must move once")
	}
	s, _ = domain.Transition(s, domain.AutoAdvanceFired{Token: schedule.Token})
	if current(t, s) != "बिल्ली" {
		t.Fatalf("late timer must not double-advance, got %q", current(t, s))
	}
}

func TestPreviousClearsFeedbackAndRecomputesLock(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "animals", animals())
	s, start := speak(t, s)
	s, _ = domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMatched}})
	s, _ = domain.Transition(s, domain.NextRequested{})
	s, start = speak(t, s)
	s, _ = domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMismatched, Transcript: "x"}})
	s, _ = domain.Transition(s, domain.PreviousRequested{})
	if current(t, s) != "कुत्ता" {
		t.Fatalf("previous must move back")
	}
	if s.LastFeedback.Kind != domain.FeedbackNone || !s.NavigationLocked {
		t.Fatalf("previous must reset feedback and relock, got %+v locked=%v", s.LastFeedback, s.NavigationLocked)
	}
	epoch := s.WordEpoch
	s, _ = domain.Transition(s, domain.PreviousRequested{})
	if s.WordEpoch != epoch {
		t.Fatalf("previous at index 0 must be a no-op")
	}
}

func TestStaleVerificationOnlyClearsPending(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "animals", animals())
	s, start := speak(t, s)
	s = load(t, s, "fruits", []domain.Word{{HindiWord: "आम"}})
	if !s.VerificationPending {
		t.Fatalf("pending must survive a lesson switch while the round is in flight")
	}
	s, effects := domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMatched}})
	if s.VerificationPending {
		t.Fatalf("stale result must clear pending")
	}
	if !s.NavigationLocked || s.LastFeedback.Kind != domain.FeedbackNone || len(effects) != 0 {
		t.Fatalf("stale result must not touch the new word, got %+v", s.LastFeedback)
	}
}

func TestStaleWordsResponseIsDiscarded(t *testing.T) {
	t.Parallel()
	s := domain.NewState(false)
	s, first := domain.Transition(s, domain.LessonSelected{LessonID: "slow"})
	s, second := domain.Transition(s, domain.LessonSelected{LessonID: "fast"})
	fastFetch := findEffect[domain.FetchWords](second)
	slowFetch := findEffect[domain.FetchWords](first)
	s, _ = domain.Transition(s, domain.WordsLoaded{LessonID: "fast", Seq: fastFetch.Seq, Words: []domain.Word{{HindiWord: "तेज़"}}})
	s, _ = domain.Transition(s, domain.WordsLoaded{LessonID: "slow", Seq: slowFetch.Seq, Words: animals()})
	if s.ActiveLessonID != "fast" || current(t, s) != "तेज़" {
		t.Fatalf("slow response must be discarded, active=%s", s.ActiveLessonID)
	}
	s, _ = domain.Transition(s, domain.WordsFailed{LessonID: "slow", Seq: slowFetch.Seq, Err: errors.New("late")})
	if s.Notice != domain.NoticeNone {
		t.Fatalf("stale failure must be ignored, got notice %v", s.Notice)
	}
}

func TestWordsFailureKeepsPreviousLesson(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(false), "animals", animals())
	s, _ = domain.Transition(s, domain.NextRequested{})
	s, effects := domain.Transition(s, domain.LessonSelected{LessonID: "broken"})
	fetch := findEffect[domain.FetchWords](effects)
	s, _ = domain.Transition(s, domain.WordsFailed{LessonID: "broken", Seq: fetch.Seq, Err: errors.New("status 500")})
	if s.Notice != domain.NoticeWordsUnavailable {
		t.Fatalf("expected words unavailable notice, got %v", s.Notice)
	}
	if s.ActiveLessonID != "animals" || current(t, s) != "बिल्ली" {
		t.Fatalf("previous lesson must stay interactable, active=%s", s.ActiveLessonID)
	}
	s, _ = domain.Transition(s, domain.PreviousRequested{})
	if current(t, s) != "कुत्ता" {
		t.Fatalf("previous lesson navigation must still work")
	}
}

func TestEmptyLessonSurfacesNoWords(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "animals", animals())
	s = load(t, s, "empty", nil)
	if s.Notice != domain.NoticeNoWords || s.ActiveLessonID != "empty" {
		t.Fatalf("expected no words notice for empty lesson, got %v", s.Notice)
	}
	if _, ok := s.CurrentWord(); ok || s.NavigationLocked {
		t.Fatalf("empty lesson has no current word and no lock")
	}
	if _, effects := domain.Transition(s, domain.SpeakRequested{}); len(effects) != 0 {
		t.Fatalf("speak on empty lesson must be ignored")
	}
}

func TestLessonSwitchCancelsAutoAdvance(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(true), "animals", animals())
	s, start := speak(t, s)
	s, effects := domain.Transition(s, domain.VerificationFinished{Epoch: start.Epoch, Verdict: domain.Verdict{Kind: domain.VerdictMatched}})
	schedule := findEffect[domain.ScheduleAutoAdvance](effects)
	s, effects = domain.Transition(s, domain.LessonSelected{LessonID: "fruits"})
	if cancel := findEffect[domain.CancelAutoAdvance](effects); cancel == nil || cancel.Token != schedule.Token {
		t.Fatalf("lesson switch must cancel auto-advance, got %#v", effects)
	}
	if s.AutoAdvance != 0 {
		t.Fatalf("pending token must be cleared")
	}
}

func TestPronounceEmitsPlay(t *testing.T) {
	t.Parallel()
	s := load(t, domain.NewState(false), "animals", animals())
	_, effects := domain.Transition(s, domain.PronounceRequested{})
	play := findEffect[domain.PlayPronunciation](effects)
	if play == nil || play.Text != "कुत्ता" {
		t.Fatalf("expected play effect, got %#v", effects)
	}
	if _, effects := domain.Transition(domain.NewState(true), domain.PronounceRequested{}); len(effects) != 0 {
		t.Fatalf("pronounce without words must be ignored")
	}
}
