package domain

import "strings"

// Transition applies one event to the session. It never performs I/O; the
// returned effects describe the work the caller must run, in order.
func Transition(s State, ev Event) (State, []Effect) {
	var effects []Effect
	switch ev := ev.(type) {
	case LessonSelected:
		if strings.TrimSpace(ev.LessonID) == "" {
			return s, nil
		}
		effects = cancelAutoAdvance(&s, effects)
		s.FetchSeq++
		s.LoadingLessonID = ev.LessonID
		s.Notice = NoticeLoading
		effects = append(effects, FetchWords{LessonID: ev.LessonID, Seq: s.FetchSeq})

	case WordsLoaded:
		if !s.isCurrentFetch(ev.LessonID, ev.Seq) {
			return s, nil
		}
		effects = cancelAutoAdvance(&s, effects)
		s.LoadingLessonID = ""
		s.ActiveLessonID = ev.LessonID
		s.Words.SetWords(ev.Words)
		enterWord(&s)
		if s.Words.Len() == 0 {
			s.Notice = NoticeNoWords
		} else {
			s.Notice = NoticeNone
		}

	case WordsFailed:
		if !s.isCurrentFetch(ev.LessonID, ev.Seq) {
			return s, nil
		}
		s.LoadingLessonID = ""
		s.Notice = NoticeWordsUnavailable

	case NextRequested:
		effects = cancelAutoAdvance(&s, effects)
		if s.NavigationLocked {
			return s, effects
		}
		if s.Words.Advance() {
			enterWord(&s)
		}

	case PreviousRequested:
		effects = cancelAutoAdvance(&s, effects)
		if s.Words.Retreat() {
			enterWord(&s)
		}

	case SpeakRequested:
		if !s.CanSpeak() {
			return s, nil
		}
		word, _ := s.Words.Current()
		effects = cancelAutoAdvance(&s, effects)
		s.lockBeforeRound = s.NavigationLocked
		s.VerificationPending = true
		s.LastFeedback = Feedback{Kind: FeedbackListening}
		effects = append(effects, StartVerification{Epoch: s.WordEpoch, Expected: word.SpokenForm()})

	case VerificationFinished:
		if !s.VerificationPending {
			return s, nil
		}
		s.VerificationPending = false
		if ev.Epoch != s.WordEpoch {
			return s, nil
		}
		effects = applyVerdict(&s, ev.Verdict, effects)

	case AutoAdvanceFired:
		if ev.Token == 0 || ev.Token != s.AutoAdvance {
			return s, nil
		}
		s.AutoAdvance = 0
		if !s.NavigationLocked && s.Words.Advance() {
			enterWord(&s)
		}

	case PronounceRequested:
		word, ok := s.Words.Current()
		if !ok || !word.HasSpokenForm() {
			return s, nil
		}
		effects = append(effects, PlayPronunciation{Text: word.SpokenForm()})
	}
	return s, effects
}

func applyVerdict(s *State, v Verdict, effects []Effect) []Effect {
	word, _ := s.Words.Current()
	switch v.Kind {
	case VerdictMatched:
		s.Verified = true
		s.NavigationLocked = false
		s.LastFeedback = Feedback{Kind: FeedbackCorrect, Transcript: v.Transcript, Expected: word.SpokenForm()}
		effects = append(effects, RecordVerified{LessonID: s.ActiveLessonID, Word: word.SpokenForm()})
		if !s.Words.AtEnd() {
			s.AutoAdvanceSeq++
			s.AutoAdvance = s.AutoAdvanceSeq
			effects = append(effects, ScheduleAutoAdvance{Token: s.AutoAdvance})
		}
	case VerdictMismatched:
		s.NavigationLocked = s.requiresGate() && !s.Verified
		s.LastFeedback = Feedback{Kind: FeedbackMismatch, Transcript: v.Transcript, Expected: word.SpokenForm()}
	case VerdictNoInput:
		s.NavigationLocked = s.lockBeforeRound
		s.LastFeedback = Feedback{Kind: FeedbackNoInput}
	default:
		s.NavigationLocked = s.lockBeforeRound
		s.LastFeedback = Feedback{Kind: FeedbackMicError, Message: v.Reason}
	}
	return effects
}

// enterWord resets per-word state after the current word changed.
func enterWord(s *State) {
	s.WordEpoch++
	s.Verified = false
	s.LastFeedback = Feedback{}
	s.NavigationLocked = s.requiresGate()
}

func cancelAutoAdvance(s *State, effects []Effect) []Effect {
	if s.AutoAdvance == 0 {
		return effects
	}
	effects = append(effects, CancelAutoAdvance{Token: s.AutoAdvance})
	s.AutoAdvance = 0
	return effects
}

func (s State) isCurrentFetch(lessonID string, seq uint64) bool {
	return s.LoadingLessonID != "" && s.LoadingLessonID == lessonID && s.FetchSeq == seq
}
