package domain

type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackListening
	FeedbackCorrect
	FeedbackMismatch
	FeedbackNoInput
	FeedbackMicError
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackListening:
		return "listening"
	case FeedbackCorrect:
		return "correct"
	case FeedbackMismatch:
		return "mismatch"
	case FeedbackNoInput:
		return "no_input"
	case FeedbackMicError:
		return "mic_error"
	default:
		return "none"
	}
}

// Feedback is the outcome shown for the current word.
type Feedback struct {
	Kind       FeedbackKind
	Transcript string
	Expected   string
	Message    string
}

// Notice is session-level status, separate from per-word feedback.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeLoading
	NoticeNoWords
	NoticeWordsUnavailable
)

func (n Notice) String() string {
	switch n {
	case NoticeLoading:
		return "loading"
	case NoticeNoWords:
		return "no_words"
	case NoticeWordsUnavailable:
		return "words_unavailable"
	default:
		return ""
	}
}

type VerdictKind int

const (
	VerdictMatched VerdictKind = iota
	VerdictMismatched
	VerdictNoInput
	VerdictError
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictMatched:
		return "matched"
	case VerdictMismatched:
		return "mismatched"
	case VerdictNoInput:
		return "no_input"
	default:
		return "error"
	}
}

// Verdict is the terminal outcome of one verification round.
type Verdict struct {
	Kind       VerdictKind
	Transcript string
	Reason     string
}

// State is the whole drill session. It is a value; Transition returns a new
// one.
type State struct {
	ActiveLessonID      string
	LoadingLessonID     string
	Words               WordStore
	VerificationPending bool
	NavigationLocked    bool
	LastFeedback        Feedback
	Notice              Notice
	CapabilityAvailable bool

	// WordEpoch changes every time the current word changes. Verification
	// results carry the epoch they were started for.
	WordEpoch uint64
	// FetchSeq identifies the newest word fetch.
	FetchSeq uint64
	// AutoAdvance is the token of the pending auto-advance, zero when none.
	AutoAdvance uint64
	// AutoAdvanceSeq is the last token handed out.
	AutoAdvanceSeq uint64
	// Verified is set once the current word received a matching utterance.
	Verified bool
	// lockBeforeRound is the lock value when the running round started.
	lockBeforeRound bool
}

func NewState(capabilityAvailable bool) State {
	return State{CapabilityAvailable: capabilityAvailable}
}

func (s State) CurrentWord() (Word, bool) {
	return s.Words.Current()
}

// requiresGate reports whether the current word gates forward navigation.
func (s State) requiresGate() bool {
	word, ok := s.Words.Current()
	return ok && s.CapabilityAvailable && word.HasSpokenForm()
}

// CanSpeak reports whether a verification round may start now.
func (s State) CanSpeak() bool {
	return s.requiresGate() && !s.VerificationPending
}

func (s State) CanAdvance() bool {
	return !s.NavigationLocked && s.Words.Len() > 0 && !s.Words.AtEnd()
}

func (s State) CanRetreat() bool {
	return s.Words.Cursor() > 0
}

// Snapshot is a read-only view of the session published after each event.
type Snapshot struct {
	Version   uint64
	SessionID string
	State     State
	Profile   string
	PlayCount int
}
