package domain

// Event is an input to Transition.
type Event interface {
	isEvent()
}

type LessonSelected struct {
	LessonID string
}

type WordsLoaded struct {
	LessonID string
	Seq      uint64
	Words    []Word
}

type WordsFailed struct {
	LessonID string
	Seq      uint64
	Err      error
}

type NextRequested struct{}

type PreviousRequested struct{}

type SpeakRequested struct{}

type VerificationFinished struct {
	Epoch   uint64
	Verdict Verdict
}

type AutoAdvanceFired struct {
	Token uint64
}

type PronounceRequested struct{}

func (LessonSelected) isEvent()       {}
func (WordsLoaded) isEvent()          {}
func (WordsFailed) isEvent()          {}
func (NextRequested) isEvent()        {}
func (PreviousRequested) isEvent()    {}
func (SpeakRequested) isEvent()       {}
func (VerificationFinished) isEvent() {}
func (AutoAdvanceFired) isEvent()     {}
func (PronounceRequested) isEvent()   {}

// Effect is work Transition asks the caller to perform.
type Effect interface {
	isEffect()
}

type FetchWords struct {
	LessonID string
	Seq      uint64
}

type StartVerification struct {
	Epoch    uint64
	Expected string
}

type ScheduleAutoAdvance struct {
	Token uint64
}

type CancelAutoAdvance struct {
	Token uint64
}

type PlayPronunciation struct {
	Text string
}

type RecordVerified struct {
	LessonID string
	Word     string
}

func (FetchWords) isEffect()          {}
func (StartVerification) isEffect()   {}
func (ScheduleAutoAdvance) isEffect() {}
func (CancelAutoAdvance) isEffect()   {}
func (PlayPronunciation) isEffect()   {}
func (RecordVerified) isEffect()      {}
