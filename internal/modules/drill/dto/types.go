package dto

type StartInput struct {
	Name string
}

type WordOutput struct {
	ID              string
	HindiWord       string
	EnglishMeaning  string
	ExampleSentence string
	ImageURL        string
	Pronunciation   string
	Level           int
}

const (
	FeedbackNone      = "none"
	FeedbackListening = "listening"
	FeedbackCorrect   = "correct"
	FeedbackMismatch  = "mismatch"
	FeedbackNoInput   = "no_input"
	FeedbackMicError  = "mic_error"
)

type FeedbackOutput struct {
	Kind       string
	Transcript string
	Expected   string
	Message    string
}

const (
	NoticeLoading          = "loading"
	NoticeNoWords          = "no_words"
	NoticeWordsUnavailable = "words_unavailable"
)

type SessionOutput struct {
	Version             uint64
	SessionID           string
	Profile             string
	PlayCount           int
	ActiveLessonID      string
	LoadingLessonID     string
	HasWord             bool
	Word                WordOutput
	Cursor              int
	Total               int
	VerificationPending bool
	NavigationLocked    bool
	CapabilityAvailable bool
	CanAdvance          bool
	CanRetreat          bool
	CanSpeak            bool
	Feedback            FeedbackOutput
	Notice              string
}
