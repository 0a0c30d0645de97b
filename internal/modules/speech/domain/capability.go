package domain

type EventKind int

const (
	EventResult EventKind = iota
	EventSpeechEnd
	EventError
)

// CapabilityEvent is one callback from a recognition engine.
type CapabilityEvent struct {
	Kind       EventKind
	Transcript string
	Code       string
}

func Result(transcript string) CapabilityEvent {
	return CapabilityEvent{Kind: EventResult, Transcript: transcript}
}

func SpeechEnd() CapabilityEvent {
	return CapabilityEvent{Kind: EventSpeechEnd}
}

func Failure(code string) CapabilityEvent {
	return CapabilityEvent{Kind: EventError, Code: code}
}

// Terminal reports whether no further events matter for the round.
func (e CapabilityEvent) Terminal() bool {
	return e.Kind == EventResult || e.Kind == EventError
}

// Capabilities is what an engine can do in the running environment.
type Capabilities struct {
	Recognize bool
	Speak     bool
	Detail    string
}
