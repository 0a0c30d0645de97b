package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

type VerdictKind int

const (
	Matched VerdictKind = iota
	Mismatched
	NoInput
	CapabilityError
)

func (k VerdictKind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Mismatched:
		return "mismatched"
	case NoInput:
		return "no_input"
	default:
		return "error"
	}
}

type Verdict struct {
	Kind       VerdictKind
	Transcript string
	Reason     string
	Err        error
}

func NewCapabilityError(reason string, err error) Verdict {
	return Verdict{Kind: CapabilityError, Reason: reason, Err: err}
}

// Matches compares a transcript with the expected spoken form. Only the
// transcript is trimmed; comparison is exact after case folding.
func Matches(transcript, expected string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(transcript)) == fold.String(expected)
}

// Fold reduces the events of one round to a verdict. The first result
// decides; an error before any result is a capability error; anything else
// means nothing was heard.
func Fold(expected string, events []CapabilityEvent) Verdict {
	for _, ev := range events {
		switch ev.Kind {
		case EventResult:
			transcript := strings.TrimSpace(ev.Transcript)
			if transcript == "" {
				continue
			}
			if Matches(transcript, expected) {
				return Verdict{Kind: Matched, Transcript: transcript}
			}
			return Verdict{Kind: Mismatched, Transcript: transcript}
		case EventError:
			return Verdict{Kind: CapabilityError, Reason: ev.Code}
		}
	}
	return Verdict{Kind: NoInput}
}
