package out

import (
	"context"

	"hindidrill/internal/modules/drill/domain"
	drillout "hindidrill/internal/modules/drill/port/out"
	"hindidrill/internal/modules/speech/dto"
	speechin "hindidrill/internal/modules/speech/port/in"
)

type SpeechVerifierAdapter struct {
	speech speechin.Usecase
}

func NewSpeechVerifierAdapter(speech speechin.Usecase) drillout.Verifier {
	return &SpeechVerifierAdapter{speech: speech}
}

func (a *SpeechVerifierAdapter) Available() bool {
	return a.speech.Available()
}

func (a *SpeechVerifierAdapter) Verify(ctx context.Context, expected string) domain.Verdict {
	out := a.speech.Verify(ctx, dto.VerifyInput{Expected: expected})
	verdict := domain.Verdict{Transcript: out.Transcript, Reason: out.Reason}
	switch out.Kind {
	case dto.VerdictMatched:
		verdict.Kind = domain.VerdictMatched
	case dto.VerdictMismatched:
		verdict.Kind = domain.VerdictMismatched
	case dto.VerdictNoInput:
		verdict.Kind = domain.VerdictNoInput
	default:
		verdict.Kind = domain.VerdictError
		if verdict.Reason == "" && out.Err != nil {
			verdict.Reason = out.Err.Error()
		}
	}
	return verdict
}

type PronouncerAdapter struct {
	speech speechin.Usecase
}

func NewPronouncerAdapter(speech speechin.Usecase) drillout.Pronouncer {
	return &PronouncerAdapter{speech: speech}
}

func (a *PronouncerAdapter) Play(ctx context.Context, profile, text string) error {
	return a.speech.Play(ctx, dto.PlayInput{Profile: profile, Text: text})
}
