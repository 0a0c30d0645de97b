package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hindidrill/internal/modules/speech/domain"
	"hindidrill/internal/modules/speech/service"
	apperrors "hindidrill/internal/platform/errors"
	"hindidrill/internal/platform/logging"
)

type fakeEngine struct {
	mu        sync.Mutex
	caps      domain.Capabilities
	probeErr  error
	startErr  error
	started   chan struct{}
	events    chan domain.CapabilityEvent
	rounds    int
	spoken    []string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		caps:    domain.Capabilities{Recognize: true, Speak: true},
		started: make(chan struct{}, 4),
		events:  make(chan domain.CapabilityEvent, 4),
	}
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Probe(context.Context) (domain.Capabilities, error) {
	return f.caps, f.probeErr
}

func (f *fakeEngine) Recognize(context.Context, domain.Settings) (<-chan domain.CapabilityEvent, error) {
	f.mu.Lock()
	f.rounds++
	f.mu.Unlock()
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.started <- struct{}{}
	return f.events, nil
}

func (f *fakeEngine) Speak(_ context.Context, text, _ string) error {
	f.mu.Lock()
	f.spoken = append(f.spoken, text)
	f.mu.Unlock()
	return nil
}

func (f *fakeEngine) roundCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rounds
}

func newVerifier(engine *fakeEngine, timeout time.Duration) *service.VerifierService {
	caps := service.Detect(context.Background(), engine, logging.Discard())
	return service.NewVerifierService(engine, domain.NewSettings("hi-IN"), caps, timeout, logging.Discard())
}

func TestVerifyMatchIgnoresCase(t *testing.T) {
	t.Parallel()
	engine := newFakeEngine()
	engine.events <- domain.Result("Namaste ")
	v := newVerifier(engine, time.Second).Verify(context.Background(), "namaste")
	if v.Kind != domain.Matched || v.Transcript != "Namaste" {
		t.Fatalf("expected match, got %+v", v)
	}
}

func TestVerifySecondCallIsBusyAndFirstUnaffected(t *testing.T) {
	t.Parallel()
	engine := newFakeEngine()
	verifier := newVerifier(engine, 5*time.Second)

	first := make(chan domain.Verdict, 1)
	go func() { first <- verifier.Verify(context.Background(), "कुत्ता") }()
	<-engine.started

	second := verifier.Verify(context.Background(), "कुत्ता")
	if second.Kind != domain.CapabilityError || second.Reason != "already listening" {
		t.Fatalf("expected busy error, got %+v", second)
	}
	if !errors.Is(second.Err, apperrors.ErrCapabilityBusy) {
		t.Fatalf("expected ErrCapabilityBusy, got %v", second.Err)
	}
	if engine.roundCount() != 1 {
		t.Fatalf("busy call must not reach the engine, rounds=%d", engine.roundCount())
	}

	engine.events <- domain.Result("कुत्ता")
	if v := <-first; v.Kind != domain.Matched {
		t.Fatalf("first round must be unaffected, got %+v", v)
	}

	engine.events <- domain.SpeechEnd()
	close(engine.events)
	if v := verifier.Verify(context.Background(), "कुत्ता"); v.Kind != domain.NoInput {
		t.Fatalf("expected a fresh round to run, got %+v", v)
	}
}

func TestVerifyUnsupported(t *testing.T) {
	t.Parallel()
	engine := newFakeEngine()
	engine.probeErr = errors.New("no microphone")
	v := newVerifier(engine, time.Second)
	if v.Available() {
		t.Fatalf("probe failure must disable recognition")
	}
	verdict := v.Verify(context.Background(), "घर")
	if !errors.Is(verdict.Err, apperrors.ErrCapabilityUnsupported) || engine.roundCount() != 0 {
		t.Fatalf("expected unsupported without engine call, got %+v", verdict)
	}
}

func TestVerifyStartFailureAndErrorEvent(t *testing.T) {
	t.Parallel()
	engine := newFakeEngine()
	engine.startErr = errors.New("device busy")
	verdict := newVerifier(engine, time.Second).Verify(context.Background(), "घर")
	if verdict.Kind != domain.CapabilityError || !errors.Is(verdict.Err, apperrors.ErrCapabilityError) {
		t.Fatalf("expected capability error, got %+v", verdict)
	}

	engine = newFakeEngine()
	engine.events <- domain.Failure("network")
	verdict = newVerifier(engine, time.Second).Verify(context.Background(), "घर")
	if verdict.Kind != domain.CapabilityError || verdict.Reason != "network" || !errors.Is(verdict.Err, apperrors.ErrCapabilityError) {
		t.Fatalf("expected error event verdict, got %+v", verdict)
	}
}

func TestVerifyTimeoutIsNoInput(t *testing.T) {
	t.Parallel()
	engine := newFakeEngine()
	engine.events <- domain.SpeechEnd()
	verdict := newVerifier(engine, 20*time.Millisecond).Verify(context.Background(), "घर")
	if verdict.Kind != domain.NoInput {
		t.Fatalf("expected no input on timeout, got %+v", verdict)
	}
}
