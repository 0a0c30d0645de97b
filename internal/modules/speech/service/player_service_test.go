package service_test

import (
	"context"
	"errors"
	"testing"

	"hindidrill/internal/modules/speech/domain"
	"hindidrill/internal/modules/speech/service"
	apperrors "hindidrill/internal/platform/errors"
	"hindidrill/internal/platform/logging"
)

type fakeCounter struct {
	counts map[string]int
	err    error
}

func (f *fakeCounter) IncrementPlays(_ context.Context, profile string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[profile]++
	return f.counts[profile], nil
}

func TestPlayCountsOnceAndSpeaks(t *testing.T) {
	t.Parallel()
	engine := newFakeEngine()
	counter := &fakeCounter{counts: map[string]int{}}
	player := service.NewPlayerService(engine, counter, "hi-IN", true, logging.Discard())
	count, err := player.Play(context.Background(), "asha", "नमस्ते")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	player.Wait()
	if count != 1 || counter.counts["asha"] != 1 {
		t.Fatalf("expected one counted play, got %d", count)
	}
	if len(engine.spoken) != 1 || engine.spoken[0] != "नमस्ते" {
		t.Fatalf("expected synthesis request, got %v", engine.spoken)
	}
}

func TestPlayRejectsEmptyText(t *testing.T) {
	t.Parallel()
	counter := &fakeCounter{counts: map[string]int{}}
	player := service.NewPlayerService(newFakeEngine(), counter, "hi-IN", true, logging.Discard())
	if _, err := player.Play(context.Background(), "asha", "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := player.Play(context.Background(), "", "घर"); !errors.Is(err, apperrors.ErrNoProfile) {
		t.Fatalf("expected no profile, got %v", err)
	}
	if len(counter.counts) != 0 {
		t.Fatalf("rejected plays must not count, got %v", counter.counts)
	}
}

func TestPlayCountsEvenWithoutSynthesis(t *testing.T) {
	t.Parallel()
	engine := newFakeEngine()
	engine.caps = domain.Capabilities{}
	counter := &fakeCounter{counts: map[string]int{}}
	player := service.NewPlayerService(engine, counter, "hi-IN", false, logging.Discard())
	if _, err := player.Play(context.Background(), "asha", "घर"); err != nil {
		t.Fatalf("play: %v", err)
	}
	player.Wait()
	if counter.counts["asha"] != 1 || len(engine.spoken) != 0 {
		t.Fatalf("expected counted request without synthesis, counts=%v spoken=%v", counter.counts, engine.spoken)
	}
	counter.err = errors.New("disk full")
	if _, err := player.Play(context.Background(), "asha", "घर"); err == nil {
		t.Fatalf("counter failure must surface")
	}
}
