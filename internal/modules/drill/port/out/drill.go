package out

import (
	"context"

	"hindidrill/internal/modules/drill/domain"
)

type WordSource interface {
	FetchWords(ctx context.Context, lessonID string) ([]domain.Word, error)
}

// Verifier runs one verification round. It always returns a verdict;
// failures are reported as domain.VerdictError.
type Verifier interface {
	Available() bool
	Verify(ctx context.Context, expected string) domain.Verdict
}

type Pronouncer interface {
	Play(ctx context.Context, profile, text string) error
}

type ProfilePort interface {
	Open(ctx context.Context, name string) (domain.Learner, error)
	RecordVerified(ctx context.Context, profile, lessonID, word string) error
}

type LessonCatalog interface {
	Confirm(ctx context.Context, lessonID string) error
}
