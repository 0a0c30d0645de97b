package out

import (
	"context"
	"time"

	"hindidrill/internal/modules/profile/domain"
)

type ProfileStore interface {
	// Load returns apperrors.ErrNotFound when no profile has the name.
	Load(ctx context.Context, name string) (domain.Profile, error)
	Ensure(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	IncrementPlays(ctx context.Context, name string, at time.Time) (int, error)
	RecordVerified(ctx context.Context, name, lessonID, word string, at time.Time) error
}
