package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hindidrill/internal/modules/profile/domain"
	profileout "hindidrill/internal/modules/profile/port/out"
	apperrors "hindidrill/internal/platform/errors"
	"hindidrill/internal/platform/tx"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

type SQLiteProfileStore struct {
	db *sql.DB
	tx tx.Manager
}

func NewSQLiteProfileStore(dbPath string) (*SQLiteProfileStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteProfileStore{db: db, tx: tx.NewSQLManager(db)}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

var _ profileout.ProfileStore = (*SQLiteProfileStore)(nil)

func (s *SQLiteProfileStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS profiles (
  name TEXT PRIMARY KEY,
  play_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS progress (
  name TEXT NOT NULL REFERENCES profiles(name),
  lesson_id TEXT NOT NULL,
  word TEXT NOT NULL,
  verified_at TEXT NOT NULL,
  PRIMARY KEY (name, lesson_id, word)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create profile tables: %w", err)
	}
	return nil
}

func (s *SQLiteProfileStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteProfileStore) Load(ctx context.Context, name string) (domain.Profile, error) {
	exec := tx.From(ctx, s.db)
	var (
		profile   = domain.Profile{Name: name, Progress: map[string]domain.LessonProgress{}}
		createdAt string
		updatedAt string
	)
	row := exec.QueryRowContext(ctx, `SELECT play_count, created_at, updated_at FROM profiles WHERE name = ?`, name)
	if err := row.Scan(&profile.PronunciationPlayCount, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, fmt.Errorf("%w: profile %q", apperrors.ErrNotFound, name)
		}
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	profile.CreatedAt = parseTime(createdAt)
	profile.UpdatedAt = parseTime(updatedAt)

	rows, err := exec.QueryContext(ctx, `SELECT lesson_id, word, verified_at FROM progress WHERE name = ? ORDER BY lesson_id, verified_at, rowid`, name)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load progress: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lessonID, word, verifiedAt string
		if err := rows.Scan(&lessonID, &word, &verifiedAt); err != nil {
			return domain.Profile{}, fmt.Errorf("scan progress: %w", err)
		}
		progress := profile.Progress[lessonID]
		progress.Verified = append(progress.Verified, word)
		if at := parseTime(verifiedAt); at.After(progress.UpdatedAt) {
			progress.UpdatedAt = at
		}
		profile.Progress[lessonID] = progress
	}
	if err := rows.Err(); err != nil {
		return domain.Profile{}, fmt.Errorf("iterate progress: %w", err)
	}
	return profile, nil
}

func (s *SQLiteProfileStore) Ensure(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	var out domain.Profile
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		const stmt = `
INSERT INTO profiles (name, play_count, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(name) DO NOTHING;
`
		if _, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
			profile.Name,
			profile.PronunciationPlayCount,
			profile.CreatedAt.Format(timeLayout),
			profile.UpdatedAt.Format(timeLayout),
		); err != nil {
			return fmt.Errorf("insert profile: %w", err)
		}
		loaded, err := s.Load(ctx, profile.Name)
		if err != nil {
			return err
		}
		out = loaded
		return nil
	})
	return out, err
}

func (s *SQLiteProfileStore) IncrementPlays(ctx context.Context, name string, at time.Time) (int, error) {
	var count int
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		exec := tx.From(ctx, s.db)
		const stmt = `
INSERT INTO profiles (name, play_count, created_at, updated_at)
VALUES (?, 1, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  play_count=profiles.play_count + 1,
  updated_at=excluded.updated_at;
`
		stamp := at.Format(timeLayout)
		if _, err := exec.ExecContext(ctx, stmt, name, stamp, stamp); err != nil {
			return fmt.Errorf("increment plays: %w", err)
		}
		if err := exec.QueryRowContext(ctx, `SELECT play_count FROM profiles WHERE name = ?`, name).Scan(&count); err != nil {
			return fmt.Errorf("read play count: %w", err)
		}
		return nil
	})
	return count, err
}

func (s *SQLiteProfileStore) RecordVerified(ctx context.Context, name, lessonID, word string, at time.Time) error {
	return s.tx.Within(ctx, func(ctx context.Context) error {
		exec := tx.From(ctx, s.db)
		stamp := at.Format(timeLayout)
		const touch = `
INSERT INTO profiles (name, play_count, created_at, updated_at)
VALUES (?, 0, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  updated_at=excluded.updated_at;
`
		if _, err := exec.ExecContext(ctx, touch, name, stamp, stamp); err != nil {
			return fmt.Errorf("touch profile: %w", err)
		}
		const insert = `
INSERT INTO progress (name, lesson_id, word, verified_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(name, lesson_id, word) DO NOTHING;
`
		if _, err := exec.ExecContext(ctx, insert, name, lessonID, word, stamp); err != nil {
			return fmt.Errorf("record verified word: %w", err)
		}
		return nil
	})
}

func parseTime(raw string) time.Time {
	parsed, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
