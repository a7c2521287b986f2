// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/emerge/analysis"
	"github.com/danielhkuo/emerge/models"
	"github.com/google/uuid"
)

// DateLayout is the storage format of mood_entry.recorded_date.
const DateLayout = "2006-01-02"

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

// MoodStore persists users and their mood entries.
type MoodStore interface {
	CreateUser(ctx context.Context, userID string) error
	UserExists(ctx context.Context, userID string) (bool, error)
	InsertEntry(ctx context.Context, entry models.MoodEntry) (string, error)
	DailySeries(ctx context.Context, userID string, from, to time.Time) (analysis.MoodSeries, error)
	LatestEntry(ctx context.Context, userID string) (models.MoodEntry, error)
}

// SQLStore implements MoodStore on PostgreSQL or SQLite.
type SQLStore struct {
	db     *sql.DB
	dbType string
}

var _ MoodStore = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB, dbType string) *SQLStore {
	return &SQLStore{db: db, dbType: dbType}
}

func (s *SQLStore) q(query string) string {
	return rebind(s.dbType, query)
}

// CreateUser inserts a new user row.
func (s *SQLStore) CreateUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO app_user (id, created_at) VALUES ($1, $2)
	`), userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UserExists reports whether the user has been registered.
func (s *SQLStore) UserExists(ctx context.Context, userID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.q(`SELECT COUNT(*) FROM app_user WHERE id = $1`), userID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to query user: %w", err)
	}
	return n > 0, nil
}

// InsertEntry stores a mood entry and returns its ID. A blank ID is
// replaced by a new UUID; a zero CreatedAt by the current time.
func (s *SQLStore) InsertEntry(ctx context.Context, entry models.MoodEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO mood_entry (
			id, user_id, recorded_date, mood_level, score,
			sentiment_polarity, sentiment_subjectivity,
			mood_note_enc, reflection_enc, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`),
		entry.ID, entry.UserID, entry.RecordedDate.UTC().Format(DateLayout),
		entry.MoodLevel, entry.Score,
		entry.SentimentPolarity, entry.SentimentSubjectivity,
		entry.MoodNoteEnc, entry.ReflectionEnc, entry.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert mood entry: %w", err)
	}
	return entry.ID, nil
}

// DailySeries returns one observation per recorded day in [from, to],
// ascending by date. Days with several entries use the mean score.
func (s *SQLStore) DailySeries(ctx context.Context, userID string, from, to time.Time) (analysis.MoodSeries, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT recorded_date, AVG(score)
		FROM mood_entry
		WHERE user_id = $1 AND recorded_date >= $2 AND recorded_date <= $3
		GROUP BY recorded_date
		ORDER BY recorded_date ASC
	`), userID, from.UTC().Format(DateLayout), to.UTC().Format(DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query mood series: %w", err)
	}
	defer rows.Close()

	series := analysis.MoodSeries{}
	for rows.Next() {
		var day string
		var score float64
		if err := rows.Scan(&day, &score); err != nil {
			return nil, fmt.Errorf("failed to scan mood series: %w", err)
		}
		date, err := time.Parse(DateLayout, day)
		if err != nil {
			return nil, fmt.Errorf("bad recorded_date %q: %w", day, err)
		}
		series = append(series, analysis.MoodObservation{
			Date:  date,
			Score: clampScore(score),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mood series: %w", err)
	}

	return series, nil
}

// LatestEntry returns the most recently recorded entry for the user,
// or ErrNotFound.
func (s *SQLStore) LatestEntry(ctx context.Context, userID string) (models.MoodEntry, error) {
	var entry models.MoodEntry
	var day string
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT id, user_id, recorded_date, mood_level, score,
		       sentiment_polarity, sentiment_subjectivity,
		       mood_note_enc, reflection_enc
		FROM mood_entry
		WHERE user_id = $1
		ORDER BY recorded_date DESC, created_at DESC
		LIMIT 1
	`), userID).Scan(
		&entry.ID, &entry.UserID, &day, &entry.MoodLevel, &entry.Score,
		&entry.SentimentPolarity, &entry.SentimentSubjectivity,
		&entry.MoodNoteEnc, &entry.ReflectionEnc,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MoodEntry{}, ErrNotFound
	}
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to query latest entry: %w", err)
	}

	entry.RecordedDate, err = time.Parse(DateLayout, day)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("bad recorded_date %q: %w", day, err)
	}
	return entry, nil
}

// AVG over values in range can drift past the bounds by float error.
func clampScore(v float64) float64 {
	switch {
	case v < analysis.MinScore:
		return analysis.MinScore
	case v > analysis.MaxScore:
		return analysis.MaxScore
	}
	return v
}
