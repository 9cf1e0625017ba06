package repositories

import (
	"attractions-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const maxListLimit = 500

// SQLSearchLog is a Postgres-backed implementation of the SearchLog port.
type SQLSearchLog struct {
	DB *sql.DB
}

func NewSQLSearchLog(db *sql.DB) *SQLSearchLog {
	return &SQLSearchLog{DB: db}
}

// Store one served search. A zero ID or timestamp is filled in.
func (s *SQLSearchLog) Record(ctx context.Context, entry domain.SearchEntry) error {
	if s.DB == nil {
		return errors.New("search log: db is nil")
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	q := `
	INSERT INTO search_log (id, lat, lon, radius_meters, place_type, language, result_count, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := s.DB.ExecContext(
		ctx, q,
		entry.ID, entry.Origin.Lat, entry.Origin.Lon,
		int64(entry.RadiusMeters), entry.PlaceType, entry.Language,
		entry.ResultCount, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert search log id=%s: %w", entry.ID, err)
	}

	return nil
}

// Return the most recent searches, newest first.
func (s *SQLSearchLog) ListRecent(ctx context.Context, limit int) ([]domain.SearchEntry, error) {
	if s.DB == nil {
		return nil, errors.New("search log: db is nil")
	}

	if limit <= 0 {
		return []domain.SearchEntry{}, nil
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	q := `
	SELECT id, lat, lon, radius_meters, place_type, language, result_count, created_at
	FROM search_log
	ORDER BY created_at DESC
	LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list search log: query search_log table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SearchEntry, 0, limit)
	for rows.Next() {
		var e domain.SearchEntry
		var radius int64
		if err := rows.Scan(
			&e.ID, &e.Origin.Lat, &e.Origin.Lon,
			&radius, &e.PlaceType, &e.Language,
			&e.ResultCount, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list search log: scan rows: %w", err)
		}
		e.RadiusMeters = uint(radius)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list search log: row iteration: %w", err)
	}

	return out, nil
}
