package ports

import (
	"attractions-service/internal/domain"
	"context"
)

// Port: a boundary for persisting served searches.
type SearchLog interface {
	// Store one served search.
	Record(ctx context.Context, entry domain.SearchEntry) error
	// Return the most recent searches, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.SearchEntry, error)
}
