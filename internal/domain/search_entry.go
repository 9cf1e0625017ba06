package domain

import (
	"time"

	"github.com/google/uuid"
)

// One served nearby search, kept for operational history.
type SearchEntry struct {
	ID           uuid.UUID
	Origin       Coordinates
	RadiusMeters uint
	PlaceType    string
	Language     string
	ResultCount  int
	CreatedAt    time.Time
}
