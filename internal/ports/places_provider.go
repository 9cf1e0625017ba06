package ports

import (
	"attractions-service/internal/domain"
	"context"
)

// Parameters of a single nearby-places lookup.
type NearbyQuery struct {
	Location     domain.Coordinates
	RadiusMeters uint
	PlaceType    string
	Language     string
}

// Contract for retrieving places around a location.
type PlacesProvider interface {
	// Return the places found within the query radius, in provider order.
	SearchNearby(ctx context.Context, q NearbyQuery) ([]domain.PlaceRecord, error)
}
