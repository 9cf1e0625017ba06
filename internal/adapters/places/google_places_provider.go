package places

import (
	"attractions-service/internal/domain"
	"attractions-service/internal/platform/obs"
	"attractions-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

const businessStatusClosedPermanently = "CLOSED_PERMANENTLY"

// ErrMalformedResult is returned when a nearby search result cannot be mapped to a place.
var ErrMalformedResult = errors.New("malformed places result")

// GooglePlacesProvider implements PlacesProvider using the Google Places
// nearby search endpoint. Only the first result page is consumed.
//
// The provider is safe for concurrent use.
type GooglePlacesProvider struct {
	client *maps.Client
	logger *zap.Logger
}

func NewGooglePlacesProvider(
	apiKey string,
	logger *zap.Logger,
	opts ...maps.ClientOption,
) (*GooglePlacesProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google places api key is empty")
	}

	// Caller options come last so tests can swap the transport and base URL.
	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
	}
	clientOpts = append(clientOpts, opts...)

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create google maps client: %w", err)
	}

	return &GooglePlacesProvider{client: client, logger: logger}, nil
}

// Query the nearby search endpoint and map results to place records.
func (g *GooglePlacesProvider) SearchNearby(
	ctx context.Context,
	q ports.NearbyQuery,
) (_ []domain.PlaceRecord, err error) {
	defer obs.Time(ctx, g.logger, "places.SearchNearby")(&err)

	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: q.Location.Lat, Lng: q.Location.Lon},
		Radius:   q.RadiusMeters,
		Type:     maps.PlaceType(q.PlaceType),
		Language: q.Language,
	}

	resp, err := g.client.NearbySearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("google nearby search at %s: %w", q.Location, err)
	}

	records := make([]domain.PlaceRecord, 0, len(resp.Results))
	for i, r := range resp.Results {
		// A result without geometry decodes to 0,0; it must not be served as a real place.
		if r.Geometry.Location == (maps.LatLng{}) {
			return nil, fmt.Errorf("%w: result #%d %q has no location", ErrMalformedResult, i+1, r.Name)
		}

		loc := domain.Coordinates{
			Lat: r.Geometry.Location.Lat,
			Lon: r.Geometry.Location.Lng,
		}
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: result #%d %q: %w", ErrMalformedResult, i+1, r.Name, err)
		}

		records = append(records, domain.PlaceRecord{
			Name:              r.Name,
			Vicinity:          r.Vicinity,
			Location:          loc,
			PermanentlyClosed: r.PermanentlyClosed || r.BusinessStatus == businessStatusClosedPermanently,
		})
	}

	return records, nil
}
