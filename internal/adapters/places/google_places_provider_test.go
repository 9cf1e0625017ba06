package places

import (
	"attractions-service/internal/domain"
	"attractions-service/internal/ports"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

const nearbyBody = `{
  "status": "OK",
  "results": [
    {
      "name": "Zamek Królewski",
      "vicinity": "plac Zamkowy 4, Warszawa",
      "geometry": {"location": {"lat": 52.2479, "lng": 21.0152}},
      "business_status": "OPERATIONAL"
    },
    {
      "name": "Stare Kino",
      "vicinity": "Marszałkowska 1, Warszawa",
      "geometry": {"location": {"lat": 52.2290, "lng": 21.0110}},
      "permanently_closed": true
    },
    {
      "name": "Muzeum Zamknięte",
      "vicinity": "Nowy Świat 2, Warszawa",
      "geometry": {"location": {"lat": 52.2330, "lng": 21.0190}},
      "business_status": "CLOSED_PERMANENTLY"
    }
  ]
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GooglePlacesProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	provider, err := NewGooglePlacesProvider("test-key", zap.NewNop(), maps.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return provider
}

func TestNewGooglePlacesProviderRequiresKey(t *testing.T) {
	_, err := NewGooglePlacesProvider("", zap.NewNop())
	assert.Error(t, err)
}

func TestSearchNearbyMapsResults(t *testing.T) {
	var got http.Header
	var query map[string]string

	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header
		q := r.URL.Query()
		query = map[string]string{
			"path":     r.URL.Path,
			"location": q.Get("location"),
			"radius":   q.Get("radius"),
			"type":     q.Get("type"),
			"language": q.Get("language"),
			"key":      q.Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(nearbyBody))
	})

	records, err := provider.SearchNearby(context.Background(), ports.NearbyQuery{
		Location:     domain.Coordinates{Lat: 52.2297, Lon: 21.0122},
		RadiusMeters: 2000,
		PlaceType:    "tourist_attraction",
		Language:     "pl",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "/maps/api/place/nearbysearch/json", query["path"])
	assert.Equal(t, "2000", query["radius"])
	assert.Equal(t, "tourist_attraction", query["type"])
	assert.Equal(t, "pl", query["language"])
	assert.Equal(t, "test-key", query["key"])
	assert.Contains(t, query["location"], "52.2297")

	require.Len(t, records, 3)
	assert.Equal(t, domain.PlaceRecord{
		Name:     "Zamek Królewski",
		Vicinity: "plac Zamkowy 4, Warszawa",
		Location: domain.Coordinates{Lat: 52.2479, Lon: 21.0152},
	}, records[0])
	assert.True(t, records[1].PermanentlyClosed)
	assert.True(t, records[2].PermanentlyClosed)
}

func TestSearchNearbyZeroResults(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	records, err := provider.SearchNearby(context.Background(), ports.NearbyQuery{
		Location:     domain.Coordinates{Lat: 0, Lon: 0},
		RadiusMeters: 2000,
	})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSearchNearbyPropagatesAPIError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	})

	_, err := provider.SearchNearby(context.Background(), ports.NearbyQuery{
		Location:     domain.Coordinates{Lat: 52.2297, Lon: 21.0122},
		RadiusMeters: 2000,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestSearchNearbyRejectsMalformedResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing geometry",
			body: `{"status": "OK", "results": [
				{"name": "Zamek Królewski", "vicinity": "plac Zamkowy 4", "geometry": {"location": {"lat": 52.2479, "lng": 21.0152}}},
				{"name": "Bez Lokalizacji", "vicinity": "nieznany"}
			]}`,
		},
		{
			name: "latitude out of range",
			body: `{"status": "OK", "results": [
				{"name": "Poza Mapą", "vicinity": "nigdzie", "geometry": {"location": {"lat": 123.4, "lng": 21.0}}}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			records, err := provider.SearchNearby(context.Background(), ports.NearbyQuery{
				Location:     domain.Coordinates{Lat: 52.2297, Lon: 21.0122},
				RadiusMeters: 2000,
			})

			assert.Nil(t, records)
			assert.ErrorIs(t, err, ErrMalformedResult)
		})
	}
}
