package services

import (
	"attractions-service/internal/domain"
	"attractions-service/internal/platform/obs"
	"attractions-service/internal/ports"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Process-wide lookup settings, resolved once at startup.
type FinderConfig struct {
	APIKey       string
	RadiusMeters uint
	PlaceType    string
	Language     string
}

// Per-request overrides; zero values fall back to FinderConfig.
type SearchOptions struct {
	RadiusMeters uint
	Language     string
}

type AttractionFinder struct {
	provider ports.PlacesProvider
	history  ports.SearchLog
	cfg      FinderConfig
	logger   *zap.Logger
	now      func() time.Time
}

// history may be nil when search history is disabled.
func NewAttractionFinder(
	provider ports.PlacesProvider,
	history ports.SearchLog,
	cfg FinderConfig,
	logger *zap.Logger,
) *AttractionFinder {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AttractionFinder{
		provider: provider,
		history:  history,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Find looks up places around origin and returns the open ones sorted by distance.
//
// It fails with ErrConfiguration before any lookup when no API key is
// configured, and with ErrUpstream when the places lookup fails.
func (f *AttractionFinder) Find(
	ctx context.Context,
	origin domain.Coordinates,
	opts SearchOptions,
) (_ []domain.Attraction, err error) {
	defer obs.Time(ctx, f.logger, "attractions.Find")(&err)

	if strings.TrimSpace(f.cfg.APIKey) == "" {
		return nil, fmt.Errorf("find attractions: %w: Google Maps API key is not set", domain.ErrConfiguration)
	}
	if f.provider == nil {
		return nil, fmt.Errorf("find attractions: %w: places provider is not configured", domain.ErrConfiguration)
	}

	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("find attractions: %w", err)
	}

	q := f.query(origin, opts)

	records, err := f.provider.SearchNearby(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find attractions: %w: %w", domain.ErrUpstream, err)
	}

	attractions := BuildAttractions(origin, records)

	f.recordSearch(ctx, q, len(attractions))

	return attractions, nil
}

func (f *AttractionFinder) query(origin domain.Coordinates, opts SearchOptions) ports.NearbyQuery {
	q := ports.NearbyQuery{
		Location:     origin,
		RadiusMeters: f.cfg.RadiusMeters,
		PlaceType:    f.cfg.PlaceType,
		Language:     f.cfg.Language,
	}

	if opts.RadiusMeters > 0 {
		q.RadiusMeters = opts.RadiusMeters
	}
	if lang := strings.TrimSpace(opts.Language); lang != "" {
		q.Language = lang
	}

	return q
}

// History is best effort; a failed write never fails the search.
func (f *AttractionFinder) recordSearch(ctx context.Context, q ports.NearbyQuery, count int) {
	if f.history == nil {
		return
	}

	entry := domain.SearchEntry{
		ID:           uuid.New(),
		Origin:       q.Location,
		RadiusMeters: q.RadiusMeters,
		PlaceType:    q.PlaceType,
		Language:     q.Language,
		ResultCount:  count,
		CreatedAt:    f.now().UTC(),
	}

	if err := f.history.Record(ctx, entry); err != nil {
		f.logger.Warn("search history write failed",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.Error(err),
		)
	}
}
