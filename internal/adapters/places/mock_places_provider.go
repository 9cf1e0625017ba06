package places

import (
	"attractions-service/internal/domain"
	"attractions-service/internal/ports"
	"context"
	"sync"
)

// MockPlacesProvider returns canned records, or Err when it is set.
// It remembers every query it receives.
type MockPlacesProvider struct {
	Records []domain.PlaceRecord
	Err     error

	mu      sync.Mutex
	queries []ports.NearbyQuery
}

func NewMockPlacesProvider(records []domain.PlaceRecord) *MockPlacesProvider {
	return &MockPlacesProvider{Records: records}
}

func (p *MockPlacesProvider) SearchNearby(ctx context.Context, q ports.NearbyQuery) ([]domain.PlaceRecord, error) {
	p.mu.Lock()
	p.queries = append(p.queries, q)
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}

	out := make([]domain.PlaceRecord, len(p.Records))
	copy(out, p.Records)
	return out, nil
}

// Return the queries received so far.
func (p *MockPlacesProvider) Queries() []ports.NearbyQuery {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]ports.NearbyQuery, len(p.queries))
	copy(out, p.queries)
	return out
}
