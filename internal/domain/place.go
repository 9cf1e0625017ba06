package domain

// A raw nearby-place datum returned by the places lookup.
// It is owned by the adapter that produced it and is never returned to API callers.
type PlaceRecord struct {
	Name              string
	Vicinity          string
	Location          Coordinates
	PermanentlyClosed bool
}
