package domain

// Attraction is a nearby place as seen from the query point.
// DistanceKm is rounded to two decimals and BearingDegrees is a compass
// heading in [0, 360) where 0 is north and angles grow clockwise.
type Attraction struct {
	Name           string
	Address        string
	DistanceKm     float64
	BearingDegrees int
}
