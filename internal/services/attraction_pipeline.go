package services

import (
	"attractions-service/internal/domain"
	"attractions-service/internal/geo"
	"cmp"
	"math"
	"slices"
)

// Turn raw place records into attractions as seen from origin.
//
// Permanently closed places are dropped. Distances are rounded to two
// decimals and bearings truncated to whole degrees. The result is ordered by
// ascending distance; equal distances keep their input order.
func BuildAttractions(origin domain.Coordinates, records []domain.PlaceRecord) []domain.Attraction {
	attractions := make([]domain.Attraction, 0, len(records))

	for _, r := range records {
		if r.PermanentlyClosed {
			continue
		}

		distance := geo.DistanceKm(origin, r.Location)
		bearing := geo.InitialBearingDegrees(origin, r.Location)

		attractions = append(attractions, domain.Attraction{
			Name:           r.Name,
			Address:        r.Vicinity,
			DistanceKm:     roundTo(distance, 2),
			BearingDegrees: int(bearing),
		})
	}

	slices.SortStableFunc(attractions, func(a, b domain.Attraction) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return attractions
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
