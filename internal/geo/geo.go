// Package geo implements great-circle calculations on a spherical Earth.
package geo

import (
	"attractions-service/internal/domain"
	"math"

	"github.com/umahmood/haversine"
)

// DistanceKm returns the haversine great-circle distance between a and b
// in kilometers, using the mean Earth radius.
func DistanceKm(a, b domain.Coordinates) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lon},
		haversine.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	return km
}

// InitialBearingDegrees returns the compass heading (0 = north, clockwise)
// at the start of the great-circle path from a to b, in [0, 360).
//
// Identical points have no defined heading; 0 is returned for them.
func InitialBearingDegrees(a, b domain.Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLon := toRadians(b.Lon - a.Lon)

	x := math.Sin(deltaLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	bearing := toDegrees(math.Atan2(x, y))
	return math.Mod(bearing+360, 360)
}

func toRadians(d float64) float64 { return d * math.Pi / 180 }

func toDegrees(r float64) float64 { return r * 180 / math.Pi }
