// Package geo implements spherical lookups with orb.
package geo

import (
	"math"

	"natours/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type geoService struct{}

// NewGeoService creates a GeoService on the orb earth model.
func NewGeoService() service.GeoService {
	return geoService{}
}

func (geoService) CapBound(center orb.Point, radians float64) orb.Bound {
	meters := radians * orb.EarthRadius
	bound := geo.NewBoundAroundPoint(center, meters)

	// Near a pole every longitude is in range.
	if bound.Top() >= 90 || bound.Bottom() <= -90 || radians >= math.Pi/2 {
		return orb.Bound{
			Min: orb.Point{-180, math.Max(bound.Bottom(), -90)},
			Max: orb.Point{180, math.Min(bound.Top(), 90)},
		}
	}

	return bound
}

func (geoService) InCap(center, p orb.Point, radians float64) bool {
	return geo.DistanceHaversine(center, p) <= radians*orb.EarthRadius
}

func (geoService) Distance(from, to orb.Point) float64 {
	return geo.DistanceHaversine(from, to)
}
