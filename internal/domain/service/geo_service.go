package service

import "github.com/paulmach/orb"

// GeoService answers spherical distance questions about points given as [lng, lat].
type GeoService interface {
	// CapBound returns a box enclosing the spherical cap of angular radius radians around center.
	CapBound(center orb.Point, radians float64) orb.Bound

	// InCap reports whether p lies inside the spherical cap.
	InCap(center, p orb.Point, radians float64) bool

	// Distance returns the great circle distance in meters.
	Distance(from, to orb.Point) float64
}
