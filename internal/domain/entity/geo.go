package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PointType is the only GeoJSON geometry tours use.
const PointType = "Point"

// Location is a GeoJSON point with a human description. Coordinates are [lng, lat].
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates" validate:"omitempty,len=2"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Day         int       `json:"day,omitempty"`
}

// Point returns the location as an orb point. A malformed location yields false.
func (l Location) Point() (orb.Point, bool) {
	if len(l.Coordinates) != 2 {
		return orb.Point{}, false
	}

	return orb.Point{l.Coordinates[0], l.Coordinates[1]}, true
}

// DistanceUnit selects miles or kilometres for geo lookups.
type DistanceUnit string

const (
	UnitMiles      DistanceUnit = "mi"
	UnitKilometers DistanceUnit = "km"
)

// ParseDistanceUnit maps anything other than "mi" to kilometres.
func ParseDistanceUnit(s string) DistanceUnit {
	if s == string(UnitMiles) {
		return UnitMiles
	}

	return UnitKilometers
}

// TourDistance is one entry of the distances listing.
type TourDistance struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Distance float64   `json:"distance"`
}

// Earth radii for converting a search distance into radians.
const (
	EarthRadiusMiles      = 3963.2
	EarthRadiusKilometers = 6378.1
)

// Radians converts distance in unit into an angle on the sphere.
func (u DistanceUnit) Radians(distance float64) float64 {
	if u == UnitMiles {
		return distance / EarthRadiusMiles
	}

	return distance / EarthRadiusKilometers
}

// FromMeters converts meters into unit.
func (u DistanceUnit) FromMeters(meters float64) float64 {
	if u == UnitMiles {
		return meters * 0.000621371
	}

	return meters * 0.001
}
