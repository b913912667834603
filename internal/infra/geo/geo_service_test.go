package geo

import (
	"testing"

	"natours/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var (
	losAngeles = orb.Point{-118.113491, 34.111745}
	sanDiego   = orb.Point{-117.161087, 32.715736}
	banff      = orb.Point{-115.570154, 51.178456}
)

func TestGeoService_InCap(t *testing.T) {
	svc := NewGeoService()
	radius := entity.UnitMiles.Radians(200)

	assert.True(t, svc.InCap(losAngeles, sanDiego, radius))
	assert.False(t, svc.InCap(losAngeles, banff, radius))
}

func TestGeoService_CapBoundContainsCap(t *testing.T) {
	svc := NewGeoService()
	radius := entity.UnitKilometers.Radians(250)

	bound := svc.CapBound(losAngeles, radius)

	assert.True(t, bound.Contains(losAngeles))
	assert.True(t, bound.Contains(sanDiego))
	assert.False(t, bound.Contains(banff))
}

func TestGeoService_CapBoundNearPole(t *testing.T) {
	bound := NewGeoService().CapBound(orb.Point{10, 89.9}, entity.UnitKilometers.Radians(100))

	assert.Equal(t, -180.0, bound.Left())
	assert.Equal(t, 180.0, bound.Right())
	assert.LessOrEqual(t, bound.Top(), 90.0)
}

func TestGeoService_Distance(t *testing.T) {
	meters := NewGeoService().Distance(losAngeles, sanDiego)

	// roughly 178 km
	assert.InDelta(t, 178, entity.UnitKilometers.FromMeters(meters), 5)
	assert.InDelta(t, 111, entity.UnitMiles.FromMeters(meters), 4)
	assert.Zero(t, NewGeoService().Distance(banff, banff))
}
