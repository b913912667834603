package impl

import (
	"context"
	"testing"
	"time"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	mockRepo "natours/internal/mocks/repository"
	mockService "natours/internal/mocks/service"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tourServiceFixtures struct {
	service  usecase.TourUsecase
	tourRepo *mockRepo.MockTourRepository
	geo      *mockService.MockGeoService
}

func createTestTourService(t *testing.T) tourServiceFixtures {
	fx := tourServiceFixtures{
		tourRepo: mockRepo.NewMockTourRepository(t),
		geo:      mockService.NewMockGeoService(t),
	}
	fx.service = NewTourService(TourServiceParams{
		TourRepo:   fx.tourRepo,
		GeoService: fx.geo,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func tourAt(name string, lng, lat float64) *entity.Tour {
	return &entity.Tour{
		ID:            uuid.New(),
		Name:          name,
		StartLocation: &entity.Location{Type: entity.PointType, Coordinates: []float64{lng, lat}},
	}
}

func TestTourService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestTourService(t)
		tour := &entity.Tour{ID: uuid.New(), Slug: "the-forest-hiker"}
		fx.tourRepo.EXPECT().FindBySlug(ctx, "the-forest-hiker").Return(tour, nil)

		got, err := fx.service.GetBySlug(ctx, "the-forest-hiker")

		require.NoError(t, err)
		assert.Same(t, tour, got)
	})

	t.Run("unknown slug", func(t *testing.T) {
		fx := createTestTourService(t)
		fx.tourRepo.EXPECT().FindBySlug(ctx, "nowhere").Return(nil, repository.ErrNotFound)

		_, err := fx.service.GetBySlug(ctx, "nowhere")

		assert.ErrorIs(t, err, domainerrors.ErrTourNameNotFound)
	})
}

func TestTourService_Stats(t *testing.T) {
	fx := createTestTourService(t)
	stats := []*entity.TourStats{{Difficulty: "EASY", NumTours: 4}}
	fx.tourRepo.EXPECT().Stats(mock.Anything, 4.5).Return(stats, nil)

	got, err := fx.service.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestTourService_MonthlyPlan(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	from := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	date := func(month time.Month, day int) time.Time {
		return time.Date(2021, month, day, 9, 0, 0, 0, time.UTC)
	}

	tours := []*entity.Tour{
		{Name: "The Forest Hiker", StartDates: []time.Time{date(time.April, 25), date(time.July, 20), time.Date(2022, 3, 5, 0, 0, 0, 0, time.UTC)}},
		{Name: "The Sea Explorer", StartDates: []time.Time{date(time.June, 19), date(time.July, 20)}},
		{Name: "The Snow Adventurer", StartDates: []time.Time{date(time.January, 5), date(time.July, 1)}},
	}
	fx.tourRepo.EXPECT().FindStartingBetween(ctx, from, from.AddDate(1, 0, 0)).Return(tours, nil)

	plans, err := fx.service.MonthlyPlan(ctx, 2021)

	require.NoError(t, err)
	require.Len(t, plans, 4)

	assert.Equal(t, &entity.MonthlyPlan{
		Month:         7,
		NumTourStarts: 3,
		Tours:         []string{"The Forest Hiker", "The Sea Explorer", "The Snow Adventurer"},
	}, plans[0])

	months := make([]int, 0, len(plans))
	for _, plan := range plans[1:] {
		assert.Equal(t, 1, plan.NumTourStarts)
		months = append(months, plan.Month)
	}
	assert.Equal(t, []int{1, 4, 6}, months)
}

func TestTourService_MonthlyPlan_EmptyYear(t *testing.T) {
	fx := createTestTourService(t)
	fx.tourRepo.EXPECT().FindStartingBetween(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	plans, err := fx.service.MonthlyPlan(context.Background(), 1999)

	require.NoError(t, err)
	assert.NotNil(t, plans)
	assert.Empty(t, plans)
}

func TestTourService_Within(t *testing.T) {
	fx := createTestTourService(t)
	ctx := context.Background()
	center := orb.Point{-118.11, 34.11}
	radians := 400 / entity.EarthRadiusMiles
	bound := orb.Bound{Min: orb.Point{-125, 28}, Max: orb.Point{-111, 40}}

	inside := tourAt("The Sea Explorer", -118.5, 34.0)
	corner := tourAt("The Park Camper", -124.9, 39.9)
	unplaced := &entity.Tour{ID: uuid.New(), Name: "The City Wanderer"}

	fx.geo.EXPECT().CapBound(center, radians).Return(bound)
	fx.tourRepo.EXPECT().FindStartingWithin(ctx, bound).Return([]*entity.Tour{inside, corner, unplaced}, nil)
	fx.geo.EXPECT().InCap(center, orb.Point{-118.5, 34.0}, radians).Return(true)
	fx.geo.EXPECT().InCap(center, orb.Point{-124.9, 39.9}, radians).Return(false)

	tours, err := fx.service.Within(ctx, center, 400, entity.UnitMiles)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Tour{inside}, tours)
}

func TestTourService_Distances(t *testing.T) {
	ctx := context.Background()
	center := orb.Point{-118.11, 34.11}
	far := tourAt("The Northern Lights", -147.7, 64.8)
	near := tourAt("The Sea Explorer", -118.5, 34.0)

	tests := []struct {
		name string
		unit entity.DistanceUnit
		want []float64
	}{
		{name: "kilometres", unit: entity.UnitKilometers, want: []float64{37.5, 4200}},
		{name: "miles", unit: entity.UnitMiles, want: []float64{37500 * 0.000621371, 4200000 * 0.000621371}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTourService(t)
			fx.tourRepo.EXPECT().FindWithStartLocation(ctx).Return([]*entity.Tour{far, near}, nil)
			fx.geo.EXPECT().Distance(center, orb.Point{-147.7, 64.8}).Return(4200000.0)
			fx.geo.EXPECT().Distance(center, orb.Point{-118.5, 34.0}).Return(37500.0)

			distances, err := fx.service.Distances(ctx, center, tt.unit)

			require.NoError(t, err)
			require.Len(t, distances, 2)
			assert.Equal(t, near.ID, distances[0].ID)
			assert.Equal(t, "The Sea Explorer", distances[0].Name)
			assert.InDelta(t, tt.want[0], distances[0].Distance, 1e-9)
			assert.Equal(t, far.ID, distances[1].ID)
			assert.InDelta(t, tt.want[1], distances[1].Distance, 1e-6)
		})
	}
}
