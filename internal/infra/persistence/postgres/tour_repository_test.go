package postgres

import (
	"context"
	"testing"
	"time"

	"natours/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourRepository_Stats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTourRepository(db)

	mock.ExpectQuery(`SELECT UPPER\("difficulty"\) AS difficulty`).
		WithArgs(false, 4.5).
		WillReturnRows(sqlmock.NewRows([]string{"difficulty", "num_tours", "num_ratings", "avg_rating", "avg_price", "min_price", "max_price"}).
			AddRow("EASY", 4, 25, 4.6666, 1272.25, 397, 1997).
			AddRow("MEDIUM", 3, 20, 4.8, 1663.6666, 497, 2997))

	stats, err := repo.Stats(context.Background(), 4.5)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "EASY", stats[0].Difficulty)
	assert.Equal(t, 4, stats[0].NumTours)
	assert.InDelta(t, 4.67, stats[0].AvgRating, 0.0001)
	assert.InDelta(t, 1663.67, stats[1].AvgPrice, 0.0001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTourRepository_UpdateRatings_RoundsAverage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTourRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "tours" SET "ratings_average"=\$1,"ratings_quantity"=\$2 WHERE "id" = \$3`).
		WithArgs(4.7, 3, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRatings(context.Background(), id, entity.RatingSummary{Quantity: 3, Average: 4.6666})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTourRepository_FindStartingWithin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTourRepository(db)
	bound := orb.Bound{Min: orb.Point{-120, 30}, Max: orb.Point{-110, 40}}

	mock.ExpectQuery(`"start_lng" BETWEEN \$2 AND \$3 AND "start_lat" BETWEEN \$4 AND \$5`).
		WithArgs(false, -120.0, -110.0, 30.0, 40.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	tours, err := repo.FindStartingWithin(context.Background(), bound)

	require.NoError(t, err)
	assert.Empty(t, tours)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncGuides_ReplacesJoinRows(t *testing.T) {
	db, mock := newMockDB(t)
	tourID := uuid.New()
	guide := uuid.New()

	mock.ExpectExec(`DELETE FROM "tour_guides" WHERE "tour_id" = \$1`).
		WithArgs(tourID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO "tour_guides"`).
		WithArgs(tourID, guide).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tour := &entity.Tour{Guides: []entity.Ref[entity.User]{
		entity.RefTo[entity.User](guide),
		entity.RefTo[entity.User](guide),
		{},
	}}

	require.NoError(t, syncGuides(db, tourID, tour))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTourMappers(t *testing.T) {
	start := time.Date(2025, 6, 19, 9, 0, 0, 0, time.UTC)
	guideID := uuid.New()
	tour := &entity.Tour{
		ID:         uuid.New(),
		Name:       "The Forest Hiker",
		Duration:   5,
		Difficulty: entity.DifficultyEasy,
		Price:      397,
		Images:     []string{"tour-1-1.jpg"},
		StartDates: []time.Time{start},
		StartLocation: &entity.Location{
			Type:        entity.PointType,
			Coordinates: []float64{-115.570154, 51.178456},
			Address:     "224 Banff Ave, Banff, AB, Canada",
		},
		Locations: []entity.Location{{Type: entity.PointType, Coordinates: []float64{-116.2, 51.4}, Day: 1}},
		Guides:    []entity.Ref[entity.User]{entity.RefTo[entity.User](guideID)},
	}

	m := fromTourDomain(tour)
	require.NotNil(t, m.StartLng)
	require.NotNil(t, m.StartLat)
	assert.InDelta(t, -115.570154, *m.StartLng, 1e-9)
	assert.InDelta(t, 51.178456, *m.StartLat, 1e-9)
	assert.Empty(t, m.Guides)

	back := toTourDomain(m)
	assert.Equal(t, tour.Name, back.Name)
	assert.Equal(t, tour.StartDates, back.StartDates)
	assert.Equal(t, tour.Images, back.Images)
	assert.Equal(t, tour.StartLocation, back.StartLocation)
	assert.Equal(t, tour.Locations, back.Locations)
	assert.Empty(t, back.Guides)
	assert.Nil(t, back.Reviews)
}

func TestTourResource_BeforeSaveDerivesSlug(t *testing.T) {
	tour := &entity.Tour{Name: "The Sea Explorer", StartLocation: &entity.Location{Coordinates: []float64{1, 2}}}

	tourResource.beforeSave(tour)

	assert.Equal(t, "the-sea-explorer", tour.Slug)
	assert.Equal(t, entity.PointType, tour.StartLocation.Type)
}
