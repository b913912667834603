package postgres

import (
	"context"
	"time"

	"natours/internal/domain/entity"
	"natours/internal/domain/repository"
	"natours/internal/infra/persistence/model"
	"natours/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var tourFields = fieldMap{
	"id":              {name: "id", filterable: true},
	"name":            {name: "name", filterable: true},
	"slug":            {name: "slug", filterable: true},
	"duration":        {name: "duration", filterable: true},
	"maxGroupSize":    {name: "max_group_size", filterable: true},
	"difficulty":      {name: "difficulty", filterable: true},
	"ratingsAverage":  {name: "ratings_average", filterable: true},
	"ratingsQuantity": {name: "ratings_quantity", filterable: true},
	"price":           {name: "price", filterable: true},
	"priceDiscount":   {name: "price_discount", filterable: true},
	"summary":         {name: "summary", filterable: true},
	"description":     {name: "description"},
	"imageCover":      {name: "image_cover"},
	"images":          {name: "images"},
	"startDates":      {name: "start_dates"},
	"secretTour":      {name: "secret_tour", filterable: true},
	"startLocation":   {name: "start_location"},
	"locations":       {name: "locations"},
	"createdAt":       {name: "created_at", filterable: true},
	"__v":             {name: "version"},
}

// publicTours hides secret tours from every default lookup.
func publicTours(db *gorm.DB) *gorm.DB {
	return db.Where(`"tours"."secret_tour" = ?`, false)
}

func preloadGuides(db *gorm.DB) *gorm.DB {
	return db.Preload("Guides")
}

func preloadTourReviews(db *gorm.DB) *gorm.DB {
	return db.Preload("Reviews", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"created_at" DESC`)
	}).Preload("Reviews.User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "photo")
	})
}

var tourResource = &resource[entity.Tour, model.TourModel]{
	name:    "tour",
	fields:  tourFields,
	visible: publicTours,
	preloads: map[string]scopeFunc{
		repository.PopulateGuides:  preloadGuides,
		repository.PopulateReviews: preloadTourReviews,
	},
	alwaysPreload: []string{repository.PopulateGuides},
	toDomain:      toTourDomain,
	fromDomain:    fromTourDomain,
	idOf:          func(m *model.TourModel) uuid.UUID { return m.ID },
	setID:         func(m *model.TourModel, id uuid.UUID) { m.ID = id },
	version:       func(m *model.TourModel) *int { return &m.Version },
	beforeSave: func(t *entity.Tour) {
		t.Slug = entity.Slugify(t.Name)
		if t.StartLocation != nil && t.StartLocation.Type == "" {
			t.StartLocation.Type = entity.PointType
		}
	},
	afterSave: syncGuides,
}

// syncGuides replaces the guide list of a tour.
func syncGuides(tx *gorm.DB, tourID uuid.UUID, t *entity.Tour) error {
	if err := tx.Where(`"tour_id" = ?`, tourID).Delete(&model.TourGuideModel{}).Error; err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(t.Guides))
	rows := make([]*model.TourGuideModel, 0, len(t.Guides))
	for _, id := range entity.RefIDs(t.Guides) {
		if _, dup := seen[id]; dup || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, &model.TourGuideModel{TourID: tourID, UserID: id})
	}
	if len(rows) == 0 {
		return nil
	}

	return tx.Create(&rows).Error
}

// tourRepository implements the domain.TourRepository interface using GORM.
type tourRepository struct {
	*crudRepository[entity.Tour, model.TourModel]
}

// NewTourRepository is the constructor for tourRepository.
func NewTourRepository(db *gorm.DB) repository.TourRepository {
	return &tourRepository{
		crudRepository: newCRUDRepository(db, tourResource),
	}
}

// FindBySlug retrieves a public tour with guides and reviews.
func (repo *tourRepository) FindBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	tourM := new(model.TourModel)
	err := repo.read(repo.db.WithContext(ctx), []string{repository.PopulateReviews}).
		Where(`"slug" = ?`, slug).
		First(tourM).Error
	if err != nil {
		return nil, translateError(err, "find tour by slug")
	}

	return toTourDomain(tourM), nil
}

// FindByIDs retrieves the listed public tours.
func (repo *tourRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Tour, error) {
	if len(ids) == 0 {
		return []*entity.Tour{}, nil
	}

	var tours []*model.TourModel
	if err := repo.read(repo.db.WithContext(ctx), nil).Where(`"id" IN ?`, ids).Find(&tours).Error; err != nil {
		return nil, translateError(err, "find tours by ids")
	}

	return repo.toDomainList(tours), nil
}

type tourStatsRow struct {
	Difficulty string
	NumTours   int
	NumRatings int
	AvgRating  float64
	AvgPrice   float64
	MinPrice   float64
	MaxPrice   float64
}

// Stats aggregates public tours per upper-cased difficulty.
func (repo *tourRepository) Stats(ctx context.Context, minRating float64) ([]*entity.TourStats, error) {
	var rows []tourStatsRow
	err := publicTours(repo.db.WithContext(ctx).Model(&model.TourModel{})).
		Select(`UPPER("difficulty") AS difficulty,
			COUNT(*) AS num_tours,
			COALESCE(SUM("ratings_quantity"), 0) AS num_ratings,
			AVG("ratings_average") AS avg_rating,
			AVG("price") AS avg_price,
			MIN("price") AS min_price,
			MAX("price") AS max_price`).
		Where(`"ratings_average" >= ?`, minRating).
		Group(`UPPER("difficulty")`).
		Order("avg_price ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "aggregate tour stats")
	}

	stats := make([]*entity.TourStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &entity.TourStats{
			Difficulty: row.Difficulty,
			NumTours:   row.NumTours,
			NumRatings: row.NumRatings,
			AvgRating:  util.RoundTo(row.AvgRating, 2),
			AvgPrice:   util.RoundTo(row.AvgPrice, 2),
			MinPrice:   row.MinPrice,
			MaxPrice:   row.MaxPrice,
		})
	}

	return stats, nil
}

// FindStartingBetween lists public tours with a start date in [from, to).
func (repo *tourRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Tour, error) {
	var tours []*model.TourModel
	err := publicTours(repo.db.WithContext(ctx)).
		Where(`EXISTS (
			SELECT 1 FROM jsonb_array_elements_text("start_dates") AS d(value)
			WHERE d.value::timestamptz >= ? AND d.value::timestamptz < ?
		)`, from, to).
		Find(&tours).Error
	if err != nil {
		return nil, translateError(err, "find tours by start date")
	}

	return repo.toDomainList(tours), nil
}

// FindStartingWithin lists public tours whose start point lies inside bound.
func (repo *tourRepository) FindStartingWithin(ctx context.Context, bound orb.Bound) ([]*entity.Tour, error) {
	var tours []*model.TourModel
	err := publicTours(repo.db.WithContext(ctx)).
		Where(`"start_lng" BETWEEN ? AND ?`, bound.Min.Lon(), bound.Max.Lon()).
		Where(`"start_lat" BETWEEN ? AND ?`, bound.Min.Lat(), bound.Max.Lat()).
		Find(&tours).Error
	if err != nil {
		return nil, translateError(err, "find tours within bound")
	}

	return repo.toDomainList(tours), nil
}

// FindWithStartLocation lists every public tour that has a start point.
func (repo *tourRepository) FindWithStartLocation(ctx context.Context) ([]*entity.Tour, error) {
	var tours []*model.TourModel
	err := publicTours(repo.db.WithContext(ctx)).
		Select("id", "name", "start_location", "start_lng", "start_lat").
		Where(`"start_lng" IS NOT NULL AND "start_lat" IS NOT NULL`).
		Find(&tours).Error
	if err != nil {
		return nil, translateError(err, "find tour start locations")
	}

	return repo.toDomainList(tours), nil
}

// UpdateRatings writes the review aggregate, secret tours included.
func (repo *tourRepository) UpdateRatings(ctx context.Context, tourID uuid.UUID, summary entity.RatingSummary) error {
	err := repo.db.WithContext(ctx).
		Model(&model.TourModel{}).
		Where(`"id" = ?`, tourID).
		Updates(map[string]any{
			"ratings_quantity": summary.Quantity,
			"ratings_average":  util.RoundTo(summary.Average, 1),
		}).Error

	return translateError(err, "update tour ratings")
}

// --- Mapper Functions ---

func toTourDomain(data *model.TourModel) *entity.Tour {
	if data == nil {
		return nil
	}

	tour := &entity.Tour{
		ID:              data.ID,
		Name:            data.Name,
		Slug:            data.Slug,
		Duration:        data.Duration,
		MaxGroupSize:    data.MaxGroupSize,
		Difficulty:      entity.Difficulty(data.Difficulty),
		RatingsAverage:  data.RatingsAverage,
		RatingsQuantity: data.RatingsQuantity,
		Price:           data.Price,
		PriceDiscount:   data.PriceDiscount,
		Summary:         data.Summary,
		Description:     data.Description,
		ImageCover:      data.ImageCover,
		Images:          append([]string{}, data.Images...),
		StartDates:      append([]time.Time{}, data.StartDates...),
		SecretTour:      data.SecretTour,
		Locations:       make([]entity.Location, 0, len(data.Locations)),
		Guides:          make([]entity.Ref[entity.User], 0, len(data.Guides)),
		CreatedAt:       data.CreatedAt,
		Version:         data.Version,
	}
	if data.StartLocation != nil {
		start := toLocationDomain(data.StartLocation.Data())
		tour.StartLocation = &start
	}
	for _, loc := range data.Locations {
		tour.Locations = append(tour.Locations, toLocationDomain(loc))
	}
	for _, guide := range data.Guides {
		tour.Guides = append(tour.Guides, entity.Ref[entity.User]{ID: guide.ID, Doc: toUserDomain(guide)})
	}
	if data.Reviews != nil {
		tour.Reviews = make([]*entity.Review, 0, len(data.Reviews))
		for _, review := range data.Reviews {
			tour.Reviews = append(tour.Reviews, toReviewDomain(review))
		}
	}

	return tour
}

func fromTourDomain(data *entity.Tour) *model.TourModel {
	if data == nil {
		return nil
	}

	tourM := &model.TourModel{
		ID:              data.ID,
		Name:            data.Name,
		Slug:            data.Slug,
		Duration:        data.Duration,
		MaxGroupSize:    data.MaxGroupSize,
		Difficulty:      string(data.Difficulty),
		RatingsAverage:  data.RatingsAverage,
		RatingsQuantity: data.RatingsQuantity,
		Price:           data.Price,
		PriceDiscount:   data.PriceDiscount,
		Summary:         data.Summary,
		Description:     data.Description,
		ImageCover:      data.ImageCover,
		Images:          datatypes.NewJSONSlice(append([]string{}, data.Images...)),
		StartDates:      datatypes.NewJSONSlice(append([]time.Time{}, data.StartDates...)),
		SecretTour:      data.SecretTour,
		CreatedAt:       data.CreatedAt,
		Version:         data.Version,
	}

	locations := make([]model.LocationModel, 0, len(data.Locations))
	for _, loc := range data.Locations {
		locations = append(locations, fromLocationDomain(loc))
	}
	tourM.Locations = datatypes.NewJSONSlice(locations)

	if data.StartLocation != nil {
		start := datatypes.NewJSONType(fromLocationDomain(*data.StartLocation))
		tourM.StartLocation = &start
		if p, ok := data.StartLocation.Point(); ok {
			lng, lat := p.Lon(), p.Lat()
			tourM.StartLng, tourM.StartLat = &lng, &lat
		}
	}

	return tourM
}

func toLocationDomain(data model.LocationModel) entity.Location {
	return entity.Location{
		Type:        data.Type,
		Coordinates: append([]float64(nil), data.Coordinates...),
		Address:     data.Address,
		Description: data.Description,
		Day:         data.Day,
	}
}

func fromLocationDomain(data entity.Location) model.LocationModel {
	return model.LocationModel{
		Type:        data.Type,
		Coordinates: append([]float64(nil), data.Coordinates...),
		Address:     data.Address,
		Description: data.Description,
		Day:         data.Day,
	}
}
