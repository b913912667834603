package postgres

import (
	"context"

	"natours/internal/domain/entity"
	"natours/internal/domain/repository"
	"natours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var reviewFields = fieldMap{
	"id":        {name: "id", filterable: true},
	"review":    {name: "review", filterable: true},
	"rating":    {name: "rating", filterable: true},
	"tour":      {name: "tour_id", filterable: true},
	"user":      {name: "user_id", filterable: true},
	"createdAt": {name: "created_at", filterable: true},
	"__v":       {name: "version"},
}

func preloadAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "photo")
	})
}

func preloadTourName(db *gorm.DB) *gorm.DB {
	return db.Preload("Tour", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "slug")
	})
}

var reviewResource = &resource[entity.Review, model.ReviewModel]{
	name:   "review",
	fields: reviewFields,
	preloads: map[string]scopeFunc{
		repository.PopulateUser: preloadAuthor,
		repository.PopulateTour: preloadTourName,
	},
	toDomain:   toReviewDomain,
	fromDomain: fromReviewDomain,
	idOf:       func(m *model.ReviewModel) uuid.UUID { return m.ID },
	setID:      func(m *model.ReviewModel, id uuid.UUID) { m.ID = id },
	version:    func(m *model.ReviewModel) *int { return &m.Version },
}

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	*crudRepository[entity.Review, model.ReviewModel]
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		crudRepository: newCRUDRepository(db, reviewResource),
	}
}

type ratingSummaryRow struct {
	Quantity int
	Average  float64
}

// RatingSummary counts and averages every rating of a tour.
func (repo *reviewRepository) RatingSummary(ctx context.Context, tourID uuid.UUID) (entity.RatingSummary, error) {
	var row ratingSummaryRow
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select(`COUNT(*) AS quantity, COALESCE(AVG("rating"), 0) AS average`).
		Where(`"tour_id" = ?`, tourID).
		Scan(&row).Error
	if err != nil {
		return entity.RatingSummary{}, translateError(err, "summarize ratings")
	}

	return entity.RatingSummary{Quantity: row.Quantity, Average: row.Average}, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:        data.ID,
		Review:    data.Review,
		Rating:    data.Rating,
		Tour:      entity.RefTo[entity.Tour](data.TourID),
		User:      entity.RefTo[entity.User](data.UserID),
		CreatedAt: data.CreatedAt,
		Version:   data.Version,
	}
	if data.User != nil {
		review.User.Doc = toUserDomain(data.User)
	}
	if data.Tour != nil {
		review.Tour.Doc = toTourDomain(data.Tour)
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		Review:    data.Review,
		Rating:    data.Rating,
		TourID:    data.Tour.ID,
		UserID:    data.User.ID,
		CreatedAt: data.CreatedAt,
		Version:   data.Version,
	}
}
