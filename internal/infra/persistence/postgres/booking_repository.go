package postgres

import (
	"context"

	"natours/internal/domain/entity"
	"natours/internal/domain/repository"
	"natours/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var bookingFields = fieldMap{
	"id":        {name: "id", filterable: true},
	"tour":      {name: "tour_id", filterable: true},
	"user":      {name: "user_id", filterable: true},
	"price":     {name: "price", filterable: true},
	"paid":      {name: "paid", filterable: true},
	"createdAt": {name: "created_at", filterable: true},
	"__v":       {name: "version"},
}

var bookingResource = &resource[entity.Booking, model.BookingModel]{
	name:   "booking",
	fields: bookingFields,
	preloads: map[string]scopeFunc{
		repository.PopulateUser: preloadAuthor,
		repository.PopulateTour: preloadTourName,
	},
	toDomain:   toBookingDomain,
	fromDomain: fromBookingDomain,
	idOf:       func(m *model.BookingModel) uuid.UUID { return m.ID },
	setID:      func(m *model.BookingModel, id uuid.UUID) { m.ID = id },
	version:    func(m *model.BookingModel) *int { return &m.Version },
}

// bookingRepository implements the domain.BookingRepository interface using GORM.
type bookingRepository struct {
	*crudRepository[entity.Booking, model.BookingModel]
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		crudRepository: newCRUDRepository(db, bookingResource),
	}
}

// FindByUser lists the bookings of one user, newest first.
func (repo *bookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var bookings []*model.BookingModel
	err := repo.db.WithContext(ctx).
		Where(`"user_id" = ?`, userID).
		Order(`"created_at" DESC`).
		Find(&bookings).Error
	if err != nil {
		return nil, translateError(err, "find bookings by user")
	}

	return repo.toDomainList(bookings), nil
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	booking := &entity.Booking{
		ID:        data.ID,
		Tour:      entity.RefTo[entity.Tour](data.TourID),
		User:      entity.RefTo[entity.User](data.UserID),
		Price:     data.Price,
		Paid:      data.Paid,
		CreatedAt: data.CreatedAt,
		Version:   data.Version,
	}
	if data.User != nil {
		booking.User.Doc = toUserDomain(data.User)
	}
	if data.Tour != nil {
		booking.Tour.Doc = toTourDomain(data.Tour)
	}

	return booking
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:        data.ID,
		TourID:    data.Tour.ID,
		UserID:    data.User.ID,
		Price:     data.Price,
		Paid:      data.Paid,
		CreatedAt: data.CreatedAt,
		Version:   data.Version,
	}
}
