package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table.
type BookingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TourID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Price     float64   `gorm:"not null"`
	Paid      bool      `gorm:"not null"`
	CreatedAt time.Time
	Version   int `gorm:"not null"`

	Tour *TourModel `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&TourModel{},
		&TourGuideModel{},
		&ReviewModel{},
		&BookingModel{},
	}
}
