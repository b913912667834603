package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. A user reviews a tour at most once.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Review    string    `gorm:"type:text;not null"`
	Rating    float64   `gorm:"not null"`
	TourID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_tour_user,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_tour_user,priority:2"`
	CreatedAt time.Time
	Version   int `gorm:"not null"`

	Tour *TourModel `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
