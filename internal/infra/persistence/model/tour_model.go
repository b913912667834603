package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LocationModel is the JSON shape of a GeoJSON point stored inside a tour row.
type LocationModel struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Day         int       `json:"day,omitempty"`
}

// TourModel mirrors the 'tours' table. The start point is duplicated into
// start_lng/start_lat so geo lookups can use a plain range index.
type TourModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	Slug            string    `gorm:"type:varchar(80);index"`
	Duration        int       `gorm:"not null"`
	MaxGroupSize    int       `gorm:"not null"`
	Difficulty      string    `gorm:"type:varchar(20);not null"`
	RatingsAverage  float64   `gorm:"not null"`
	RatingsQuantity int       `gorm:"not null"`
	Price           float64   `gorm:"not null"`
	PriceDiscount   float64
	Summary         string `gorm:"type:text;not null"`
	Description     string `gorm:"type:text"`
	ImageCover      string `gorm:"type:varchar(255);not null"`
	Images          datatypes.JSONSlice[string]
	StartDates      datatypes.JSONSlice[time.Time]
	SecretTour      bool `gorm:"not null;index"`
	StartLocation   *datatypes.JSONType[LocationModel]
	StartLng        *float64 `gorm:"index:idx_tours_start_point,priority:1"`
	StartLat        *float64 `gorm:"index:idx_tours_start_point,priority:2"`
	Locations       datatypes.JSONSlice[LocationModel]
	CreatedAt       time.Time
	Version         int `gorm:"not null"`

	Guides  []*UserModel   `gorm:"many2many:tour_guides;joinForeignKey:TourID;joinReferences:UserID"`
	Reviews []*ReviewModel `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TourModel) TableName() string {
	return "tours"
}

// TourGuideModel mirrors the 'tour_guides' join table.
type TourGuideModel struct {
	TourID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (TourGuideModel) TableName() string {
	return "tour_guides"
}
