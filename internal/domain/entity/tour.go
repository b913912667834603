package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Difficulty grades how demanding a tour is.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyDifficult Difficulty = "difficult"
)

// DefaultRatingsAverage is reported for tours without reviews.
const DefaultRatingsAverage = 4.5

type Tour struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name" validate:"required,min=10,max=40"`
	Slug            string      `json:"slug"`
	Duration        int         `json:"duration" validate:"required,gt=0"`
	MaxGroupSize    int         `json:"maxGroupSize" validate:"required,gt=0"`
	Difficulty      Difficulty  `json:"difficulty" validate:"required,oneof=easy medium difficult"`
	RatingsAverage  float64     `json:"ratingsAverage" validate:"gte=1,lte=5"`
	RatingsQuantity int         `json:"ratingsQuantity" validate:"gte=0"`
	Price           float64     `json:"price" validate:"required,gt=0"`
	PriceDiscount   float64     `json:"priceDiscount,omitempty" validate:"omitempty,gte=0,ltfield=Price"`
	Summary         string      `json:"summary" validate:"required"`
	Description     string      `json:"description,omitempty"`
	ImageCover      string      `json:"imageCover" validate:"required"`
	Images          []string    `json:"images"`
	StartDates      []time.Time `json:"startDates"`
	SecretTour      bool        `json:"secretTour"`
	StartLocation   *Location   `json:"startLocation,omitempty" validate:"omitempty"`
	Locations       []Location  `json:"locations" validate:"dive"`
	Guides          []Ref[User] `json:"guides"`
	Reviews         []*Review   `json:"reviews,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	Version         int         `json:"__v"`
}

// SetDefaults prepares a freshly bound tour.
func (t *Tour) SetDefaults() {
	t.RatingsAverage = DefaultRatingsAverage
	t.Images = []string{}
	t.StartDates = []time.Time{}
	t.Locations = []Location{}
	t.Guides = []Ref[User]{}
}

// DurationWeeks is derived from the duration in days.
func (t *Tour) DurationWeeks() float64 {
	return float64(t.Duration) / 7
}

// MarshalJSON adds the derived durationWeeks field.
func (t Tour) MarshalJSON() ([]byte, error) {
	type plain Tour

	return json.Marshal(struct {
		plain
		DurationWeeks float64 `json:"durationWeeks"`
	}{
		plain:         plain(t),
		DurationWeeks: t.DurationWeeks(),
	})
}

// TourStats aggregates tours of one difficulty.
type TourStats struct {
	Difficulty string  `json:"_id"`
	NumTours   int     `json:"numTours"`
	NumRatings int     `json:"numRatings"`
	AvgRating  float64 `json:"avgRating"`
	AvgPrice   float64 `json:"avgPrice"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
}

// MonthlyPlan lists the tours starting in one month.
type MonthlyPlan struct {
	Month         int      `json:"month"`
	NumTourStarts int      `json:"numTourStarts"`
	Tours         []string `json:"tours"`
}
