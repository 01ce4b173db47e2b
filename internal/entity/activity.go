package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a logged activity. ImageKey references a blob in the
// object store; it must never outlive the blob it points to.
type Activity struct {
	ID uuid.UUID `json:"id"`

	Title           string    `json:"title"`
	Notes           *string   `json:"notes,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	ActivityDate    time.Time `json:"activity_date"`

	DistanceKm        *float64 `json:"distance_km,omitempty"`
	ElevationGainM    *float64 `json:"elevation_gain_m,omitempty"`
	People            []string `json:"people"`
	Tags              []string `json:"tags"`
	WeatherConditions *string  `json:"weather_conditions,omitempty"`
	TemperatureC      *float64 `json:"temperature_c,omitempty"`

	ImageKey *string `json:"image_key,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Autocomplete holds the distinct people and tags used across all
// activities, for entry-form suggestions.
type Autocomplete struct {
	People []string `json:"people"`
	Tags   []string `json:"tags"`
}
