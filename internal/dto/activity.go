package dto

import "time"

type CreateActivity struct {
	Title           string    `json:"title" validate:"required"`
	Notes           *string   `json:"notes"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	ActivityDate    time.Time `json:"activity_date" validate:"required"`

	DistanceKm        *float64 `json:"distance_km" validate:"omitempty,gte=0"`
	ElevationGainM    *float64 `json:"elevation_gain_m"`
	People            []string `json:"people"`
	Tags              []string `json:"tags"`
	WeatherConditions *string  `json:"weather_conditions"`
	TemperatureC      *float64 `json:"temperature_c"`

	ImageKey *string `json:"image_key"`
}

// UpdateActivity carries a partial update: nil means "leave unchanged".
// An ImageKey of "" clears the image; the previous blob is deleted only
// after the record update has been committed.
type UpdateActivity struct {
	Title           *string    `json:"title"`
	Notes           *string    `json:"notes"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gt=0"`
	ActivityDate    *time.Time `json:"activity_date"`

	DistanceKm        *float64  `json:"distance_km" validate:"omitempty,gte=0"`
	ElevationGainM    *float64  `json:"elevation_gain_m"`
	People            *[]string `json:"people"`
	Tags              *[]string `json:"tags"`
	WeatherConditions *string   `json:"weather_conditions"`
	TemperatureC      *float64  `json:"temperature_c"`

	ImageKey *string `json:"image_key"`
}
