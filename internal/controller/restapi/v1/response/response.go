package response

import (
	"time"

	"github.com/littleroamers/roamers/internal/entity"
	"github.com/littleroamers/roamers/internal/usecase/upload"
)

type Error struct {
	Error string `json:"error"`
}

// Activity mirrors the entity and adds the resolved image URL so
// clients never see raw object store keys alone.
type Activity struct {
	ID string `json:"id"`

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
	ImageURL string  `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromActivity(a *entity.Activity) Activity {
	resp := Activity{
		ID:                a.ID.String(),
		Title:             a.Title,
		Notes:             a.Notes,
		DurationMinutes:   a.DurationMinutes,
		ActivityDate:      a.ActivityDate,
		DistanceKm:        a.DistanceKm,
		ElevationGainM:    a.ElevationGainM,
		People:            a.People,
		Tags:              a.Tags,
		WeatherConditions: a.WeatherConditions,
		TemperatureC:      a.TemperatureC,
		ImageKey:          a.ImageKey,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}

	if a.ImageKey != nil {
		resp.ImageURL = upload.ResolveURL(*a.ImageKey)
	}

	return resp
}

func FromActivities(activities []entity.Activity) []Activity {
	resp := make([]Activity, 0, len(activities))
	for i := range activities {
		resp = append(resp, FromActivity(&activities[i]))
	}

	return resp
}

type Walk struct {
	ID string `json:"id"`

	Title           string    `json:"title"`
	Notes           *string   `json:"notes,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	WalkDate        time.Time `json:"walk_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromWalk(w *entity.Walk) Walk {
	return Walk{
		ID:              w.ID.String(),
		Title:           w.Title,
		Notes:           w.Notes,
		DurationMinutes: w.DurationMinutes,
		WalkDate:        w.WalkDate,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func FromWalks(walks []entity.Walk) []Walk {
	resp := make([]Walk, 0, len(walks))
	for i := range walks {
		resp = append(resp, FromWalk(&walks[i]))
	}

	return resp
}

// UploadImage is the upload endpoint response.
type UploadImage struct {
	ImageKey string               `json:"image_key"`
	ImageURL string               `json:"image_url"`
	Metadata entity.ImageMetadata `json:"metadata"`
}
