package dto

import "time"

type CreateWalk struct {
	Title           string    `json:"title" validate:"required"`
	Notes           *string   `json:"notes"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	WalkDate        time.Time `json:"walk_date" validate:"required"`
}

type UpdateWalk struct {
	Title           *string    `json:"title"`
	Notes           *string    `json:"notes"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gt=0"`
	WalkDate        *time.Time `json:"walk_date"`
}
