package entity

import (
	"time"

	"github.com/google/uuid"
)

// Walk is the legacy pre-activities record type. Kept for old data;
// walks carry no images.
type Walk struct {
	ID uuid.UUID `json:"id"`

	Title           string    `json:"title"`
	Notes           *string   `json:"notes,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	WalkDate        time.Time `json:"walk_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
