package models

import (
	"time"

	"github.com/google/uuid"
)

// League represents one historical draft league for a given season.
type League struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Year      int        `json:"year"`
	DraftDate *time.Time `json:"draft_date,omitempty"`
}
