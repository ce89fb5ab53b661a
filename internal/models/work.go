package models

import (
	"fmt"
	"time"
)

// WorkSettings is the single per-installation work shift record.
type WorkSettings struct {
	ID        string    `json:"id"`
	StartTime string    `json:"start_time"` // HH:MM format
	EndTime   string    `json:"end_time"`   // HH:MM format
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WorkSettings) Validate() error {
	if _, err := time.Parse("15:04", w.StartTime); err != nil {
		return fmt.Errorf("invalid start time (expected HH:MM): %w", err)
	}
	if _, err := time.Parse("15:04", w.EndTime); err != nil {
		return fmt.Errorf("invalid end time (expected HH:MM): %w", err)
	}
	return nil
}
