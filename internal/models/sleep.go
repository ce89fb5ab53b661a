package models

import (
	"fmt"
	"time"
)

// SleepSettings is the single per-installation sleep configuration record.
type SleepSettings struct {
	ID                string    `json:"id"`
	WakeupTime        string    `json:"wakeup_time"` // HH:MM format
	DesiredSleepHours float64   `json:"desired_sleep_hours"`
	SleepReminders    bool      `json:"sleep_reminders"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (s *SleepSettings) Validate() error {
	if _, err := time.Parse("15:04", s.WakeupTime); err != nil {
		return fmt.Errorf("invalid wakeup time (expected HH:MM): %w", err)
	}
	if s.DesiredSleepHours < 1 || s.DesiredSleepHours > 24 {
		return fmt.Errorf("desired sleep hours must be between 1 and 24")
	}
	return nil
}

// SleepLog records one night's actual sleep for statistics.
type SleepLog struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`                     // YYYY-MM-DD format
	ActualBedtime *string   `json:"actual_bedtime,omitempty"` // HH:MM format
	ActualWakeup  *string   `json:"actual_wakeup,omitempty"`  // HH:MM format
	QualityRating *int      `json:"quality_rating,omitempty"` // 1-5
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (l *SleepLog) Validate() error {
	if _, err := time.Parse("2006-01-02", l.Date); err != nil {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %w", err)
	}
	if l.ActualBedtime != nil {
		if _, err := time.Parse("15:04", *l.ActualBedtime); err != nil {
			return fmt.Errorf("invalid bedtime (expected HH:MM): %w", err)
		}
	}
	if l.ActualWakeup != nil {
		if _, err := time.Parse("15:04", *l.ActualWakeup); err != nil {
			return fmt.Errorf("invalid wakeup (expected HH:MM): %w", err)
		}
	}
	if l.QualityRating != nil && (*l.QualityRating < 1 || *l.QualityRating > 5) {
		return fmt.Errorf("quality rating must be between 1 and 5")
	}
	return nil
}
