package calc

import (
	"time"

	"hyprtodo/internal/models"
)

// WorkCalculation is the derived shift data for a work settings record.
type WorkCalculation struct {
	EndTime      string  // HH:MM format
	TimeUntilEnd int     // minutes
	WorkHours    float64 // fractional hours
}

// WorkHours returns the shift length in fractional hours. An end time at or
// before the start time is treated as crossing midnight.
func WorkHours(startTime, endTime string) float64 {
	startTotal := mustClock(startTime)
	endTotal := mustClock(endTime)

	if endTotal <= startTotal {
		endTotal += 24 * 60
	}

	return float64(endTotal-startTotal) / 60
}

// WorkData derives the full shift picture from the settings record.
func WorkData(now time.Time, settings models.WorkSettings) WorkCalculation {
	return WorkCalculation{
		EndTime:      settings.EndTime,
		TimeUntilEnd: TimeUntil(now, settings.EndTime),
		WorkHours:    WorkHours(settings.StartTime, settings.EndTime),
	}
}
