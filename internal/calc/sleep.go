package calc

import (
	"math"
	"time"

	"hyprtodo/internal/models"
)

// A full sleep cycle is 90 minutes; fewer than 4 cycles (6 hours) is never
// recommended, so shorter requests are silently raised to the minimum.
const (
	CycleMinutes = 90
	MinCycles    = 4
)

// SleepCalculation is the derived sleep schedule for a settings record.
type SleepCalculation struct {
	RecommendedBedtime string  // HH:MM format
	TimeUntilBedtime   int     // minutes
	SleepCycles        int     // whole 90-minute cycles
	TotalSleepHours    float64 // hours actually scheduled, from whole cycles
}

// SleepCycles quantizes desired hours to whole 90-minute cycles, rounding
// half up and clamping to the minimum of 4.
func SleepCycles(desiredHours float64) int {
	cycles := int(math.Round(desiredHours * 60 / CycleMinutes))
	if cycles < MinCycles {
		return MinCycles
	}
	return cycles
}

// RecommendedBedtime works backwards from the wake-up time by whole sleep
// cycles. A bedtime before midnight wraps to the previous day and is
// returned as a bare HH:MM string.
func RecommendedBedtime(wakeupTime string, desiredHours float64) string {
	wakeTotal := mustClock(wakeupTime)
	sleepMinutes := SleepCycles(desiredHours) * CycleMinutes

	bedTotal := wakeTotal - sleepMinutes
	if bedTotal < 0 {
		bedTotal += 24 * 60
	}

	return FormatClock(bedTotal)
}

// SleepData derives the full sleep schedule from the settings record.
func SleepData(now time.Time, settings models.SleepSettings) SleepCalculation {
	bedtime := RecommendedBedtime(settings.WakeupTime, settings.DesiredSleepHours)
	cycles := SleepCycles(settings.DesiredSleepHours)

	return SleepCalculation{
		RecommendedBedtime: bedtime,
		TimeUntilBedtime:   TimeUntil(now, bedtime),
		SleepCycles:        cycles,
		TotalSleepHours:    float64(cycles*CycleMinutes) / 60,
	}
}
