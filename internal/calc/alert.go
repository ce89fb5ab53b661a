package calc

type AlertLevel string

const (
	AlertNone     AlertLevel = "none"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// Alert is a wind-down reminder derived from the bedtime countdown.
type Alert struct {
	Level         AlertLevel
	Message       string
	TimeRemaining int // minutes
}

// Countdown thresholds in minutes, most urgent first.
const (
	alertCriticalMin = 30
	alertWindDownMin = 60
	alertIntenseMin  = 120
)

// SleepAlert maps a bedtime countdown to a reminder level. Pure; safe to
// re-evaluate on every countdown refresh.
func SleepAlert(timeUntilBedtime int, remindersEnabled bool) Alert {
	if !remindersEnabled {
		return Alert{Level: AlertNone, TimeRemaining: timeUntilBedtime}
	}

	switch {
	case timeUntilBedtime <= alertCriticalMin:
		return Alert{
			Level:         AlertCritical,
			Message:       "Turn off screens and prepare for sleep",
			TimeRemaining: timeUntilBedtime,
		}
	case timeUntilBedtime <= alertWindDownMin:
		return Alert{
			Level:         AlertWarning,
			Message:       "Start your wind-down routine",
			TimeRemaining: timeUntilBedtime,
		}
	case timeUntilBedtime <= alertIntenseMin:
		return Alert{
			Level:         AlertWarning,
			Message:       "Finish intense activities",
			TimeRemaining: timeUntilBedtime,
		}
	default:
		return Alert{Level: AlertNone, TimeRemaining: timeUntilBedtime}
	}
}
