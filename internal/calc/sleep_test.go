package calc

import (
	"testing"
	"time"

	"hyprtodo/internal/models"
)

func TestSleepCycles(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{7, 5},    // round(420/90) = round(4.67) = 5
		{7.5, 5},  // exactly 5 cycles
		{8, 5},    // round(480/90) = round(5.33) = 5
		{9, 6},    // exact
		{6, 4},    // exact minimum
		{5.5, 4},  // round(330/90) = 4, already at minimum
		{4, 4},    // round(240/90) = 3, clamped to 4
		{1, 4},    // clamped
		{10, 7},   // round(600/90) = round(6.67) = 7
		{6.75, 5}, // round(405/90) = round(4.5) = 5, half rounds up
	}

	for _, tt := range tests {
		if got := SleepCycles(tt.hours); got != tt.want {
			t.Errorf("SleepCycles(%v) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestRecommendedBedtime(t *testing.T) {
	tests := []struct {
		wakeup string
		hours  float64
		want   string
	}{
		{"07:00", 7, "23:30"},   // 5 cycles = 450m back, previous day
		{"06:00", 5.5, "00:00"}, // clamped to 4 cycles = 360m back
		{"08:00", 7.5, "00:30"},
		{"23:00", 6, "17:00"}, // stays on the same day
		{"00:30", 6, "18:30"}, // wraps past midnight
	}

	for _, tt := range tests {
		if got := RecommendedBedtime(tt.wakeup, tt.hours); got != tt.want {
			t.Errorf("RecommendedBedtime(%q, %v) = %q, want %q", tt.wakeup, tt.hours, got, tt.want)
		}
	}
}

func TestRecommendedBedtimeMatchesCycleArithmetic(t *testing.T) {
	// For any wake time and hours, bedtime must be exactly the wake time
	// minus SleepCycles*90 minutes mod 24h.
	wakeups := []string{"00:00", "05:45", "07:00", "12:30", "23:59"}
	hours := []float64{6, 6.5, 7, 7.5, 8, 9, 10}

	for _, w := range wakeups {
		for _, h := range hours {
			wakeTotal, err := ParseClock(w)
			if err != nil {
				t.Fatalf("ParseClock(%q): %v", w, err)
			}

			cycles := SleepCycles(h)
			if cycles < 4 {
				t.Errorf("SleepCycles(%v) = %d, want >= 4", h, cycles)
			}

			want := FormatClock(((wakeTotal-cycles*90)%1440 + 1440) % 1440)
			if got := RecommendedBedtime(w, h); got != want {
				t.Errorf("RecommendedBedtime(%q, %v) = %q, want %q", w, h, got, want)
			}
		}
	}
}

func TestSleepData(t *testing.T) {
	now := time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC)
	settings := models.SleepSettings{
		WakeupTime:        "07:00",
		DesiredSleepHours: 7,
	}

	data := SleepData(now, settings)

	if data.RecommendedBedtime != "23:30" {
		t.Errorf("RecommendedBedtime = %q, want 23:30", data.RecommendedBedtime)
	}
	if data.SleepCycles != 5 {
		t.Errorf("SleepCycles = %d, want 5", data.SleepCycles)
	}
	if data.TotalSleepHours != 7.5 {
		t.Errorf("TotalSleepHours = %v, want 7.5", data.TotalSleepHours)
	}
	// 21:00 -> 23:30 is 150 minutes
	if data.TimeUntilBedtime != 150 {
		t.Errorf("TimeUntilBedtime = %d, want 150", data.TimeUntilBedtime)
	}
}

func TestSleepDataClampedHoursStillScheduled(t *testing.T) {
	// Requested hours below 6 keep their raw value in settings but the
	// schedule is computed from the clamped 4 cycles.
	now := time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC)
	settings := models.SleepSettings{
		WakeupTime:        "06:00",
		DesiredSleepHours: 5.5,
	}

	data := SleepData(now, settings)

	if data.SleepCycles != 4 {
		t.Errorf("SleepCycles = %d, want 4", data.SleepCycles)
	}
	if data.TotalSleepHours != 6 {
		t.Errorf("TotalSleepHours = %v, want 6", data.TotalSleepHours)
	}
	if data.RecommendedBedtime != "00:00" {
		t.Errorf("RecommendedBedtime = %q, want 00:00", data.RecommendedBedtime)
	}
}
