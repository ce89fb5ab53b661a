package calc

import (
	"testing"
	"time"
)

func TestTimeUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		target string
		want   int
	}{
		{"12:00", 0},    // the exact instant
		{"12:01", 1},    // one minute ahead
		{"13:30", 90},   // later today
		{"11:59", 1439}, // just passed, rolls to tomorrow
		{"00:00", 720},  // midnight tonight
	}

	for _, tt := range tests {
		if got := TimeUntil(now, tt.target); got != tt.want {
			t.Errorf("TimeUntil(12:00, %q) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestTimeUntilFloorsPartialMinutes(t *testing.T) {
	// 30 seconds past 12:00, target 12:01: 30s remain, floored to 0.
	now := time.Date(2025, 6, 15, 12, 0, 30, 0, time.UTC)
	if got := TimeUntil(now, "12:01"); got != 0 {
		t.Errorf("TimeUntil = %d, want 0", got)
	}
}

func TestTimeUntilAlwaysInRange(t *testing.T) {
	now := time.Date(2025, 6, 15, 17, 23, 11, 0, time.UTC)
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 15, 23, 59} {
			target := FormatClock(h*60 + m)
			got := TimeUntil(now, target)
			if got < 0 || got > 1439 {
				t.Fatalf("TimeUntil(%q) = %d, out of [0, 1439]", target, got)
			}
		}
	}
}

func TestParseClock(t *testing.T) {
	if m, err := ParseClock("23:30"); err != nil || m != 1410 {
		t.Errorf("ParseClock(23:30) = %d, %v, want 1410, nil", m, err)
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Error("ParseClock(25:00) should fail")
	}
	if _, err := ParseClock("noon"); err == nil {
		t.Error("ParseClock(noon) should fail")
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{1410, "23:30"},
		{725, "12:05"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.minutes); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{150, "2h 30m"},
		{45, "45m"},
		{180, "3h"},
		{0, "0m"},
		{60, "1h"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
