package models

import (
	"strings"
	"testing"
)

func validTask() Task {
	return Task{
		ID:       "t1",
		Title:    "Write release notes",
		Priority: PriorityMedium,
	}
}

func TestTaskValidate(t *testing.T) {
	task := validTask()
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}
}

func TestTaskValidateRejectsEmptyTitle(t *testing.T) {
	task := validTask()
	task.Title = ""
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestTaskValidateTitleLength(t *testing.T) {
	task := validTask()
	task.Title = strings.Repeat("x", MaxTitleLength)
	if err := task.Validate(); err != nil {
		t.Fatalf("title at the limit should be valid, got %v", err)
	}

	task.Title = strings.Repeat("x", MaxTitleLength+1)
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for title over the limit")
	}
}

func TestTaskValidateRejectsUnknownPriority(t *testing.T) {
	task := validTask()
	task.Priority = "urgent"
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for unknown priority")
	}
}

func TestTaskValidateOptionalFields(t *testing.T) {
	task := validTask()
	task.Project = ""
	task.Category = ""
	task.DueDate = ""
	if err := task.Validate(); err != nil {
		t.Fatalf("empty optional fields should be valid, got %v", err)
	}

	task.Project = "Unknown-Project"
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for unknown project")
	}

	task = validTask()
	task.DueDate = "03/15/2026"
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for malformed due date")
	}

	task.DueDate = "2026-03-15"
	if err := task.Validate(); err != nil {
		t.Fatalf("ISO due date should be valid, got %v", err)
	}
}

func TestSleepSettingsValidate(t *testing.T) {
	s := SleepSettings{WakeupTime: "07:00", DesiredSleepHours: 7.5}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid settings, got %v", err)
	}

	s.WakeupTime = "7am"
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for malformed wakeup time")
	}

	s.WakeupTime = "07:00"
	s.DesiredSleepHours = 0.5
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for sleep hours below 1")
	}

	s.DesiredSleepHours = 25
	if err := s.Validate(); err == nil {
		t.Fatal("expected error for sleep hours above 24")
	}
}

func TestSleepLogValidate(t *testing.T) {
	bedtime := "23:30"
	rating := 4
	log := SleepLog{
		ID:            "l1",
		Date:          "2026-02-10",
		ActualBedtime: &bedtime,
		QualityRating: &rating,
	}
	if err := log.Validate(); err != nil {
		t.Fatalf("expected valid log, got %v", err)
	}

	badRating := 6
	log.QualityRating = &badRating
	if err := log.Validate(); err == nil {
		t.Fatal("expected error for quality rating above 5")
	}

	log.QualityRating = nil
	log.Date = "Feb 10"
	if err := log.Validate(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestWorkSettingsValidate(t *testing.T) {
	w := WorkSettings{StartTime: "09:00", EndTime: "17:00"}
	if err := w.Validate(); err != nil {
		t.Fatalf("expected valid settings, got %v", err)
	}

	w.EndTime = "5pm"
	if err := w.Validate(); err == nil {
		t.Fatal("expected error for malformed end time")
	}
}

func TestParseThemePaletteFallsBack(t *testing.T) {
	if got := ParseThemePalette("no-such-palette"); got != DefaultThemePalette {
		t.Fatalf("expected default palette, got %s", got)
	}
	if got := ParseThemePalette(string(PaletteDeepBlue)); got != PaletteDeepBlue {
		t.Fatalf("expected deep-blue, got %s", got)
	}
}

func TestThemePaletteNextCycles(t *testing.T) {
	p := DefaultThemePalette
	for range ThemePalettes {
		p = p.Next()
	}
	if p != DefaultThemePalette {
		t.Fatalf("expected full cycle back to default, got %s", p)
	}
}

func TestParseTaskViewModeFallsBack(t *testing.T) {
	if got := ParseTaskViewMode("spreadsheet"); got != DefaultTaskViewMode {
		t.Fatalf("expected default view mode, got %s", got)
	}
}

func TestTaskViewModeNextCycles(t *testing.T) {
	m := DefaultTaskViewMode
	seen := map[TaskViewMode]bool{m: true}
	for i := 1; i < len(TaskViewModes); i++ {
		m = m.Next()
		if seen[m] {
			t.Fatalf("view mode %s repeated before the cycle completed", m)
		}
		seen[m] = true
	}
	if m.Next() != DefaultTaskViewMode {
		t.Fatal("expected cycle to wrap back to the default view mode")
	}
}
