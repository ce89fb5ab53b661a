package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hyprtodo/internal/models"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewMemorySQLiteStore()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteInitAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "hyprtodo.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	store.Close()

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	defer reopened.Close()

	missing := NewSQLiteStore(filepath.Join(t.TempDir(), "nope.db"))
	if err := missing.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load(missing) = %v, want ErrNotInitialized", err)
	}
}

func TestSQLiteSleepSettingsUpsert(t *testing.T) {
	store := setupSQLiteStore(t)

	if _, ok, err := store.GetSleepSettings(); err != nil || ok {
		t.Fatalf("expected absent settings, ok=%v err=%v", ok, err)
	}

	saved, err := store.SaveSleepSettings(models.SleepSettings{
		WakeupTime:        "07:00",
		DesiredSleepHours: 7,
		SleepReminders:    true,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Error("first save should generate an id")
	}

	saved2, err := store.SaveSleepSettings(models.SleepSettings{
		WakeupTime:        "06:00",
		DesiredSleepHours: 8,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved2.ID != saved.ID {
		t.Errorf("update changed id")
	}

	got, ok, err := store.GetSleepSettings()
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.WakeupTime != "06:00" || got.SleepReminders {
		t.Errorf("got %+v", got)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt.Truncate(time.Second)) {
		t.Errorf("created_at not preserved: %v vs %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestSQLiteTaskOrderAndUpsert(t *testing.T) {
	store := setupSQLiteStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := store.SaveTask(makeTask(id, "task "+id)); err != nil {
			t.Fatal(err)
		}
	}

	b := makeTask("b", "task b updated")
	if err := store.SaveTask(b); err != nil {
		t.Fatal(err)
	}

	tasks, err := store.GetAllTasks()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	if len(tasks) != 3 {
		t.Fatalf("len = %d", len(tasks))
	}
	for i, task := range tasks {
		if task.ID != want[i] {
			t.Errorf("tasks[%d].ID = %s, want %s", i, task.ID, want[i])
		}
	}
	if tasks[1].Title != "task b updated" {
		t.Errorf("upsert did not replace in place: %q", tasks[1].Title)
	}
}

func TestSQLiteSingleCurrentInvariant(t *testing.T) {
	store := setupSQLiteStore(t)

	for _, id := range []string{"a", "b"} {
		if err := store.SaveTask(makeTask(id, "task "+id)); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.SetCurrentTask("a"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetCurrentTask("b"); err != nil {
		t.Fatal(err)
	}

	tasks, _ := store.GetAllTasks()
	currents := 0
	for _, task := range tasks {
		if task.IsCurrent {
			currents++
		}
	}
	if currents != 1 {
		t.Errorf("%d current tasks, want 1", currents)
	}

	current, ok, err := store.GetCurrentTask()
	if err != nil || !ok || current.ID != "b" {
		t.Errorf("GetCurrentTask = %v/%v/%v, want b", current.ID, ok, err)
	}

	if err := store.SetCurrentTask("missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("SetCurrentTask(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestSQLiteToggleCompletion(t *testing.T) {
	store := setupSQLiteStore(t)

	if err := store.SaveTask(makeTask("a", "task a")); err != nil {
		t.Fatal(err)
	}
	if err := store.SetCurrentTask("a"); err != nil {
		t.Fatal(err)
	}

	toggled, err := store.ToggleTask("a")
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.IsCompleted || toggled.IsCurrent || toggled.CompletedAt == nil {
		t.Errorf("toggled = %+v", toggled)
	}

	reverted, err := store.ToggleTask("a")
	if err != nil {
		t.Fatal(err)
	}
	if reverted.IsCompleted || reverted.CompletedAt != nil || reverted.IsCurrent {
		t.Errorf("reverted = %+v", reverted)
	}
}

func TestSQLiteAutoArchive(t *testing.T) {
	store := setupSQLiteStore(t)

	old := time.Now().Add(-10 * 24 * time.Hour)
	stale := makeTask("stale", "old")
	stale.IsCompleted = true
	stale.CompletedAt = &old
	if err := store.SaveTask(stale); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveTask(makeTask("active", "keep me")); err != nil {
		t.Fatal(err)
	}

	removed, err := store.AutoArchive(7)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	removed, err = store.AutoArchive(7)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 0 {
		t.Errorf("second run removed = %d, want 0", removed)
	}
}

func TestSQLiteSleepLogsNullableFields(t *testing.T) {
	store := setupSQLiteStore(t)

	// All-nil optionals round-trip as nil.
	log := models.SleepLog{
		ID:        "log-1",
		Date:      "2025-06-15",
		CreatedAt: time.Now(),
	}
	if err := store.SaveSleepLog(log); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.GetSleepLogByDate("2025-06-15")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.ActualBedtime != nil || got.ActualWakeup != nil || got.QualityRating != nil {
		t.Errorf("optionals should be nil: %+v", got)
	}

	// Upsert fills them in.
	bedtime, wakeup, rating := "23:00", "07:05", 5
	log.ActualBedtime = &bedtime
	log.ActualWakeup = &wakeup
	log.QualityRating = &rating
	if err := store.SaveSleepLog(log); err != nil {
		t.Fatal(err)
	}

	got, _, _ = store.GetSleepLogByDate("2025-06-15")
	if got.QualityRating == nil || *got.QualityRating != 5 {
		t.Errorf("rating = %v", got.QualityRating)
	}

	logs, err := store.GetSleepLogs()
	if err != nil || len(logs) != 1 {
		t.Errorf("GetSleepLogs = %d logs, err=%v", len(logs), err)
	}
}

func TestSQLitePreferences(t *testing.T) {
	store := setupSQLiteStore(t)

	if palette, _ := store.GetThemePalette(); palette != models.DefaultThemePalette {
		t.Errorf("palette = %s, want default", palette)
	}
	if err := store.SaveThemePalette(models.PalettePinkRedOrange); err != nil {
		t.Fatal(err)
	}
	if palette, _ := store.GetThemePalette(); palette != models.PalettePinkRedOrange {
		t.Errorf("palette = %s", palette)
	}

	// Garbage written directly falls back on read.
	if err := store.setPreference("task_view_mode", "spreadsheet"); err != nil {
		t.Fatal(err)
	}
	if mode, _ := store.GetTaskViewMode(); mode != models.DefaultTaskViewMode {
		t.Errorf("mode = %s, want default", mode)
	}
}

func TestSQLiteTaskSettingsMaterialized(t *testing.T) {
	store := setupSQLiteStore(t)

	settings, err := store.GetTaskSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.MaxActiveTasks != 5 || settings.AutoArchiveDays != 7 {
		t.Errorf("defaults = %+v", settings)
	}

	settings.AutoArchiveDays = 14
	if err := store.SaveTaskSettings(settings); err != nil {
		t.Fatal(err)
	}
	got, _ := store.GetTaskSettings()
	if got.AutoArchiveDays != 14 {
		t.Errorf("AutoArchiveDays = %d", got.AutoArchiveDays)
	}
}
