package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hyprtodo/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprtodo.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store
}

func makeTask(id, title string) models.Task {
	return models.Task{
		ID:        id,
		Title:     title,
		Priority:  models.PriorityMedium,
		CreatedAt: time.Now(),
	}
}

func TestJSONStoreInitRefusesReinit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyprtodo.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init should fail")
	}
}

func TestJSONStoreLoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load = %v, want ErrNotInitialized", err)
	}
}

func TestSleepSettingsLifecycle(t *testing.T) {
	store := setupJSONStore(t)

	// Absent before first save, and that is not an error.
	if _, ok, err := store.GetSleepSettings(); err != nil || ok {
		t.Fatalf("GetSleepSettings = ok=%v, err=%v, want absent", ok, err)
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
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("first save should stamp created_at and updated_at")
	}

	// Update preserves identity and creation time.
	saved2, err := store.SaveSleepSettings(models.SleepSettings{
		WakeupTime:        "06:30",
		DesiredSleepHours: 8,
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if saved2.ID != saved.ID {
		t.Errorf("update changed id: %s -> %s", saved.ID, saved2.ID)
	}
	if !saved2.CreatedAt.Equal(saved.CreatedAt) {
		t.Error("update should preserve created_at")
	}

	got, ok, err := store.GetSleepSettings()
	if err != nil || !ok {
		t.Fatalf("get after save: ok=%v, err=%v", ok, err)
	}
	if got.WakeupTime != "06:30" || got.DesiredSleepHours != 8 {
		t.Errorf("got %+v after update", got)
	}

	if err := store.DeleteSleepSettings(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.GetSleepSettings(); ok {
		t.Error("settings should be absent after delete")
	}
}

func TestWorkSettingsLifecycle(t *testing.T) {
	store := setupJSONStore(t)

	if _, ok, err := store.GetWorkSettings(); err != nil || ok {
		t.Fatalf("GetWorkSettings = ok=%v, err=%v, want absent", ok, err)
	}

	saved, err := store.SaveWorkSettings(models.WorkSettings{StartTime: "09:00", EndTime: "18:00"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Error("first save should generate an id")
	}

	if err := store.DeleteWorkSettings(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.GetWorkSettings(); ok {
		t.Error("settings should be absent after delete")
	}
}

func TestTaskSettingsDefaults(t *testing.T) {
	store := setupJSONStore(t)

	settings, err := store.GetTaskSettings()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.MaxActiveTasks != 5 || settings.AutoArchiveDays != 7 {
		t.Errorf("defaults = %+v, want 5/7", settings)
	}

	settings.MaxActiveTasks = 10
	if err := store.SaveTaskSettings(settings); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ := store.GetTaskSettings()
	if got.MaxActiveTasks != 10 {
		t.Errorf("MaxActiveTasks = %d after save", got.MaxActiveTasks)
	}
}

func TestTaskInsertionOrderPreserved(t *testing.T) {
	store := setupJSONStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := store.SaveTask(makeTask(id, "task "+id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	// Upserting b must keep it in the middle.
	b := makeTask("b", "task b updated")
	if err := store.SaveTask(b); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	tasks, err := store.GetAllTasks()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(tasks) != 3 {
		t.Fatalf("len = %d, want 3", len(tasks))
	}
	for i, task := range tasks {
		if task.ID != want[i] {
			t.Errorf("tasks[%d].ID = %s, want %s", i, task.ID, want[i])
		}
	}
	if tasks[1].Title != "task b updated" {
		t.Errorf("upsert did not replace: %q", tasks[1].Title)
	}
}

func TestSetCurrentTaskSingleCurrent(t *testing.T) {
	store := setupJSONStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := store.SaveTask(makeTask(id, "task "+id)); err != nil {
			t.Fatal(err)
		}
	}

	for _, id := range []string{"a", "c", "b", "a"} {
		if err := store.SetCurrentTask(id); err != nil {
			t.Fatalf("SetCurrentTask(%s): %v", id, err)
		}

		tasks, _ := store.GetAllTasks()
		currents := 0
		for _, task := range tasks {
			if task.IsCurrent {
				currents++
				if task.ID != id {
					t.Errorf("current is %s, want %s", task.ID, id)
				}
			}
		}
		if currents != 1 {
			t.Errorf("after SetCurrentTask(%s): %d current tasks", id, currents)
		}
	}

	if err := store.SetCurrentTask("nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("SetCurrentTask(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestToggleTaskClearsCurrent(t *testing.T) {
	store := setupJSONStore(t)

	if err := store.SaveTask(makeTask("a", "task a")); err != nil {
		t.Fatal(err)
	}
	if err := store.SetCurrentTask("a"); err != nil {
		t.Fatal(err)
	}

	toggled, err := store.ToggleTask("a")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.IsCompleted {
		t.Error("task should be completed")
	}
	if toggled.IsCurrent {
		t.Error("completing a task must clear its current flag")
	}
	if toggled.CompletedAt == nil {
		t.Error("completing a task must stamp completed_at")
	}

	if _, ok, _ := store.GetCurrentTask(); ok {
		t.Error("no task should be current after completing the current one")
	}

	// Reversal clears the stamp and does not restore currentness.
	reverted, err := store.ToggleTask("a")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if reverted.IsCompleted || reverted.CompletedAt != nil || reverted.IsCurrent {
		t.Errorf("reverted task = %+v", reverted)
	}

	if _, err := store.ToggleTask("nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("ToggleTask(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestActiveCompletedPartition(t *testing.T) {
	store := setupJSONStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := store.SaveTask(makeTask(id, "task "+id)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.ToggleTask("b"); err != nil {
		t.Fatal(err)
	}

	active, _ := store.GetActiveTasks()
	completed, _ := store.GetCompletedTasks()
	if len(active) != 2 || len(completed) != 1 {
		t.Errorf("active=%d completed=%d, want 2/1", len(active), len(completed))
	}
	if count, _ := store.CountActiveTasks(); count != 2 {
		t.Errorf("CountActiveTasks = %d, want 2", count)
	}
}

func TestSaveTaskPermissiveBeyondCap(t *testing.T) {
	// The active-task cap is caller-enforced: the store accepts a sixth
	// active task even with MaxActiveTasks at the default of 5.
	store := setupJSONStore(t)

	settings, _ := store.GetTaskSettings()
	if settings.MaxActiveTasks != 5 {
		t.Fatalf("default cap = %d", settings.MaxActiveTasks)
	}

	for i := 0; i < 6; i++ {
		task := makeTask(string(rune('a'+i)), "task")
		if err := store.SaveTask(task); err != nil {
			t.Fatalf("save #%d: %v", i+1, err)
		}
	}

	if count, _ := store.CountActiveTasks(); count != 6 {
		t.Errorf("CountActiveTasks = %d, want 6", count)
	}
}

func TestAutoArchive(t *testing.T) {
	store := setupJSONStore(t)

	old := time.Now().Add(-8 * 24 * time.Hour)
	recent := time.Now().Add(-2 * 24 * time.Hour)

	stale := makeTask("stale", "old done task")
	stale.IsCompleted = true
	stale.CompletedAt = &old

	fresh := makeTask("fresh", "recent done task")
	fresh.IsCompleted = true
	fresh.CompletedAt = &recent

	active := makeTask("active", "still going")

	for _, task := range []models.Task{stale, fresh, active} {
		if err := store.SaveTask(task); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := store.AutoArchive(7)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	tasks, _ := store.GetAllTasks()
	if len(tasks) != 2 {
		t.Fatalf("len = %d after archive", len(tasks))
	}
	for _, task := range tasks {
		if task.ID == "stale" {
			t.Error("stale task should have been removed")
		}
	}

	// Idempotent: nothing newly eligible, nothing removed.
	removed, err = store.AutoArchive(7)
	if err != nil {
		t.Fatalf("second archive: %v", err)
	}
	if removed != 0 {
		t.Errorf("second run removed %d, want 0", removed)
	}
	if tasks, _ := store.GetAllTasks(); len(tasks) != 2 {
		t.Errorf("second run mutated the collection: len = %d", len(tasks))
	}
}

func TestAutoArchiveExactElapsedTime(t *testing.T) {
	// Threshold is exact elapsed time, not calendar-day truncation: a task
	// completed 6 days 23 hours ago survives a 7-day sweep.
	store := setupJSONStore(t)

	almost := time.Now().Add(-(6*24 + 23) * time.Hour)
	task := makeTask("almost", "nearly stale")
	task.IsCompleted = true
	task.CompletedAt = &almost
	if err := store.SaveTask(task); err != nil {
		t.Fatal(err)
	}

	removed, err := store.AutoArchive(7)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}

func TestDeleteTask(t *testing.T) {
	store := setupJSONStore(t)

	if err := store.SaveTask(makeTask("a", "task a")); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteTask("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if tasks, _ := store.GetAllTasks(); len(tasks) != 0 {
		t.Error("task should be gone")
	}
	if err := store.DeleteTask("a"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("DeleteTask(missing) = %v, want ErrTaskNotFound", err)
	}
}

func TestSleepLogs(t *testing.T) {
	store := setupJSONStore(t)

	bedtime := "23:15"
	rating := 4
	log := models.SleepLog{
		ID:            "log-1",
		Date:          "2025-06-15",
		ActualBedtime: &bedtime,
		QualityRating: &rating,
		Notes:         "slept well",
		CreatedAt:     time.Now(),
	}
	if err := store.SaveSleepLog(log); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.GetSleepLogByDate("2025-06-15")
	if err != nil || !ok {
		t.Fatalf("get by date: ok=%v err=%v", ok, err)
	}
	if got.ActualBedtime == nil || *got.ActualBedtime != "23:15" {
		t.Errorf("bedtime = %v", got.ActualBedtime)
	}

	if _, ok, _ := store.GetSleepLogByDate("2025-06-16"); ok {
		t.Error("no log expected for other dates")
	}

	if err := store.DeleteSleepLog("log-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteSleepLog("log-1"); !errors.Is(err, ErrSleepLogNotFound) {
		t.Errorf("DeleteSleepLog(missing) = %v, want ErrSleepLogNotFound", err)
	}
}

func TestPreferencesFallback(t *testing.T) {
	store := setupJSONStore(t)

	// Unset preferences fall back to documented defaults.
	if palette, _ := store.GetThemePalette(); palette != models.DefaultThemePalette {
		t.Errorf("palette = %s, want default", palette)
	}
	if mode, _ := store.GetTaskViewMode(); mode != models.DefaultTaskViewMode {
		t.Errorf("view mode = %s, want default", mode)
	}

	if err := store.SaveThemePalette(models.PaletteDeepBlue); err != nil {
		t.Fatal(err)
	}
	if palette, _ := store.GetThemePalette(); palette != models.PaletteDeepBlue {
		t.Errorf("palette = %s after save", palette)
	}

	// A stored value outside the enum also falls back.
	store.doc.ThemePalette = "lime-green"
	store.doc.TaskViewMode = "spreadsheet"
	if palette, _ := store.GetThemePalette(); palette != models.DefaultThemePalette {
		t.Errorf("invalid palette read as %s, want default", palette)
	}
	if mode, _ := store.GetTaskViewMode(); mode != models.DefaultTaskViewMode {
		t.Errorf("invalid view mode read as %s, want default", mode)
	}
}

func TestPersistenceAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyprtodo.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveTask(makeTask("a", "persisted")); err != nil {
		t.Fatal(err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	tasks, err := reopened.GetAllTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Title != "persisted" {
		t.Errorf("reloaded tasks = %+v", tasks)
	}
}
