// Package export writes dashboard snapshots to JSON or CSV files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"hyprtodo/internal/models"
	"hyprtodo/internal/storage"
)

// Snapshot is the exported view of the whole store.
type Snapshot struct {
	ExportedAt    string                `json:"exported_at"`
	SleepSettings *models.SleepSettings `json:"sleep_settings,omitempty"`
	WorkSettings  *models.WorkSettings  `json:"work_settings,omitempty"`
	TaskSettings  models.TaskSettings   `json:"task_settings"`
	Tasks         []models.Task         `json:"tasks"`
	SleepLogs     []models.SleepLog     `json:"sleep_logs"`
}

// Collect reads everything worth exporting out of the store.
func Collect(store storage.Provider) (Snapshot, error) {
	snapshot := Snapshot{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if settings, ok, err := store.GetSleepSettings(); err != nil {
		return Snapshot{}, err
	} else if ok {
		snapshot.SleepSettings = &settings
	}

	if settings, ok, err := store.GetWorkSettings(); err != nil {
		return Snapshot{}, err
	} else if ok {
		snapshot.WorkSettings = &settings
	}

	taskSettings, err := store.GetTaskSettings()
	if err != nil {
		return Snapshot{}, err
	}
	snapshot.TaskSettings = taskSettings

	if snapshot.Tasks, err = store.GetAllTasks(); err != nil {
		return Snapshot{}, err
	}
	if snapshot.SleepLogs, err = store.GetSleepLogs(); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// ToJSON writes the snapshot as indented JSON.
func ToJSON(snapshot Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// ToCSV writes the task collection as CSV, one row per task.
func ToCSV(tasks []models.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Title", "Completed", "Current", "Priority", "Project", "Category", "Due", "Created", "Completed At"}); err != nil {
		return err
	}

	for _, task := range tasks {
		completedAt := ""
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.UTC().Format(time.RFC3339)
		}

		row := []string{
			task.ID,
			task.Title,
			fmt.Sprintf("%v", task.IsCompleted),
			fmt.Sprintf("%v", task.IsCurrent),
			string(task.Priority),
			string(task.Project),
			string(task.Category),
			task.DueDate,
			task.CreatedAt.UTC().Format(time.RFC3339),
			completedAt,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
