package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"hyprtodo/internal/models"
)

// document is the whole persisted state. Every write replaces the file;
// there are no field-level patches.
type document struct {
	Version       int                   `json:"version"`
	SleepSettings *models.SleepSettings `json:"sleep_settings,omitempty"`
	WorkSettings  *models.WorkSettings  `json:"work_settings,omitempty"`
	TaskSettings  *models.TaskSettings  `json:"task_settings,omitempty"`
	Tasks         []models.Task         `json:"tasks"`
	SleepLogs     []models.SleepLog     `json:"sleep_logs"`
	ThemePalette  string                `json:"theme_palette,omitempty"`
	TaskViewMode  string                `json:"task_view_mode,omitempty"`
}

// JSONStore keeps the whole dashboard state in a single JSON file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version:   1,
		Tasks:     []models.Task{},
		SleepLogs: []models.SleepLog{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.doc.Tasks == nil {
		s.doc.Tasks = []models.Task{}
	}
	if s.doc.SleepLogs == nil {
		s.doc.SleepLogs = []models.SleepLog{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// ============================================
// Sleep settings
// ============================================

func (s *JSONStore) GetSleepSettings() (models.SleepSettings, bool, error) {
	if err := s.loaded(); err != nil {
		return models.SleepSettings{}, false, err
	}
	if s.doc.SleepSettings == nil {
		return models.SleepSettings{}, false, nil
	}
	return *s.doc.SleepSettings, true, nil
}

func (s *JSONStore) SaveSleepSettings(settings models.SleepSettings) (models.SleepSettings, error) {
	if err := s.loaded(); err != nil {
		return models.SleepSettings{}, err
	}

	now := time.Now()
	if s.doc.SleepSettings != nil {
		settings.ID = s.doc.SleepSettings.ID
		settings.CreatedAt = s.doc.SleepSettings.CreatedAt
	} else {
		settings.ID = uuid.New().String()
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now

	s.doc.SleepSettings = &settings
	if err := s.save(); err != nil {
		return models.SleepSettings{}, err
	}
	return settings, nil
}

func (s *JSONStore) DeleteSleepSettings() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.SleepSettings = nil
	return s.save()
}

// ============================================
// Work settings
// ============================================

func (s *JSONStore) GetWorkSettings() (models.WorkSettings, bool, error) {
	if err := s.loaded(); err != nil {
		return models.WorkSettings{}, false, err
	}
	if s.doc.WorkSettings == nil {
		return models.WorkSettings{}, false, nil
	}
	return *s.doc.WorkSettings, true, nil
}

func (s *JSONStore) SaveWorkSettings(settings models.WorkSettings) (models.WorkSettings, error) {
	if err := s.loaded(); err != nil {
		return models.WorkSettings{}, err
	}

	now := time.Now()
	if s.doc.WorkSettings != nil {
		settings.ID = s.doc.WorkSettings.ID
		settings.CreatedAt = s.doc.WorkSettings.CreatedAt
	} else {
		settings.ID = uuid.New().String()
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now

	s.doc.WorkSettings = &settings
	if err := s.save(); err != nil {
		return models.WorkSettings{}, err
	}
	return settings, nil
}

func (s *JSONStore) DeleteWorkSettings() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.WorkSettings = nil
	return s.save()
}

// ============================================
// Task settings
// ============================================

func (s *JSONStore) GetTaskSettings() (models.TaskSettings, error) {
	if err := s.loaded(); err != nil {
		return models.TaskSettings{}, err
	}

	// Materialize defaults on first read so the record always exists.
	if s.doc.TaskSettings == nil {
		defaults := models.DefaultTaskSettings()
		s.doc.TaskSettings = &defaults
		if err := s.save(); err != nil {
			return models.TaskSettings{}, err
		}
	}

	return *s.doc.TaskSettings, nil
}

func (s *JSONStore) SaveTaskSettings(settings models.TaskSettings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.TaskSettings = &settings
	return s.save()
}

// ============================================
// Tasks
// ============================================

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, len(s.doc.Tasks))
	copy(tasks, s.doc.Tasks)
	return tasks, nil
}

func (s *JSONStore) GetActiveTasks() ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(s.doc.Tasks))
	for _, task := range s.doc.Tasks {
		if !task.IsCompleted {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (s *JSONStore) GetCompletedTasks() ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(s.doc.Tasks))
	for _, task := range s.doc.Tasks {
		if task.IsCompleted {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (s *JSONStore) GetCurrentTask() (models.Task, bool, error) {
	if err := s.loaded(); err != nil {
		return models.Task{}, false, err
	}

	for _, task := range s.doc.Tasks {
		if task.IsCurrent && !task.IsCompleted {
			return task, true, nil
		}
	}
	return models.Task{}, false, nil
}

func (s *JSONStore) CountActiveTasks() (int, error) {
	if err := s.loaded(); err != nil {
		return 0, err
	}

	count := 0
	for _, task := range s.doc.Tasks {
		if !task.IsCompleted {
			count++
		}
	}
	return count, nil
}

// SaveTask upserts by id: an existing task is replaced in place, keeping
// its position in the collection; a new one is appended. The active-task
// cap is advisory and deliberately not enforced here; callers check
// CountActiveTasks against TaskSettings before creating.
func (s *JSONStore) SaveTask(task models.Task) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, existing := range s.doc.Tasks {
		if existing.ID == task.ID {
			s.doc.Tasks[i] = task
			return s.save()
		}
	}

	s.doc.Tasks = append(s.doc.Tasks, task)
	return s.save()
}

func (s *JSONStore) DeleteTask(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, task := range s.doc.Tasks {
		if task.ID == id {
			s.doc.Tasks = append(s.doc.Tasks[:i], s.doc.Tasks[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// ToggleTask flips completion. Completing a task stamps CompletedAt and
// forces it out of the current slot; un-completing clears CompletedAt and
// never restores currentness.
func (s *JSONStore) ToggleTask(id string) (models.Task, error) {
	if err := s.loaded(); err != nil {
		return models.Task{}, err
	}

	for i, task := range s.doc.Tasks {
		if task.ID != id {
			continue
		}

		task.IsCompleted = !task.IsCompleted
		if task.IsCompleted {
			now := time.Now()
			task.CompletedAt = &now
			task.IsCurrent = false
		} else {
			task.CompletedAt = nil
		}

		s.doc.Tasks[i] = task
		if err := s.save(); err != nil {
			return models.Task{}, err
		}
		return task, nil
	}

	return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// SetCurrentTask marks the named task current and clears the flag on every
// other task in the same write, which is what keeps the single-current
// invariant. Completed targets are accepted without crashing; callers are
// expected not to ask for them.
func (s *JSONStore) SetCurrentTask(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	found := false
	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == id {
			s.doc.Tasks[i].IsCurrent = true
			found = true
		} else {
			s.doc.Tasks[i].IsCurrent = false
		}
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.save()
}

// AutoArchive physically removes completed tasks whose completion is at
// least thresholdDays of exact elapsed time in the past, and reports how
// many went. Running it again with no newly-eligible tasks removes none.
func (s *JSONStore) AutoArchive(thresholdDays int) (int, error) {
	if err := s.loaded(); err != nil {
		return 0, err
	}

	now := time.Now()
	kept := s.doc.Tasks[:0]
	archived := 0

	for _, task := range s.doc.Tasks {
		if task.IsCompleted && task.CompletedAt != nil {
			days := now.Sub(*task.CompletedAt).Hours() / 24
			if days >= float64(thresholdDays) {
				archived++
				continue
			}
		}
		kept = append(kept, task)
	}

	if archived == 0 {
		return 0, nil
	}

	s.doc.Tasks = kept
	if err := s.save(); err != nil {
		return 0, err
	}
	return archived, nil
}

// ============================================
// Sleep logs
// ============================================

func (s *JSONStore) GetSleepLogs() ([]models.SleepLog, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	logs := make([]models.SleepLog, len(s.doc.SleepLogs))
	copy(logs, s.doc.SleepLogs)
	return logs, nil
}

func (s *JSONStore) GetSleepLogByDate(date string) (models.SleepLog, bool, error) {
	if err := s.loaded(); err != nil {
		return models.SleepLog{}, false, err
	}

	for _, log := range s.doc.SleepLogs {
		if log.Date == date {
			return log, true, nil
		}
	}
	return models.SleepLog{}, false, nil
}

func (s *JSONStore) SaveSleepLog(log models.SleepLog) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, existing := range s.doc.SleepLogs {
		if existing.ID == log.ID {
			s.doc.SleepLogs[i] = log
			return s.save()
		}
	}

	s.doc.SleepLogs = append(s.doc.SleepLogs, log)
	return s.save()
}

func (s *JSONStore) DeleteSleepLog(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, log := range s.doc.SleepLogs {
		if log.ID == id {
			s.doc.SleepLogs = append(s.doc.SleepLogs[:i], s.doc.SleepLogs[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrSleepLogNotFound, id)
}

// ============================================
// Preferences
// ============================================

func (s *JSONStore) GetThemePalette() (models.ThemePalette, error) {
	if err := s.loaded(); err != nil {
		return models.DefaultThemePalette, err
	}
	return models.ParseThemePalette(s.doc.ThemePalette), nil
}

func (s *JSONStore) SaveThemePalette(palette models.ThemePalette) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.ThemePalette = string(palette)
	return s.save()
}

func (s *JSONStore) GetTaskViewMode() (models.TaskViewMode, error) {
	if err := s.loaded(); err != nil {
		return models.DefaultTaskViewMode, err
	}
	return models.ParseTaskViewMode(s.doc.TaskViewMode), nil
}

func (s *JSONStore) SaveTaskViewMode(mode models.TaskViewMode) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.TaskViewMode = string(mode)
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
