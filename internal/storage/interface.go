package storage

import (
	"errors"

	"hyprtodo/internal/models"
)

var (
	// ErrNotInitialized is returned by Load when no store exists yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'hyprtodo init' first")

	// ErrTaskNotFound is returned by task mutations given an unknown id, so
	// callers can tell "nothing to do" apart from "did the expected thing".
	ErrTaskNotFound = errors.New("task not found")

	// ErrSleepLogNotFound is the sleep log equivalent of ErrTaskNotFound.
	ErrSleepLogNotFound = errors.New("sleep log not found")
)

// Provider is the persistence contract shared by the JSON and SQLite
// stores. Settings lookups report absence as a boolean, not an error:
// "not configured yet" is an expected state.
//
// Providers are not safe for concurrent use by multiple goroutines or
// processes; the application has a single logical writer and last write
// wins.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Sleep settings (single record)
	GetSleepSettings() (models.SleepSettings, bool, error)
	SaveSleepSettings(models.SleepSettings) (models.SleepSettings, error)
	DeleteSleepSettings() error

	// Work settings (single record)
	GetWorkSettings() (models.WorkSettings, bool, error)
	SaveWorkSettings(models.WorkSettings) (models.WorkSettings, error)
	DeleteWorkSettings() error

	// Task settings (single record, materialized with defaults)
	GetTaskSettings() (models.TaskSettings, error)
	SaveTaskSettings(models.TaskSettings) error

	// Tasks (ordered collection)
	GetAllTasks() ([]models.Task, error)
	GetActiveTasks() ([]models.Task, error)
	GetCompletedTasks() ([]models.Task, error)
	GetCurrentTask() (models.Task, bool, error)
	CountActiveTasks() (int, error)
	SaveTask(models.Task) error
	DeleteTask(id string) error
	ToggleTask(id string) (models.Task, error)
	SetCurrentTask(id string) error
	AutoArchive(thresholdDays int) (int, error)

	// Sleep logs (ordered collection)
	GetSleepLogs() ([]models.SleepLog, error)
	GetSleepLogByDate(date string) (models.SleepLog, bool, error)
	SaveSleepLog(models.SleepLog) error
	DeleteSleepLog(id string) error

	// Preferences
	GetThemePalette() (models.ThemePalette, error)
	SaveThemePalette(models.ThemePalette) error
	GetTaskViewMode() (models.TaskViewMode, error)
	SaveTaskViewMode(models.TaskViewMode) error

	// Utils
	GetConfigPath() string
}
