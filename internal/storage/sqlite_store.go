package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"hyprtodo/internal/models"
)

const schemaVersion = 1

// SQLiteStore is the database-backed provider. It offers the same contract
// as the JSON store with row-level writes instead of whole-file rewrites.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// NewMemorySQLiteStore creates an in-memory store for testing.
func NewMemorySQLiteStore() (*SQLiteStore, error) {
	s := NewSQLiteStore(":memory:")
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s.db = db
	if err := s.migrate(); err != nil {
		db.Close()
		s.db = nil
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Init() error {
	if s.path != ":memory:" {
		dir := filepath.Dir(s.path)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if _, err := os.Stat(s.path); err == nil {
			return fmt.Errorf("storage already initialized at %s", s.path)
		}
	}

	return s.open()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if s.path != ":memory:" {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return ErrNotInitialized
		}
	}

	return s.open()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= schemaVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

func (s *SQLiteStore) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS sleep_settings (
		id                  TEXT PRIMARY KEY,
		wakeup_time         TEXT NOT NULL,
		desired_sleep_hours REAL NOT NULL,
		sleep_reminders     INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS work_settings (
		id         TEXT PRIMARY KEY,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS task_settings (
		id                INTEGER PRIMARY KEY CHECK (id = 1),
		max_active_tasks  INTEGER NOT NULL,
		auto_archive_days INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		is_completed INTEGER NOT NULL DEFAULT 0,
		is_current   INTEGER NOT NULL DEFAULT 0,
		priority     TEXT NOT NULL,
		project      TEXT NOT NULL DEFAULT '',
		category     TEXT NOT NULL DEFAULT '',
		due_date     TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		completed_at TEXT,
		position     INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(is_completed);

	CREATE TABLE IF NOT EXISTS sleep_logs (
		id             TEXT PRIMARY KEY,
		date           TEXT NOT NULL,
		actual_bedtime TEXT,
		actual_wakeup  TEXT,
		quality_rating INTEGER,
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sleep_logs_date ON sleep_logs(date);

	CREATE TABLE IF NOT EXISTS preferences (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *SQLiteStore) ready() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// ============================================
// Sleep settings
// ============================================

func (s *SQLiteStore) GetSleepSettings() (models.SleepSettings, bool, error) {
	if err := s.ready(); err != nil {
		return models.SleepSettings{}, false, err
	}

	var settings models.SleepSettings
	var reminders int
	var createdAt, updatedAt string
	err := s.db.QueryRow(
		`SELECT id, wakeup_time, desired_sleep_hours, sleep_reminders, created_at, updated_at FROM sleep_settings`,
	).Scan(&settings.ID, &settings.WakeupTime, &settings.DesiredSleepHours, &reminders, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SleepSettings{}, false, nil
	}
	if err != nil {
		return models.SleepSettings{}, false, fmt.Errorf("get sleep settings: %w", err)
	}

	settings.SleepReminders = reminders != 0
	settings.CreatedAt = parseTimestamp(createdAt)
	settings.UpdatedAt = parseTimestamp(updatedAt)
	return settings, true, nil
}

func (s *SQLiteStore) SaveSleepSettings(settings models.SleepSettings) (models.SleepSettings, error) {
	if err := s.ready(); err != nil {
		return models.SleepSettings{}, err
	}

	existing, ok, err := s.GetSleepSettings()
	if err != nil {
		return models.SleepSettings{}, err
	}

	now := time.Now()
	if ok {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	} else {
		settings.ID = uuid.New().String()
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now

	reminders := 0
	if settings.SleepReminders {
		reminders = 1
	}

	_, err = s.db.Exec(
		`INSERT INTO sleep_settings (id, wakeup_time, desired_sleep_hours, sleep_reminders, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   wakeup_time = excluded.wakeup_time,
		   desired_sleep_hours = excluded.desired_sleep_hours,
		   sleep_reminders = excluded.sleep_reminders,
		   updated_at = excluded.updated_at`,
		settings.ID, settings.WakeupTime, settings.DesiredSleepHours, reminders,
		formatTimestamp(settings.CreatedAt), formatTimestamp(settings.UpdatedAt),
	)
	if err != nil {
		return models.SleepSettings{}, fmt.Errorf("save sleep settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) DeleteSleepSettings() error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM sleep_settings`)
	return err
}

// ============================================
// Work settings
// ============================================

func (s *SQLiteStore) GetWorkSettings() (models.WorkSettings, bool, error) {
	if err := s.ready(); err != nil {
		return models.WorkSettings{}, false, err
	}

	var settings models.WorkSettings
	var createdAt, updatedAt string
	err := s.db.QueryRow(
		`SELECT id, start_time, end_time, created_at, updated_at FROM work_settings`,
	).Scan(&settings.ID, &settings.StartTime, &settings.EndTime, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WorkSettings{}, false, nil
	}
	if err != nil {
		return models.WorkSettings{}, false, fmt.Errorf("get work settings: %w", err)
	}

	settings.CreatedAt = parseTimestamp(createdAt)
	settings.UpdatedAt = parseTimestamp(updatedAt)
	return settings, true, nil
}

func (s *SQLiteStore) SaveWorkSettings(settings models.WorkSettings) (models.WorkSettings, error) {
	if err := s.ready(); err != nil {
		return models.WorkSettings{}, err
	}

	existing, ok, err := s.GetWorkSettings()
	if err != nil {
		return models.WorkSettings{}, err
	}

	now := time.Now()
	if ok {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	} else {
		settings.ID = uuid.New().String()
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now

	_, err = s.db.Exec(
		`INSERT INTO work_settings (id, start_time, end_time, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   start_time = excluded.start_time,
		   end_time = excluded.end_time,
		   updated_at = excluded.updated_at`,
		settings.ID, settings.StartTime, settings.EndTime,
		formatTimestamp(settings.CreatedAt), formatTimestamp(settings.UpdatedAt),
	)
	if err != nil {
		return models.WorkSettings{}, fmt.Errorf("save work settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) DeleteWorkSettings() error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM work_settings`)
	return err
}

// ============================================
// Task settings
// ============================================

func (s *SQLiteStore) GetTaskSettings() (models.TaskSettings, error) {
	if err := s.ready(); err != nil {
		return models.TaskSettings{}, err
	}

	var settings models.TaskSettings
	err := s.db.QueryRow(
		`SELECT max_active_tasks, auto_archive_days FROM task_settings WHERE id = 1`,
	).Scan(&settings.MaxActiveTasks, &settings.AutoArchiveDays)
	if errors.Is(err, sql.ErrNoRows) {
		settings = models.DefaultTaskSettings()
		if saveErr := s.SaveTaskSettings(settings); saveErr != nil {
			return models.TaskSettings{}, saveErr
		}
		return settings, nil
	}
	if err != nil {
		return models.TaskSettings{}, fmt.Errorf("get task settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveTaskSettings(settings models.TaskSettings) error {
	if err := s.ready(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		`INSERT INTO task_settings (id, max_active_tasks, auto_archive_days) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   max_active_tasks = excluded.max_active_tasks,
		   auto_archive_days = excluded.auto_archive_days`,
		settings.MaxActiveTasks, settings.AutoArchiveDays,
	)
	if err != nil {
		return fmt.Errorf("save task settings: %w", err)
	}
	return nil
}

// ============================================
// Tasks
// ============================================

func (s *SQLiteStore) queryTasks(where string, args ...any) ([]models.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, is_completed, is_current, priority, project, category, due_date, created_at, completed_at
		 FROM tasks `+where+` ORDER BY position`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		var completed, current int
		var createdAt string
		var completedAt sql.NullString
		if err := rows.Scan(&task.ID, &task.Title, &completed, &current, &task.Priority,
			&task.Project, &task.Category, &task.DueDate, &createdAt, &completedAt); err != nil {
			return nil, err
		}

		task.IsCompleted = completed != 0
		task.IsCurrent = current != 0
		task.CreatedAt = parseTimestamp(createdAt)
		if completedAt.Valid {
			t := parseTimestamp(completedAt.String)
			task.CompletedAt = &t
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) GetAllTasks() ([]models.Task, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryTasks("")
}

func (s *SQLiteStore) GetActiveTasks() ([]models.Task, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryTasks("WHERE is_completed = 0")
}

func (s *SQLiteStore) GetCompletedTasks() ([]models.Task, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryTasks("WHERE is_completed = 1")
}

func (s *SQLiteStore) GetCurrentTask() (models.Task, bool, error) {
	if err := s.ready(); err != nil {
		return models.Task{}, false, err
	}

	tasks, err := s.queryTasks("WHERE is_current = 1 AND is_completed = 0")
	if err != nil {
		return models.Task{}, false, err
	}
	if len(tasks) == 0 {
		return models.Task{}, false, nil
	}
	return tasks[0], true, nil
}

func (s *SQLiteStore) CountActiveTasks() (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE is_completed = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active tasks: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) SaveTask(task models.Task) error {
	if err := s.ready(); err != nil {
		return err
	}

	completed, current := 0, 0
	if task.IsCompleted {
		completed = 1
	}
	if task.IsCurrent {
		current = 1
	}

	var completedAt any
	if task.CompletedAt != nil {
		completedAt = formatTimestamp(*task.CompletedAt)
	}

	// New tasks append at the end; upserts keep their position.
	_, err := s.db.Exec(
		`INSERT INTO tasks (id, title, is_completed, is_current, priority, project, category, due_date, created_at, completed_at, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM tasks))
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   is_completed = excluded.is_completed,
		   is_current = excluded.is_current,
		   priority = excluded.priority,
		   project = excluded.project,
		   category = excluded.category,
		   due_date = excluded.due_date,
		   completed_at = excluded.completed_at`,
		task.ID, task.Title, completed, current, string(task.Priority),
		string(task.Project), string(task.Category), task.DueDate,
		formatTimestamp(task.CreatedAt), completedAt,
	)
	if err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteTask(id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) ToggleTask(id string) (models.Task, error) {
	if err := s.ready(); err != nil {
		return models.Task{}, err
	}

	tasks, err := s.queryTasks("WHERE id = ?", id)
	if err != nil {
		return models.Task{}, err
	}
	if len(tasks) == 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	task := tasks[0]
	task.IsCompleted = !task.IsCompleted
	if task.IsCompleted {
		now := time.Now()
		task.CompletedAt = &now
		task.IsCurrent = false
	} else {
		task.CompletedAt = nil
	}

	if err := s.SaveTask(task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *SQLiteStore) SetCurrentTask(id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE tasks SET is_current = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("set current task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	if _, err := tx.Exec(`UPDATE tasks SET is_current = 0 WHERE id != ?`, id); err != nil {
		return fmt.Errorf("clear current tasks: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) AutoArchive(thresholdDays int) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-time.Duration(thresholdDays) * 24 * time.Hour)
	res, err := s.db.Exec(
		`DELETE FROM tasks WHERE is_completed = 1 AND completed_at IS NOT NULL AND completed_at <= ?`,
		formatTimestamp(cutoff),
	)
	if err != nil {
		return 0, fmt.Errorf("auto archive: %w", err)
	}

	n, err := res.RowsAffected()
	return int(n), err
}

// ============================================
// Sleep logs
// ============================================

func (s *SQLiteStore) querySleepLogs(where string, args ...any) ([]models.SleepLog, error) {
	rows, err := s.db.Query(
		`SELECT id, date, actual_bedtime, actual_wakeup, quality_rating, notes, created_at
		 FROM sleep_logs `+where+` ORDER BY date`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query sleep logs: %w", err)
	}
	defer rows.Close()

	logs := []models.SleepLog{}
	for rows.Next() {
		var log models.SleepLog
		var bedtime, wakeup sql.NullString
		var rating sql.NullInt64
		var createdAt string
		if err := rows.Scan(&log.ID, &log.Date, &bedtime, &wakeup, &rating, &log.Notes, &createdAt); err != nil {
			return nil, err
		}

		if bedtime.Valid {
			log.ActualBedtime = &bedtime.String
		}
		if wakeup.Valid {
			log.ActualWakeup = &wakeup.String
		}
		if rating.Valid {
			r := int(rating.Int64)
			log.QualityRating = &r
		}
		log.CreatedAt = parseTimestamp(createdAt)
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (s *SQLiteStore) GetSleepLogs() ([]models.SleepLog, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.querySleepLogs("")
}

func (s *SQLiteStore) GetSleepLogByDate(date string) (models.SleepLog, bool, error) {
	if err := s.ready(); err != nil {
		return models.SleepLog{}, false, err
	}

	logs, err := s.querySleepLogs("WHERE date = ?", date)
	if err != nil {
		return models.SleepLog{}, false, err
	}
	if len(logs) == 0 {
		return models.SleepLog{}, false, nil
	}
	return logs[0], true, nil
}

func (s *SQLiteStore) SaveSleepLog(log models.SleepLog) error {
	if err := s.ready(); err != nil {
		return err
	}

	var bedtime, wakeup, rating any
	if log.ActualBedtime != nil {
		bedtime = *log.ActualBedtime
	}
	if log.ActualWakeup != nil {
		wakeup = *log.ActualWakeup
	}
	if log.QualityRating != nil {
		rating = *log.QualityRating
	}

	_, err := s.db.Exec(
		`INSERT INTO sleep_logs (id, date, actual_bedtime, actual_wakeup, quality_rating, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   date = excluded.date,
		   actual_bedtime = excluded.actual_bedtime,
		   actual_wakeup = excluded.actual_wakeup,
		   quality_rating = excluded.quality_rating,
		   notes = excluded.notes`,
		log.ID, log.Date, bedtime, wakeup, rating, log.Notes, formatTimestamp(log.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("save sleep log: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteSleepLog(id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.Exec(`DELETE FROM sleep_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete sleep log: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSleepLogNotFound, id)
	}
	return nil
}

// ============================================
// Preferences
// ============================================

func (s *SQLiteStore) getPreference(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) setPreference(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *SQLiteStore) GetThemePalette() (models.ThemePalette, error) {
	if err := s.ready(); err != nil {
		return models.DefaultThemePalette, err
	}
	value, err := s.getPreference("theme_palette")
	if err != nil {
		return models.DefaultThemePalette, err
	}
	return models.ParseThemePalette(value), nil
}

func (s *SQLiteStore) SaveThemePalette(palette models.ThemePalette) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.setPreference("theme_palette", string(palette))
}

func (s *SQLiteStore) GetTaskViewMode() (models.TaskViewMode, error) {
	if err := s.ready(); err != nil {
		return models.DefaultTaskViewMode, err
	}
	value, err := s.getPreference("task_view_mode")
	if err != nil {
		return models.DefaultTaskViewMode, err
	}
	return models.ParseTaskViewMode(value), nil
}

func (s *SQLiteStore) SaveTaskViewMode(mode models.TaskViewMode) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.setPreference("task_view_mode", string(mode))
}

// GetConfigPath returns the path to the underlying database file.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// RFC3339 at second precision keeps stored timestamps fixed-width, so the
// lexicographic comparison in AutoArchive's DELETE matches time order.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
