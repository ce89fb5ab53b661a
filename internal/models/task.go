package models

import (
	"fmt"
	"time"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskProject identifies the project a task belongs to. The set is fixed;
// edit here to change it across the whole application.
type TaskProject string

const (
	ProjectMHBackend     TaskProject = "MH-Backend"
	ProjectWailsLetterMH TaskProject = "Wails-Letter-MH"
	ProjectMHNext        TaskProject = "MH-Next"
	ProjectLaCantera     TaskProject = "La Cantera"
	ProjectGeneral       TaskProject = "general"
)

// TaskCategory classifies the kind of work a task represents.
type TaskCategory string

const (
	CategoryIssues   TaskCategory = "issues"
	CategoryFixes    TaskCategory = "fixes"
	CategoryHotfix   TaskCategory = "hotfix"
	CategoryFeatures TaskCategory = "features"
	CategoryGeneral  TaskCategory = "general"
)

var Projects = []TaskProject{
	ProjectMHBackend,
	ProjectWailsLetterMH,
	ProjectMHNext,
	ProjectLaCantera,
	ProjectGeneral,
}

var Categories = []TaskCategory{
	CategoryIssues,
	CategoryFixes,
	CategoryHotfix,
	CategoryFeatures,
	CategoryGeneral,
}

// MaxTitleLength bounds task titles.
const MaxTitleLength = 200

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	IsCompleted bool         `json:"is_completed"`
	IsCurrent   bool         `json:"is_current"`
	Priority    TaskPriority `json:"priority"`
	Project     TaskProject  `json:"project,omitempty"`
	Category    TaskCategory `json:"category,omitempty"`
	DueDate     string       `json:"due_date,omitempty"` // YYYY-MM-DD format
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if len(t.Title) > MaxTitleLength {
		return fmt.Errorf("task title cannot exceed %d characters", MaxTitleLength)
	}

	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}

	if t.Project != "" && !validProject(t.Project) {
		return fmt.Errorf("invalid project: %s", t.Project)
	}
	if t.Category != "" && !validCategory(t.Category) {
		return fmt.Errorf("invalid category: %s", t.Category)
	}

	if t.DueDate != "" {
		if _, err := time.Parse("2006-01-02", t.DueDate); err != nil {
			return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %w", err)
		}
	}

	return nil
}

func validProject(p TaskProject) bool {
	for _, known := range Projects {
		if p == known {
			return true
		}
	}
	return false
}

func validCategory(c TaskCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// TaskSettings holds the collection-wide task limits.
type TaskSettings struct {
	MaxActiveTasks  int `json:"max_active_tasks"`
	AutoArchiveDays int `json:"auto_archive_days"`
}

const (
	DefaultMaxActiveTasks  = 5
	DefaultAutoArchiveDays = 7
)

// DefaultTaskSettings returns the settings applied before the user has
// configured anything.
func DefaultTaskSettings() TaskSettings {
	return TaskSettings{
		MaxActiveTasks:  DefaultMaxActiveTasks,
		AutoArchiveDays: DefaultAutoArchiveDays,
	}
}
