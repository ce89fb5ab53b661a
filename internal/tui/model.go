package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"hyprtodo/internal/models"
	"hyprtodo/internal/storage"
)

type SessionState int

const (
	StateSleep SessionState = iota
	StateTasks
	StateWork
	StateSettings
	StateAddTask
	StateEditSleep
	StateEditWork
	StateEditLimits
)

// tabCount is the number of top-level dashboard tabs; the states after
// them are modal form states.
const tabCount = 4

type TaskFormModel struct {
	Title    string
	Priority models.TaskPriority
	Project  models.TaskProject
	Category models.TaskCategory
	DueDate  string
}

type SleepFormModel struct {
	WakeupTime string
	SleepHours string
	Reminders  bool
}

type WorkFormModel struct {
	StartTime string
	EndTime   string
}

type LimitsFormModel struct {
	MaxActive   string
	ArchiveDays string
}

type Model struct {
	store         storage.Provider
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	styles        Styles

	palette  models.ThemePalette
	viewMode models.TaskViewMode

	now           time.Time
	tasks         []models.Task
	taskSettings  models.TaskSettings
	sleepSettings models.SleepSettings
	hasSleep      bool
	workSettings  models.WorkSettings
	hasWork       bool
	sleepLogs     []models.SleepLog

	cursor int
	status string

	form       *huh.Form
	taskForm   *TaskFormModel
	sleepForm  *SleepFormModel
	workForm   *WorkFormModel
	limitsForm *LimitsFormModel

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) (Model, error) {
	palette, err := store.GetThemePalette()
	if err != nil {
		return Model{}, err
	}
	viewMode, err := store.GetTaskViewMode()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		store:    store,
		state:    StateTasks,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(NewTheme(palette)),
		palette:  palette,
		viewMode: viewMode,
		now:      time.Now(),
	}
	if err := m.refresh(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// refresh re-reads everything the dashboard displays and runs the archive
// sweep so stale completed tasks disappear without an explicit command.
func (m *Model) refresh() error {
	settings, err := m.store.GetTaskSettings()
	if err != nil {
		return err
	}
	m.taskSettings = settings

	if _, err := m.store.AutoArchive(settings.AutoArchiveDays); err != nil {
		return err
	}

	tasks, err := m.store.GetAllTasks()
	if err != nil {
		return err
	}
	m.tasks = tasks
	if m.cursor >= len(tasks) {
		m.cursor = len(tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.sleepSettings, m.hasSleep, err = m.store.GetSleepSettings()
	if err != nil {
		return err
	}
	m.workSettings, m.hasWork, err = m.store.GetWorkSettings()
	if err != nil {
		return err
	}
	m.sleepLogs, err = m.store.GetSleepLogs()
	if err != nil {
		return err
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func newTaskForm(fm *TaskFormModel) *huh.Form {
	priorityOpts := []huh.Option[models.TaskPriority]{
		huh.NewOption("Low", models.PriorityLow),
		huh.NewOption("Medium", models.PriorityMedium),
		huh.NewOption("High", models.PriorityHigh),
	}
	var projectOpts []huh.Option[models.TaskProject]
	for _, p := range models.Projects {
		projectOpts = append(projectOpts, huh.NewOption(string(p), p))
	}
	var categoryOpts []huh.Option[models.TaskCategory]
	for _, c := range models.Categories {
		categoryOpts = append(categoryOpts, huh.NewOption(string(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					if len(s) > models.MaxTitleLength {
						return fmt.Errorf("title cannot exceed %d characters", models.MaxTitleLength)
					}
					return nil
				}),
			huh.NewSelect[models.TaskPriority]().
				Title("Priority").
				Options(priorityOpts...).
				Value(&fm.Priority),
			huh.NewSelect[models.TaskProject]().
				Title("Project").
				Options(projectOpts...).
				Value(&fm.Project),
			huh.NewSelect[models.TaskCategory]().
				Title("Category").
				Options(categoryOpts...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD)").
				Description("Leave empty for no due date").
				Value(&fm.DueDate).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newSleepForm(fm *SleepFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Wake-up Time (HH:MM)").
				Value(&fm.WakeupTime).
				Validate(func(s string) error {
					if _, err := time.Parse("15:04", s); err != nil {
						return fmt.Errorf("invalid time format, use HH:MM")
					}
					return nil
				}),
			huh.NewInput().
				Title("Desired Sleep Hours").
				Description("Rounded to whole 90-minute cycles").
				Value(&fm.SleepHours).
				Validate(func(s string) error {
					h, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("invalid number")
					}
					if h < 1 || h > 24 {
						return fmt.Errorf("sleep hours must be between 1 and 24")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Wind-down Reminders").
				Value(&fm.Reminders),
		),
	).WithTheme(huh.ThemeDracula())
}

func newWorkForm(fm *WorkFormModel) *huh.Form {
	clockValidator := func(s string) error {
		if _, err := time.Parse("15:04", s); err != nil {
			return fmt.Errorf("invalid time format, use HH:MM")
		}
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shift Start (HH:MM)").
				Value(&fm.StartTime).
				Validate(clockValidator),
			huh.NewInput().
				Title("Shift End (HH:MM)").
				Description("An end at or before the start crosses midnight").
				Value(&fm.EndTime).
				Validate(clockValidator),
		),
	).WithTheme(huh.ThemeDracula())
}

func newLimitsForm(fm *LimitsFormModel) *huh.Form {
	positiveInt := func(s string) error {
		i, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid number")
		}
		if i <= 0 {
			return fmt.Errorf("must be a positive number")
		}
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Max Active Tasks").
				Value(&fm.MaxActive).
				Validate(positiveInt),
			huh.NewInput().
				Title("Auto-archive After (days)").
				Value(&fm.ArchiveDays).
				Validate(positiveInt),
		),
	).WithTheme(huh.ThemeDracula())
}

// applyTaskForm persists the completed add-task form, enforcing the active
// task cap.
func (m *Model) applyTaskForm() {
	count, err := m.store.CountActiveTasks()
	if err != nil {
		m.status = err.Error()
		return
	}
	if count >= m.taskSettings.MaxActiveTasks {
		m.status = fmt.Sprintf("Task limit reached (%d active). Complete something first.", count)
		return
	}

	task := models.Task{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(m.taskForm.Title),
		Priority:  m.taskForm.Priority,
		Project:   m.taskForm.Project,
		Category:  m.taskForm.Category,
		DueDate:   m.taskForm.DueDate,
		CreatedAt: time.Now(),
	}
	if err := task.Validate(); err != nil {
		m.status = err.Error()
		return
	}
	if err := m.store.SaveTask(task); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("Added %q", task.Title)
}

func (m *Model) applySleepForm() {
	hours, err := strconv.ParseFloat(m.sleepForm.SleepHours, 64)
	if err != nil {
		m.status = err.Error()
		return
	}
	settings := m.sleepSettings
	settings.WakeupTime = m.sleepForm.WakeupTime
	settings.DesiredSleepHours = hours
	settings.SleepReminders = m.sleepForm.Reminders
	if err := settings.Validate(); err != nil {
		m.status = err.Error()
		return
	}
	if _, err := m.store.SaveSleepSettings(settings); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "Sleep schedule saved"
}

func (m *Model) applyWorkForm() {
	settings := m.workSettings
	settings.StartTime = m.workForm.StartTime
	settings.EndTime = m.workForm.EndTime
	if err := settings.Validate(); err != nil {
		m.status = err.Error()
		return
	}
	if _, err := m.store.SaveWorkSettings(settings); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "Work shift saved"
}

func (m *Model) applyLimitsForm() {
	maxActive, err := strconv.Atoi(m.limitsForm.MaxActive)
	if err != nil {
		m.status = err.Error()
		return
	}
	archiveDays, err := strconv.Atoi(m.limitsForm.ArchiveDays)
	if err != nil {
		m.status = err.Error()
		return
	}
	if err := m.store.SaveTaskSettings(models.TaskSettings{
		MaxActiveTasks:  maxActive,
		AutoArchiveDays: archiveDays,
	}); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "Task limits saved"
}
