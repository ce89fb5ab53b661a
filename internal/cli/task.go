package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"hyprtodo/internal/models"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Priority string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Project  string `help:"Project tag."`
	Category string `help:"Category tag."`
	Due      string `help:"Due date (YYYY-MM-DD)."`
	Force    bool   `help:"Create even past the active task limit."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	priority, err := parsePriority(c.Priority)
	if err != nil {
		return err
	}

	task := models.Task{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Priority:  priority,
		Project:   models.TaskProject(c.Project),
		Category:  models.TaskCategory(c.Category),
		DueDate:   c.Due,
		CreatedAt: time.Now(),
	}
	if err := task.Validate(); err != nil {
		return err
	}

	// The store itself is permissive about the cap; the check lives here.
	if !c.Force {
		settings, err := ctx.Store.GetTaskSettings()
		if err != nil {
			return err
		}
		active, err := ctx.Store.CountActiveTasks()
		if err != nil {
			return err
		}
		if active >= settings.MaxActiveTasks {
			return fmt.Errorf("active task limit reached (%d); complete or archive something first, or pass --force", settings.MaxActiveTasks)
		}
	}

	if err := ctx.Store.SaveTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (%s)\n", task.Title, shortID(task.ID))
	return nil
}

type TaskListCmd struct {
	All       bool `short:"a" help:"Include completed tasks."`
	Completed bool `short:"c" help:"Show only completed tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var tasks []models.Task
	var err error
	switch {
	case c.Completed:
		tasks, err = ctx.Store.GetCompletedTasks()
	case c.All:
		tasks, err = ctx.Store.GetAllTasks()
	default:
		tasks, err = ctx.Store.GetActiveTasks()
	}
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	now := time.Now()
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Title", "Status", "Priority", "Project", "Category", "Due"})
	for _, task := range tasks {
		status := "active"
		if task.IsCompleted {
			status = "done"
		} else if task.IsCurrent {
			status = "current"
		}
		due := task.DueDate
		if overdue(task, now) {
			due += " (overdue)"
		}
		tw.AppendRow(table.Row{shortID(task.ID), task.Title, status, task.Priority, task.Project, task.Category, due})
	}
	tw.Render()

	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := resolveTaskID(ctx, c.ID)
	if err != nil {
		return err
	}

	toggled, err := ctx.Store.ToggleTask(task.ID)
	if err != nil {
		return err
	}

	if toggled.IsCompleted {
		fmt.Printf("Completed: %s\n", toggled.Title)
	} else {
		fmt.Printf("Reopened: %s\n", toggled.Title)
	}
	return nil
}

type TaskCurrentCmd struct {
	ID string `arg:"" optional:"" help:"Task id to make current; omit to show the current task."`
}

func (c *TaskCurrentCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.ID == "" {
		current, ok, err := ctx.Store.GetCurrentTask()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("No current task")
			return nil
		}
		fmt.Printf("Current: %s (%s, %s)\n", current.Title, current.Priority, shortID(current.ID))
		return nil
	}

	task, err := resolveTaskID(ctx, c.ID)
	if err != nil {
		return err
	}
	if task.IsCompleted {
		return fmt.Errorf("cannot set a completed task as current: %s", task.Title)
	}

	if err := ctx.Store.SetCurrentTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Now working on: %s\n", task.Title)
	return nil
}

type TaskRmCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskRmCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := resolveTaskID(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted: %s\n", task.Title)
	return nil
}

type TaskArchiveCmd struct {
	Days int `short:"d" help:"Override the auto-archive threshold in days."`
}

func (c *TaskArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	days := c.Days
	if days <= 0 {
		settings, err := ctx.Store.GetTaskSettings()
		if err != nil {
			return err
		}
		days = settings.AutoArchiveDays
	}

	removed, err := ctx.Store.AutoArchive(days)
	if err != nil {
		return err
	}

	switch removed {
	case 0:
		fmt.Println("Nothing to archive")
	case 1:
		fmt.Println("Archived 1 task")
	default:
		fmt.Printf("Archived %d tasks\n", removed)
	}
	return nil
}

// overdue reports whether a task's due date has passed.
func overdue(task models.Task, now time.Time) bool {
	if task.DueDate == "" || task.IsCompleted {
		return false
	}
	due, err := time.Parse("2006-01-02", task.DueDate)
	if err != nil {
		return false
	}
	return now.After(due.AddDate(0, 0, 1))
}
