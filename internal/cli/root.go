package cli

import (
	"fmt"

	"hyprtodo/internal/models"
	"hyprtodo/internal/storage"
)

type Context struct {
	Store storage.Provider
}

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized hyprtodo storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

func parsePriority(s string) (models.TaskPriority, error) {
	switch s {
	case "low":
		return models.PriorityLow, nil
	case "medium":
		return models.PriorityMedium, nil
	case "high":
		return models.PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority: %s (expected low|medium|high)", s)
	}
}

// shortID trims a uuid down to the first segment for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveTaskID accepts either a full id or a unique short prefix.
func resolveTaskID(ctx *Context, prefix string) (models.Task, error) {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return models.Task{}, err
	}

	var match models.Task
	found := 0
	for _, task := range tasks {
		if task.ID == prefix {
			return task, nil
		}
		if len(prefix) >= 4 && len(task.ID) >= len(prefix) && task.ID[:len(prefix)] == prefix {
			match = task
			found++
		}
	}

	switch found {
	case 0:
		return models.Task{}, fmt.Errorf("%w: %s", storage.ErrTaskNotFound, prefix)
	case 1:
		return match, nil
	default:
		return models.Task{}, fmt.Errorf("ambiguous task id prefix: %s", prefix)
	}
}
