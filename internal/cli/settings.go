package cli

import (
	"fmt"

	"hyprtodo/internal/models"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetTaskSettings()
	if err != nil {
		return err
	}
	palette, err := ctx.Store.GetThemePalette()
	if err != nil {
		return err
	}
	mode, err := ctx.Store.GetTaskViewMode()
	if err != nil {
		return err
	}

	fmt.Printf("Max active tasks:  %d\n", settings.MaxActiveTasks)
	fmt.Printf("Auto-archive days: %d\n", settings.AutoArchiveDays)
	fmt.Printf("Theme palette:     %s\n", palette)
	fmt.Printf("Task view mode:    %s\n", mode)
	return nil
}

type SettingsSetCmd struct {
	MaxActive   int `help:"Maximum number of active tasks." placeholder:"N"`
	ArchiveDays int `help:"Days before completed tasks are auto-archived." placeholder:"N"`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetTaskSettings()
	if err != nil {
		return err
	}

	if c.MaxActive == 0 && c.ArchiveDays == 0 {
		return fmt.Errorf("nothing to set, pass --max-active and/or --archive-days")
	}
	if c.MaxActive < 0 || c.ArchiveDays < 0 {
		return fmt.Errorf("limits must be positive")
	}

	if c.MaxActive > 0 {
		settings.MaxActiveTasks = c.MaxActive
	}
	if c.ArchiveDays > 0 {
		settings.AutoArchiveDays = c.ArchiveDays
	}

	if err := ctx.Store.SaveTaskSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Task settings saved: max %d active, archive after %d days\n",
		settings.MaxActiveTasks, settings.AutoArchiveDays)
	return nil
}

type ThemeCmd struct {
	Palette string `arg:"" optional:"" help:"Palette to switch to; omit to list palettes."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	current, err := ctx.Store.GetThemePalette()
	if err != nil {
		return err
	}

	if c.Palette == "" {
		for _, palette := range models.ThemePalettes {
			marker := " "
			if palette == current {
				marker = "*"
			}
			fmt.Printf("%s %s (%s)\n", marker, palette, palette.Name())
		}
		return nil
	}

	// Reject unknown palettes on write; the read side falls back silently.
	if models.ParseThemePalette(c.Palette) != models.ThemePalette(c.Palette) {
		return fmt.Errorf("unknown palette: %s", c.Palette)
	}

	if err := ctx.Store.SaveThemePalette(models.ThemePalette(c.Palette)); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", c.Palette)
	return nil
}

type ViewCmd struct {
	Mode string `arg:"" optional:"" help:"View mode to switch to; omit to list modes."`
}

func (c *ViewCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	current, err := ctx.Store.GetTaskViewMode()
	if err != nil {
		return err
	}

	if c.Mode == "" {
		for _, mode := range models.TaskViewModes {
			marker := " "
			if mode == current {
				marker = "*"
			}
			fmt.Printf("%s %s (%s)\n", marker, mode, mode.Name())
		}
		return nil
	}

	if models.ParseTaskViewMode(c.Mode) != models.TaskViewMode(c.Mode) {
		return fmt.Errorf("unknown view mode: %s", c.Mode)
	}

	if err := ctx.Store.SaveTaskViewMode(models.TaskViewMode(c.Mode)); err != nil {
		return err
	}
	fmt.Printf("Task view set to %s\n", c.Mode)
	return nil
}
