package cli

import (
	"fmt"
	"time"

	"hyprtodo/internal/calc"
	"hyprtodo/internal/models"
)

type WorkConfigCmd struct {
	Start string `short:"s" help:"Shift start time (HH:MM)." required:""`
	End   string `short:"e" help:"Shift end time (HH:MM)." required:""`
}

func (c *WorkConfigCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings := models.WorkSettings{
		StartTime: c.Start,
		EndTime:   c.End,
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	saved, err := ctx.Store.SaveWorkSettings(settings)
	if err != nil {
		return err
	}

	hours := calc.WorkHours(saved.StartTime, saved.EndTime)
	fmt.Printf("Work shift saved: %s - %s (%.1fh)\n", saved.StartTime, saved.EndTime, hours)
	return nil
}

type WorkStatusCmd struct{}

func (c *WorkStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, ok, err := ctx.Store.GetWorkSettings()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Work shift not configured yet, run 'hyprtodo work config'")
		return nil
	}

	data := calc.WorkData(time.Now(), settings)
	fmt.Printf("Shift:     %s - %s (%.1fh)\n", settings.StartTime, settings.EndTime, data.WorkHours)
	fmt.Printf("Clock out: in %s\n", calc.FormatDuration(data.TimeUntilEnd))
	return nil
}

type WorkUnsetCmd struct{}

func (c *WorkUnsetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.DeleteWorkSettings(); err != nil {
		return err
	}
	fmt.Println("Work shift removed")
	return nil
}
