package cli

import (
	"fmt"

	"hyprtodo/internal/export"
)

type ExportCmd struct {
	Format string `short:"f" help:"Export format (json|csv)." default:"json" enum:"json,csv"`
	Out    string `short:"o" help:"Output file path." required:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	switch c.Format {
	case "json":
		snapshot, err := export.Collect(ctx.Store)
		if err != nil {
			return err
		}
		if err := export.ToJSON(snapshot, c.Out); err != nil {
			return err
		}
	case "csv":
		tasks, err := ctx.Store.GetAllTasks()
		if err != nil {
			return err
		}
		if err := export.ToCSV(tasks, c.Out); err != nil {
			return err
		}
	}

	fmt.Printf("Exported %s to %s\n", c.Format, c.Out)
	return nil
}
