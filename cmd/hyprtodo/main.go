package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"hyprtodo/internal/cli"
	"hyprtodo/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Store   string `help:"Storage file path." type:"path" default:"~/.config/hyprtodo/hyprtodo.json"`

	Init cli.InitCmd `cmd:"" help:"Initialize hyprtodo storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Task struct {
		Add     cli.TaskAddCmd     `cmd:"" help:"Add a new task."`
		List    cli.TaskListCmd    `cmd:"" help:"List tasks."`
		Done    cli.TaskDoneCmd    `cmd:"" help:"Toggle a task's completion."`
		Current cli.TaskCurrentCmd `cmd:"" help:"Show or set the current task."`
		Rm      cli.TaskRmCmd      `cmd:"" help:"Delete a task."`
		Archive cli.TaskArchiveCmd `cmd:"" help:"Remove completed tasks older than the archive threshold."`
	} `cmd:"" help:"Manage tasks."`
	Sleep struct {
		Config cli.SleepConfigCmd `cmd:"" help:"Configure the sleep schedule."`
		Status cli.SleepStatusCmd `cmd:"" help:"Show bedtime, countdown and reminders."`
		Unset  cli.SleepUnsetCmd  `cmd:"" help:"Remove the sleep schedule."`
		Log    struct {
			Add  cli.SleepLogAddCmd  `cmd:"" help:"Record last night's sleep."`
			List cli.SleepLogListCmd `cmd:"" help:"List recorded sleep logs."`
			Rm   cli.SleepLogRmCmd   `cmd:"" help:"Remove a sleep log."`
		} `cmd:"" help:"Track actual sleep."`
	} `cmd:"" help:"Sleep schedule advisor."`
	Work struct {
		Config cli.WorkConfigCmd `cmd:"" help:"Configure the work shift."`
		Status cli.WorkStatusCmd `cmd:"" help:"Show shift hours and clock-out countdown."`
		Unset  cli.WorkUnsetCmd  `cmd:"" help:"Remove the work shift."`
	} `cmd:"" help:"Work shift timer."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show task limits and preferences." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Change task limits."`
	} `cmd:"" help:"Task limits and preferences."`
	Theme  cli.ThemeCmd  `cmd:"" help:"Show or switch the theme palette."`
	View   cli.ViewCmd   `cmd:"" help:"Show or switch the task view mode."`
	Export cli.ExportCmd `cmd:"" help:"Export the dashboard state to a file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hyprtodo"),
		kong.Description("Personal dashboard: capped to-do list, sleep advisor and work shift timer"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Store, ".json") {
		store = storage.NewJSONStore(CLI.Store)
	} else {
		store = storage.NewSQLiteStore(CLI.Store)
	}

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
