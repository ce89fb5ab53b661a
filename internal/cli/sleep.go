package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"hyprtodo/internal/calc"
	"hyprtodo/internal/models"
)

type SleepConfigCmd struct {
	Wakeup    string  `short:"w" help:"Wake-up time (HH:MM)." required:""`
	Hours     float64 `short:"H" help:"Desired sleep hours." required:""`
	Reminders bool    `short:"r" help:"Enable wind-down reminders." negatable:""`
}

func (c *SleepConfigCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings := models.SleepSettings{
		WakeupTime:        c.Wakeup,
		DesiredSleepHours: c.Hours,
		SleepReminders:    c.Reminders,
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	saved, err := ctx.Store.SaveSleepSettings(settings)
	if err != nil {
		return err
	}

	data := calc.SleepData(time.Now(), saved)
	fmt.Printf("Sleep schedule saved: wake up at %s, %d cycles (%.1fh), bedtime %s\n",
		saved.WakeupTime, data.SleepCycles, data.TotalSleepHours, data.RecommendedBedtime)
	if data.TotalSleepHours > saved.DesiredSleepHours {
		fmt.Printf("Note: %.1fh requested rounds up to %d full 90-minute cycles\n",
			saved.DesiredSleepHours, data.SleepCycles)
	}
	return nil
}

type SleepStatusCmd struct{}

func (c *SleepStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, ok, err := ctx.Store.GetSleepSettings()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Sleep schedule not configured yet, run 'hyprtodo sleep config'")
		return nil
	}

	data := calc.SleepData(time.Now(), settings)
	alert := calc.SleepAlert(data.TimeUntilBedtime, settings.SleepReminders)

	fmt.Printf("Wake up:   %s\n", settings.WakeupTime)
	fmt.Printf("Bedtime:   %s (%d cycles, %.1fh)\n", data.RecommendedBedtime, data.SleepCycles, data.TotalSleepHours)
	fmt.Printf("Countdown: %s\n", calc.FormatDuration(data.TimeUntilBedtime))
	if alert.Level != calc.AlertNone {
		fmt.Printf("[%s] %s\n", alert.Level, alert.Message)
	}
	return nil
}

type SleepUnsetCmd struct{}

func (c *SleepUnsetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.DeleteSleepSettings(); err != nil {
		return err
	}
	fmt.Println("Sleep schedule removed")
	return nil
}

type SleepLogAddCmd struct {
	Date    string `short:"d" help:"Date (YYYY-MM-DD), defaults to today."`
	Bedtime string `short:"b" help:"Actual bedtime (HH:MM)."`
	Wakeup  string `short:"w" help:"Actual wake-up (HH:MM)."`
	Rating  int    `short:"q" help:"Quality rating (1-5)."`
	Notes   string `short:"n" help:"Free-form notes."`
}

func (c *SleepLogAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	log := models.SleepLog{
		ID:        uuid.New().String(),
		Date:      date,
		Notes:     c.Notes,
		CreatedAt: time.Now(),
	}
	if c.Bedtime != "" {
		log.ActualBedtime = &c.Bedtime
	}
	if c.Wakeup != "" {
		log.ActualWakeup = &c.Wakeup
	}
	if c.Rating != 0 {
		log.QualityRating = &c.Rating
	}
	if err := log.Validate(); err != nil {
		return err
	}

	// One log per date: editing the same day replaces the existing entry.
	if existing, ok, err := ctx.Store.GetSleepLogByDate(date); err != nil {
		return err
	} else if ok {
		log.ID = existing.ID
		log.CreatedAt = existing.CreatedAt
	}

	if err := ctx.Store.SaveSleepLog(log); err != nil {
		return err
	}
	fmt.Printf("Logged sleep for %s\n", date)
	return nil
}

type SleepLogRmCmd struct {
	Date string `arg:"" help:"Date of the log to remove (YYYY-MM-DD)."`
}

func (c *SleepLogRmCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	log, ok, err := ctx.Store.GetSleepLogByDate(c.Date)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no sleep log for %s", c.Date)
	}

	if err := ctx.Store.DeleteSleepLog(log.ID); err != nil {
		return err
	}
	fmt.Printf("Removed sleep log for %s\n", c.Date)
	return nil
}

type SleepLogListCmd struct{}

func (c *SleepLogListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	logs, err := ctx.Store.GetSleepLogs()
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Println("No sleep logs yet")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Date", "Bedtime", "Wake-up", "Quality", "Notes"})
	for _, log := range logs {
		bedtime, wakeup, rating := "-", "-", "-"
		if log.ActualBedtime != nil {
			bedtime = *log.ActualBedtime
		}
		if log.ActualWakeup != nil {
			wakeup = *log.ActualWakeup
		}
		if log.QualityRating != nil {
			rating = fmt.Sprintf("%d/5", *log.QualityRating)
		}
		tw.AppendRow(table.Row{log.Date, bedtime, wakeup, rating, log.Notes})
	}
	tw.Render()

	return nil
}
