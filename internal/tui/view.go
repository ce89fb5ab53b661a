package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hyprtodo/internal/calc"
	"hyprtodo/internal/models"
)

var tabNames = []string{"Sleep", "Tasks", "Work", "Settings"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state >= tabCount && m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.viewTabs(),
			m.styles.Panel.Render(m.form.View()),
		)
	}

	var content string
	switch m.state {
	case StateSleep:
		content = m.viewSleep()
	case StateTasks:
		content = m.viewTasks()
	case StateWork:
		content = m.viewWork()
	case StateSettings:
		content = m.viewSettings()
	}

	sections := []string{
		m.viewTabs(),
		m.styles.Panel.Render(content),
	}
	if m.status != "" {
		sections = append(sections, m.styles.Warning.Render(m.status))
	}
	sections = append(sections, m.styles.Help.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if SessionState(i) == m.state || (m.state >= tabCount && SessionState(i) == m.previousState) {
			tabs = append(tabs, m.styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) viewSleep() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Sleep Schedule") + "\n\n")

	if !m.hasSleep {
		b.WriteString(m.styles.Muted.Render("No sleep schedule configured. Press e to set one."))
		return b.String()
	}

	data := calc.SleepData(m.now, m.sleepSettings)
	b.WriteString(fmt.Sprintf("Wake-up:          %s\n", m.styles.Subtitle.Render(m.sleepSettings.WakeupTime)))
	b.WriteString(fmt.Sprintf("Bedtime:          %s\n", m.styles.Current.Render(data.RecommendedBedtime)))
	b.WriteString(fmt.Sprintf("Sleep cycles:     %d (%.1fh)\n", data.SleepCycles, data.TotalSleepHours))
	b.WriteString(fmt.Sprintf("Until bedtime:    %s\n", calc.FormatDuration(data.TimeUntilBedtime)))

	alert := calc.SleepAlert(data.TimeUntilBedtime, m.sleepSettings.SleepReminders)
	switch alert.Level {
	case calc.AlertCritical:
		b.WriteString("\n" + m.styles.Critical.Render("⚠ "+alert.Message) + "\n")
	case calc.AlertWarning:
		b.WriteString("\n" + m.styles.Warning.Render("⚠ "+alert.Message) + "\n")
	}

	if len(m.sleepLogs) > 0 {
		b.WriteString("\n" + m.styles.Subtitle.Render("Recent sleep") + "\n")
		b.WriteString(fmt.Sprintf("Nights logged:    %d\n", len(m.sleepLogs)))
		if avg, ok := averageQuality(m.sleepLogs); ok {
			b.WriteString(fmt.Sprintf("Average quality:  %.1f / 5\n", avg))
		}
	}

	return b.String()
}

func (m Model) viewTasks() string {
	active := 0
	for _, t := range m.tasks {
		if !t.IsCompleted {
			active++
		}
	}

	header := m.styles.Title.Render("Tasks") + "  " +
		m.styles.Muted.Render(fmt.Sprintf("%d/%d active · %s view",
			active, m.taskSettings.MaxActiveTasks, m.viewMode.Name()))

	return header + "\n\n" + renderTaskView(m.viewMode, m.tasks, m.cursor, m.styles)
}

func (m Model) viewWork() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Work Shift") + "\n\n")

	if !m.hasWork {
		b.WriteString(m.styles.Muted.Render("No work shift configured. Press e to set one."))
		return b.String()
	}

	data := calc.WorkData(m.now, m.workSettings)
	b.WriteString(fmt.Sprintf("Shift:            %s – %s\n",
		m.styles.Subtitle.Render(m.workSettings.StartTime),
		m.styles.Subtitle.Render(m.workSettings.EndTime)))
	b.WriteString(fmt.Sprintf("Shift length:     %.1fh\n", data.WorkHours))
	b.WriteString(fmt.Sprintf("Until clock-out:  %s\n", m.styles.Current.Render(calc.FormatDuration(data.TimeUntilEnd))))

	return b.String()
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Settings") + "\n\n")
	b.WriteString(fmt.Sprintf("Max active tasks:  %d\n", m.taskSettings.MaxActiveTasks))
	b.WriteString(fmt.Sprintf("Auto-archive:      after %d days\n", m.taskSettings.AutoArchiveDays))
	b.WriteString(fmt.Sprintf("Theme:             %s\n", m.palette.Name()))
	b.WriteString(fmt.Sprintf("Task view:         %s\n", m.viewMode.Name()))
	b.WriteString("\n" + m.styles.Muted.Render("Storage: "+m.store.GetConfigPath()))
	return b.String()
}

func averageQuality(logs []models.SleepLog) (float64, bool) {
	sum, n := 0, 0
	for _, l := range logs {
		if l.QualityRating != nil {
			sum += *l.QualityRating
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
