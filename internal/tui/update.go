package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"hyprtodo/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if err := m.refresh(); err != nil {
			m.status = err.Error()
		}
		return m, tick()

	case tea.KeyMsg:
		if m.state >= tabCount && m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateTabs(msg)
	}

	if m.state >= tabCount && m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateTabs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		m.cursor = 0

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		m.cursor = 0

	case key.Matches(msg, m.keys.Theme):
		m.palette = m.palette.Next()
		m.styles = NewStyles(NewTheme(m.palette))
		if err := m.store.SaveThemePalette(m.palette); err != nil {
			m.status = err.Error()
		}

	case key.Matches(msg, m.keys.View):
		if m.state == StateTasks {
			m.viewMode = m.viewMode.Next()
			if err := m.store.SaveTaskViewMode(m.viewMode); err != nil {
				m.status = err.Error()
			}
		}

	case key.Matches(msg, m.keys.Add):
		if m.state == StateTasks {
			return m.openTaskForm()
		}

	case key.Matches(msg, m.keys.Edit):
		switch m.state {
		case StateSleep:
			return m.openSleepForm()
		case StateWork:
			return m.openWorkForm()
		case StateSettings:
			return m.openLimitsForm()
		}

	case key.Matches(msg, m.keys.Up):
		if m.state == StateTasks && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.state == StateTasks && m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.state == StateTasks {
			if task, ok := m.selectedTask(); ok {
				if _, err := m.store.ToggleTask(task.ID); err != nil {
					m.status = err.Error()
				} else if err := m.refresh(); err != nil {
					m.status = err.Error()
				}
			}
		}

	case key.Matches(msg, m.keys.Current):
		if m.state == StateTasks {
			if task, ok := m.selectedTask(); ok {
				if task.IsCompleted {
					m.status = "A completed task cannot be the current task"
				} else if err := m.store.SetCurrentTask(task.ID); err != nil {
					m.status = err.Error()
				} else if err := m.refresh(); err != nil {
					m.status = err.Error()
				}
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if m.state == StateTasks {
			if task, ok := m.selectedTask(); ok {
				if err := m.store.DeleteTask(task.ID); err != nil {
					m.status = err.Error()
				} else if err := m.refresh(); err != nil {
					m.status = err.Error()
				}
			}
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateAddTask:
			m.applyTaskForm()
		case StateEditSleep:
			m.applySleepForm()
		case StateEditWork:
			m.applyWorkForm()
		case StateEditLimits:
			m.applyLimitsForm()
		}
		m.state = m.previousState
		m.form = nil
		if err := m.refresh(); err != nil {
			m.status = err.Error()
		}
		return m, nil

	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) selectedTask() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	m.taskForm = &TaskFormModel{}
	m.form = newTaskForm(m.taskForm)
	m.previousState = m.state
	m.state = StateAddTask
	return m, m.form.Init()
}

func (m Model) openSleepForm() (tea.Model, tea.Cmd) {
	fm := &SleepFormModel{WakeupTime: "07:00", SleepHours: "8", Reminders: true}
	if m.hasSleep {
		fm.WakeupTime = m.sleepSettings.WakeupTime
		fm.SleepHours = strconv.FormatFloat(m.sleepSettings.DesiredSleepHours, 'f', -1, 64)
		fm.Reminders = m.sleepSettings.SleepReminders
	}
	m.sleepForm = fm
	m.form = newSleepForm(fm)
	m.previousState = m.state
	m.state = StateEditSleep
	return m, m.form.Init()
}

func (m Model) openWorkForm() (tea.Model, tea.Cmd) {
	fm := &WorkFormModel{StartTime: "09:00", EndTime: "17:00"}
	if m.hasWork {
		fm.StartTime = m.workSettings.StartTime
		fm.EndTime = m.workSettings.EndTime
	}
	m.workForm = fm
	m.form = newWorkForm(fm)
	m.previousState = m.state
	m.state = StateEditWork
	return m, m.form.Init()
}

func (m Model) openLimitsForm() (tea.Model, tea.Cmd) {
	m.limitsForm = &LimitsFormModel{
		MaxActive:   strconv.Itoa(m.taskSettings.MaxActiveTasks),
		ArchiveDays: strconv.Itoa(m.taskSettings.AutoArchiveDays),
	}
	m.form = newLimitsForm(m.limitsForm)
	m.previousState = m.state
	m.state = StateEditLimits
	return m, m.form.Init()
}
