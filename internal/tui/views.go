package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hyprtodo/internal/models"
)

// renderTaskView dispatches to one of the task list renderers. Every
// renderer shows the same tasks in the same order; only the presentation
// changes.
func renderTaskView(mode models.TaskViewMode, tasks []models.Task, cursor int, st Styles) string {
	if len(tasks) == 0 {
		return st.Muted.Render("No tasks yet. Press a to add one.")
	}

	switch mode {
	case models.ViewSticky:
		return renderSticky(tasks, cursor, st)
	case models.ViewTimeline:
		return renderTimeline(tasks, cursor, st)
	case models.ViewKanban:
		return renderKanban(tasks, cursor, st)
	case models.ViewCodeNotes:
		return renderCodeNotes(tasks, cursor, st)
	case models.ViewPostIts:
		return renderPostIts(tasks, cursor, st)
	case models.ViewMinimal:
		return renderMinimal(tasks, cursor, st)
	case models.ViewTerminalOut:
		return renderTerminalOut(tasks, cursor, st)
	default:
		return renderTerminal(tasks, cursor, st)
	}
}

func checkbox(t models.Task) string {
	if t.IsCompleted {
		return "[x]"
	}
	return "[ ]"
}

func taskTitle(t models.Task, st Styles) string {
	switch {
	case t.IsCompleted:
		return st.Done.Render(t.Title)
	case t.IsCurrent:
		return st.Current.Render(t.Title)
	default:
		return t.Title
	}
}

func taskMeta(t models.Task, st Styles) string {
	parts := []string{string(t.Priority)}
	if t.Project != "" {
		parts = append(parts, string(t.Project))
	}
	if t.DueDate != "" {
		parts = append(parts, "due "+t.DueDate)
	}
	return st.Muted.Render("(" + strings.Join(parts, ", ") + ")")
}

func renderTerminal(tasks []models.Task, cursor int, st Styles) string {
	var b strings.Builder
	for i, t := range tasks {
		prefix := "  "
		if i == cursor {
			prefix = st.Accent.Render("❯ ")
		}
		line := fmt.Sprintf("%s%s %s %s", prefix, checkbox(t), taskTitle(t, st), taskMeta(t, st))
		if t.IsCurrent {
			line += " " + st.Current.Render("●")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderSticky(tasks []models.Task, cursor int, st Styles) string {
	note := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(22)

	var cards []string
	for i, t := range tasks {
		style := note.BorderForeground(st.Muted.GetForeground())
		if i == cursor {
			style = note.BorderForeground(st.Accent.GetForeground())
		}
		body := taskTitle(t, st) + "\n" + taskMeta(t, st)
		cards = append(cards, style.Render(body))
	}
	return joinRows(cards, 3)
}

func renderTimeline(tasks []models.Task, cursor int, st Styles) string {
	var b strings.Builder
	for i, t := range tasks {
		connector := "├─"
		if i == len(tasks)-1 {
			connector = "└─"
		}
		dot := "○"
		if t.IsCompleted {
			dot = "●"
		}
		marker := " "
		if i == cursor {
			marker = st.Accent.Render("❯")
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
			marker,
			st.Subtitle.Render(connector),
			dot,
			taskTitle(t, st),
			st.Muted.Render(t.CreatedAt.Format("Jan 02")),
		))
	}
	return b.String()
}

func renderKanban(tasks []models.Task, cursor int, st Styles) string {
	column := func(title string, keep func(models.Task) bool) string {
		var lines []string
		lines = append(lines, st.Title.Render(title))
		for i, t := range tasks {
			if !keep(t) {
				continue
			}
			prefix := "  "
			if i == cursor {
				prefix = st.Accent.Render("❯ ")
			}
			lines = append(lines, prefix+taskTitle(t, st))
		}
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(st.Muted.GetForeground()).
			Padding(0, 1).
			Width(24).
			Render(strings.Join(lines, "\n"))
	}

	todo := column("To Do", func(t models.Task) bool { return !t.IsCompleted && !t.IsCurrent })
	doing := column("Current", func(t models.Task) bool { return t.IsCurrent })
	done := column("Done", func(t models.Task) bool { return t.IsCompleted })
	return lipgloss.JoinHorizontal(lipgloss.Top, todo, doing, done)
}

func renderCodeNotes(tasks []models.Task, cursor int, st Styles) string {
	var b strings.Builder
	for i, t := range tasks {
		tag := "TODO"
		if t.IsCompleted {
			tag = "DONE"
		}
		marker := " "
		if i == cursor {
			marker = st.Accent.Render("❯")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			marker,
			st.Muted.Render(fmt.Sprintf("%3d", i+1)),
			st.Subtitle.Render(fmt.Sprintf("// %s(%s):", tag, t.Priority))+" "+taskTitle(t, st),
		))
	}
	return b.String()
}

func renderPostIts(tasks []models.Task, cursor int, st Styles) string {
	note := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		Padding(0, 1).
		Width(18)

	var cards []string
	for i, t := range tasks {
		style := note.BorderForeground(st.Subtitle.GetForeground())
		if i == cursor {
			style = note.BorderForeground(st.Accent.GetForeground())
		}
		cards = append(cards, style.Render(checkbox(t)+" "+taskTitle(t, st)))
	}
	return joinRows(cards, 4)
}

func renderMinimal(tasks []models.Task, cursor int, st Styles) string {
	var b strings.Builder
	for i, t := range tasks {
		marker := "  "
		if i == cursor {
			marker = st.Accent.Render("❯ ")
		}
		b.WriteString(marker + "· " + taskTitle(t, st) + "\n")
	}
	return b.String()
}

func renderTerminalOut(tasks []models.Task, cursor int, st Styles) string {
	var b strings.Builder
	for i, t := range tasks {
		status := st.Warning.Render("[..]")
		if t.IsCompleted {
			status = st.Accent.Render("[ok]")
		}
		marker := "  "
		if i == cursor {
			marker = st.Accent.Render("❯ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			marker,
			st.Muted.Render("$"),
			status,
			taskTitle(t, st),
		))
	}
	return b.String()
}

// joinRows lays cards out left to right, wrapping to a new row every
// perRow cards.
func joinRows(cards []string, perRow int) string {
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
