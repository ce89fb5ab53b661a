package models

// TaskViewMode selects one of the task list renderers.
type TaskViewMode string

const (
	ViewTerminal    TaskViewMode = "terminal"
	ViewSticky      TaskViewMode = "sticky"
	ViewTimeline    TaskViewMode = "timeline"
	ViewKanban      TaskViewMode = "kanban"
	ViewCodeNotes   TaskViewMode = "code-notes"
	ViewPostIts     TaskViewMode = "post-its"
	ViewMinimal     TaskViewMode = "minimal"
	ViewTerminalOut TaskViewMode = "terminal-out"
)

// DefaultTaskViewMode is used when no view mode has been saved or the saved
// value is not recognized.
const DefaultTaskViewMode = ViewTerminal

var TaskViewModes = []TaskViewMode{
	ViewTerminal,
	ViewSticky,
	ViewTimeline,
	ViewKanban,
	ViewCodeNotes,
	ViewPostIts,
	ViewMinimal,
	ViewTerminalOut,
}

// ParseTaskViewMode validates a stored view mode, falling back to the
// default for anything unknown.
func ParseTaskViewMode(s string) TaskViewMode {
	for _, m := range TaskViewModes {
		if s == string(m) {
			return m
		}
	}
	return DefaultTaskViewMode
}

// Name returns the display name for the view mode.
func (m TaskViewMode) Name() string {
	switch m {
	case ViewTerminal:
		return "Terminal Notes"
	case ViewSticky:
		return "Sticky Notes"
	case ViewTimeline:
		return "Timeline"
	case ViewKanban:
		return "Kanban"
	case ViewCodeNotes:
		return "Code Notes"
	case ViewPostIts:
		return "Post-its"
	case ViewMinimal:
		return "Minimal"
	case ViewTerminalOut:
		return "Terminal Output"
	default:
		return string(m)
	}
}

// Next cycles to the following view mode, wrapping at the end.
func (m TaskViewMode) Next() TaskViewMode {
	for i, mode := range TaskViewModes {
		if mode == m {
			return TaskViewModes[(i+1)%len(TaskViewModes)]
		}
	}
	return DefaultTaskViewMode
}
