package ui

import "github.com/piwi3910/fitness-tracker/internal/model"

const defaultMaxDepth = 20

// Snapshot captures the form fields at a point in time.
type Snapshot struct {
	Form  model.FormInput
	Label string // Human-readable description (e.g. "Reset")
}

// History keeps undo/redo stacks of form snapshots. It lives only as long as
// the window; nothing is written to disk.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth.
func NewHistory() *History {
	return &History{maxDepth: defaultMaxDepth}
}

// Push saves a snapshot taken before a destructive change and clears redo.
// Snapshots of an empty form are ignored since there is nothing to restore.
func (h *History) Push(s Snapshot) {
	if s.Form.IsEmpty() {
		return
	}
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo returns the most recent snapshot and records current for Redo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo reverses the last Undo and records current for Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }
