// Package history keeps undo and redo snapshots of the element store.
package history

import (
	"slices"

	"github.com/philipparndt/gostudio/internal/element"
)

// History manages undo/redo with full snapshots of the store. Elements are
// value types, so cloning the slice is a deep copy.
type History struct {
	undo  [][]element.Element // most recent last
	redo  [][]element.Element // most recent last
	limit int                 // maximum undo snapshots, 0 for unbounded
}

// New creates a history manager keeping at most limit undo snapshots.
// A limit of zero or less keeps everything.
func New(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Checkpoint saves the state before a mutation and invalidates redo
func (h *History) Checkpoint(current []element.Element) {
	h.undo = append(h.undo, slices.Clone(current))

	// Drop the oldest snapshot once over the limit
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = slices.Delete(h.undo, 0, len(h.undo)-h.limit)
	}

	h.redo = h.redo[:0]
}

// Undo returns the previous state and remembers current for redo.
// It reports false and leaves everything untouched when there is
// nothing to undo.
func (h *History) Undo(current []element.Element) ([]element.Element, bool) {
	if !h.CanUndo() {
		return current, false
	}

	last := len(h.undo) - 1
	prev := h.undo[last]
	h.undo = h.undo[:last]
	h.redo = append(h.redo, slices.Clone(current))

	return slices.Clone(prev), true
}

// Redo returns the state undone most recently and remembers current for undo
func (h *History) Redo(current []element.Element) ([]element.Element, bool) {
	if !h.CanRedo() {
		return current, false
	}

	last := len(h.redo) - 1
	next := h.redo[last]
	h.redo = h.redo[:last]
	h.undo = append(h.undo, slices.Clone(current))

	return slices.Clone(next), true
}

// CanUndo returns true if we can undo
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if we can redo
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Depth returns the number of undo and redo snapshots
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Clear drops all snapshots
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// SetLimit changes the capacity, trimming the oldest snapshots if needed
func (h *History) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	h.limit = limit
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = slices.Delete(h.undo, 0, len(h.undo)-h.limit)
	}
}
