// Package history keeps the undo and redo stacks of applied edits.
package history

import (
	"github.com/bethropolis/undotext/internal/logger"
	"github.com/bethropolis/undotext/internal/types"
)

// Manager holds two LIFO stacks of edits, most recent last.
// The undo stack is never trimmed: replaying it from an empty buffer must
// reproduce the current text.
type Manager struct {
	undos []types.Edit
	redos []types.Edit
}

// NewManager creates an empty history.
func NewManager() *Manager {
	return &Manager{}
}

// Record pushes a freshly applied edit and drops the redo timeline.
func (m *Manager) Record(e types.Edit) {
	m.undos = append(m.undos, e)
	m.redos = m.redos[:0]
	logger.DebugTagf("history", "Recorded %v. Undo: %d, Redo: %d", e, len(m.undos), len(m.redos))
}

// PopUndo removes and returns the most recent applied edit.
func (m *Manager) PopUndo() (types.Edit, bool) {
	return pop(&m.undos)
}

// PushUndo puts an edit back on the undo stack without touching redo.
func (m *Manager) PushUndo(e types.Edit) {
	m.undos = append(m.undos, e)
}

// PopRedo removes and returns the most recently undone edit.
func (m *Manager) PopRedo() (types.Edit, bool) {
	return pop(&m.redos)
}

// PushRedo records an undone edit.
func (m *Manager) PushRedo(e types.Edit) {
	m.redos = append(m.redos, e)
}

func pop(stack *[]types.Edit) (types.Edit, bool) {
	s := *stack
	if len(s) == 0 {
		return types.Edit{}, false
	}
	e := s[len(s)-1]
	*stack = s[:len(s)-1]
	return e, true
}

// PeekUndo returns the edit Undo would revert next.
func (m *Manager) PeekUndo() (types.Edit, bool) {
	if len(m.undos) == 0 {
		return types.Edit{}, false
	}
	return m.undos[len(m.undos)-1], true
}

// PeekRedo returns the edit Redo would reapply next.
func (m *Manager) PeekRedo() (types.Edit, bool) {
	if len(m.redos) == 0 {
		return types.Edit{}, false
	}
	return m.redos[len(m.redos)-1], true
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool { return len(m.undos) > 0 }

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool { return len(m.redos) > 0 }

func (m *Manager) UndoCount() int { return len(m.undos) }
func (m *Manager) RedoCount() int { return len(m.redos) }

// Undos returns a copy of the undo stack, oldest first.
func (m *Manager) Undos() []types.Edit {
	return append([]types.Edit(nil), m.undos...)
}

// Redos returns a copy of the redo stack, in the order edits were undone.
func (m *Manager) Redos() []types.Edit {
	return append([]types.Edit(nil), m.redos...)
}

// Clear empties both stacks.
func (m *Manager) Clear() {
	m.undos = m.undos[:0]
	m.redos = m.redos[:0]
	logger.DebugTagf("history", "Cleared.")
}
