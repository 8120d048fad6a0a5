// internal/core/editor.go
package core

import (
	"errors"

	"github.com/bethropolis/undotext/internal/buffer"
	"github.com/bethropolis/undotext/internal/core/history"
	"github.com/bethropolis/undotext/internal/event"
	"github.com/bethropolis/undotext/internal/types"
)

// Errors returned by EditableText. Position errors are wrapped with the
// offending index; test with errors.Is.
var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
)

// EditableText is a byte buffer with undo and redo histories of
// single-character edits. It is not safe for concurrent use; callers sharing
// one across goroutines must hold their own lock.
type EditableText struct {
	buffer       buffer.Buffer
	history      *history.Manager
	eventManager *event.Manager
}

// NewEditableText creates an empty text. events may be nil.
func NewEditableText(events *event.Manager) *EditableText {
	return &EditableText{
		buffer:       buffer.NewSliceBuffer(),
		history:      history.NewManager(),
		eventManager: events,
	}
}

// Snapshot returns a copy of the current content.
func (t *EditableText) Snapshot() []byte {
	return t.buffer.Bytes()
}

func (t *EditableText) String() string {
	return t.buffer.String()
}

// Len returns the current content length.
func (t *EditableText) Len() int {
	return t.buffer.Len()
}

func (t *EditableText) CanUndo() bool { return t.history.CanUndo() }
func (t *EditableText) CanRedo() bool { return t.history.CanRedo() }

func (t *EditableText) UndoCount() int { return t.history.UndoCount() }
func (t *EditableText) RedoCount() int { return t.history.RedoCount() }

// UndoHistory returns the applied edits, most recent last.
func (t *EditableText) UndoHistory() []types.Edit {
	return t.history.Undos()
}

// RedoHistory returns the undone edits, most recently undone last.
func (t *EditableText) RedoHistory() []types.Edit {
	return t.history.Redos()
}

func (t *EditableText) dispatch(op event.Op, e types.Edit) {
	if t.eventManager == nil {
		return
	}
	t.eventManager.Dispatch(event.TypeTextModified, event.TextModifiedData{
		Op:     op,
		Edit:   e,
		Length: t.buffer.Len(),
	})
}
