package core

import (
	"fmt"

	"github.com/bethropolis/undotext/internal/event"
	"github.com/bethropolis/undotext/internal/logger"
	"github.com/bethropolis/undotext/internal/types"
)

// Add inserts ch at pos, where 0 <= pos <= Len(). It clears the redo history.
func (t *EditableText) Add(ch byte, pos int) error {
	if pos < 0 || pos > t.buffer.Len() {
		return fmt.Errorf("%w: add at %d, want 0..%d", ErrInvalidPosition, pos, t.buffer.Len())
	}
	e := types.Edit{Kind: types.Insert, Char: ch, Position: pos}
	if err := t.apply(e); err != nil {
		return err
	}
	t.history.Record(e)
	t.dispatch(event.OpAdd, e)
	return nil
}

// Delete removes and returns the character at pos, where 0 <= pos < Len().
// It clears the redo history.
func (t *EditableText) Delete(pos int) (byte, error) {
	if pos < 0 || pos >= t.buffer.Len() {
		return 0, fmt.Errorf("%w: delete at %d, want 0..%d", ErrInvalidPosition, pos, t.buffer.Len()-1)
	}
	ch, err := t.buffer.Delete(pos)
	if err != nil {
		return 0, fmt.Errorf("buffer delete failed: %w", err)
	}
	e := types.Edit{Kind: types.Delete, Char: ch, Position: pos}
	t.history.Record(e)
	t.dispatch(event.OpDelete, e)
	return ch, nil
}

// Undo reverts the most recent edit and moves it to the redo history.
func (t *EditableText) Undo() (types.Edit, error) {
	e, ok := t.history.PopUndo()
	if !ok {
		return types.Edit{}, ErrNothingToUndo
	}
	if err := t.apply(invert(e)); err != nil {
		t.history.PushUndo(e)
		logger.Errorf("EditableText: undo of %v failed: %v", e, err)
		return types.Edit{}, fmt.Errorf("undo failed: %w", err)
	}
	t.history.PushRedo(e)
	logger.DebugTagf("core", "Undid %v -> %q", e, t.buffer.String())
	t.dispatch(event.OpUndo, e)
	return e, nil
}

// Redo reapplies the most recently undone edit and moves it back to the undo history.
func (t *EditableText) Redo() (types.Edit, error) {
	e, ok := t.history.PopRedo()
	if !ok {
		return types.Edit{}, ErrNothingToRedo
	}
	if err := t.apply(e); err != nil {
		t.history.PushRedo(e)
		logger.Errorf("EditableText: redo of %v failed: %v", e, err)
		return types.Edit{}, fmt.Errorf("redo failed: %w", err)
	}
	t.history.PushUndo(e)
	logger.DebugTagf("core", "Redid %v -> %q", e, t.buffer.String())
	t.dispatch(event.OpRedo, e)
	return e, nil
}

// apply performs e against the buffer without touching the histories.
func (t *EditableText) apply(e types.Edit) error {
	switch e.Kind {
	case types.Insert:
		if err := t.buffer.Insert(e.Position, e.Char); err != nil {
			return fmt.Errorf("buffer insert failed: %w", err)
		}
	case types.Delete:
		if _, err := t.buffer.Delete(e.Position); err != nil {
			return fmt.Errorf("buffer delete failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown edit kind %v", e.Kind)
	}
	return nil
}

func invert(e types.Edit) types.Edit {
	if e.Kind == types.Insert {
		e.Kind = types.Delete
	} else {
		e.Kind = types.Insert
	}
	return e
}
