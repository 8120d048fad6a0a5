package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/undotext/internal/clipboard"
	"github.com/bethropolis/undotext/internal/core"
	"github.com/bethropolis/undotext/internal/event"
	"github.com/bethropolis/undotext/internal/input"
	"github.com/bethropolis/undotext/internal/logger"
	"github.com/bethropolis/undotext/internal/statusbar"
	"github.com/bethropolis/undotext/internal/types"
)

// View is a single-line full-screen editor over an EditableText.
type View struct {
	tui    *TUI
	text   *core.EditableText
	clip   *clipboard.Manager
	events *event.Manager

	input  *input.InputProcessor
	status *statusbar.StatusBar

	cursor int // Insertion point, 0..Len()
	scroll int // First visible column
}

// NewView creates a view. clip and events may be nil.
func NewView(t *TUI, text *core.EditableText, clip *clipboard.Manager, events *event.Manager) *View {
	v := &View{
		tui:    t,
		text:   text,
		clip:   clip,
		events: events,
		input:  input.NewInputProcessor(),
		status: statusbar.New(statusbar.DefaultConfig()),
	}
	if events != nil {
		events.Subscribe(event.TypeTextModified, v.onTextModified)
	}
	return v
}

// Run draws and handles events until the user quits or the screen closes.
func (v *View) Run() error {
	v.dispatch(event.TypeAppReady, nil)
	for {
		v.draw()
		ev := v.tui.PollEvent()
		if ev == nil {
			v.dispatch(event.TypeAppQuit, event.AppQuitReason("eof"))
			return nil
		}
		if v.HandleEvent(ev) {
			v.dispatch(event.TypeAppQuit, event.AppQuitReason("key"))
			return nil
		}
	}
}

// HandleEvent applies one terminal event. It returns true when the view should quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.tui.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	action := v.input.ProcessEvent(ev)
	switch action.Action {
	case input.ActionQuit:
		return true
	case input.ActionUndo:
		v.undo()
	case input.ActionRedo:
		v.redo()
	case input.ActionCopy:
		v.copy()
	case input.ActionMoveLeft:
		if v.cursor > 0 {
			v.cursor--
		}
	case input.ActionMoveRight:
		if v.cursor < v.text.Len() {
			v.cursor++
		}
	case input.ActionMoveHome:
		v.cursor = 0
	case input.ActionMoveEnd:
		v.cursor = v.text.Len()
	case input.ActionDeleteCharBackward:
		if v.cursor == 0 {
			v.status.SetTemporaryMessage("Invalid position!")
			return false
		}
		if _, err := v.text.Delete(v.cursor - 1); err != nil {
			v.report(err)
			return false
		}
		v.cursor--
	case input.ActionDeleteCharForward:
		if _, err := v.text.Delete(v.cursor); err != nil {
			v.report(err)
		}
	case input.ActionInsertChar:
		r := action.Rune
		if r < ' ' || r > '~' {
			v.status.SetTemporaryMessage("Only printable ASCII characters are supported!")
			return false
		}
		if err := v.text.Add(byte(r), v.cursor); err != nil {
			v.report(err)
			return false
		}
		v.cursor++
	}
	return false
}

func (v *View) undo() {
	e, err := v.text.Undo()
	if err != nil {
		v.report(err)
		return
	}
	// Put the cursor where the reverted character was (or now is).
	if e.Kind == types.Insert {
		v.cursor = e.Position
	} else {
		v.cursor = e.Position + 1
	}
}

func (v *View) redo() {
	e, err := v.text.Redo()
	if err != nil {
		v.report(err)
		return
	}
	if e.Kind == types.Insert {
		v.cursor = e.Position + 1
	} else {
		v.cursor = e.Position
	}
}

func (v *View) copy() {
	if v.clip == nil {
		v.status.SetTemporaryMessage("Copy failed: no clipboard available.")
		return
	}
	text := v.text.String()
	system, err := v.clip.Copy(text)
	if err != nil {
		v.status.SetTemporaryMessage("Copy failed: %v", err)
		return
	}
	v.status.SetTemporaryMessage("Copied %d characters to clipboard.", len(text))
	v.dispatch(event.TypeTextCopied, event.TextCopiedData{Length: len(text), System: system})
}

func (v *View) onTextModified(e event.Event) bool {
	data, ok := e.Data.(event.TextModifiedData)
	if !ok {
		return false
	}
	v.status.SetTemporaryMessage("%s: %v", data.Op, data.Edit)
	return false
}

func (v *View) report(err error) {
	switch {
	case errors.Is(err, core.ErrInvalidPosition):
		v.status.SetTemporaryMessage("Invalid position!")
	case errors.Is(err, core.ErrNothingToUndo):
		v.status.SetTemporaryMessage("Nothing to undo.")
	case errors.Is(err, core.ErrNothingToRedo):
		v.status.SetTemporaryMessage("Nothing to redo.")
	default:
		logger.Errorf("TUI: unexpected editor error: %v", err)
		v.status.SetTemporaryMessage("%v", err)
	}
}

func (v *View) dispatch(t event.Type, data interface{}) {
	if v.events != nil {
		v.events.Dispatch(t, data)
	}
}

// Cursor returns the insertion point.
func (v *View) Cursor() int { return v.cursor }

// Message returns the current status message.
func (v *View) Message() string { return v.status.Message() }
