// Package console drives an EditableText from a numbered text menu.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/undotext/internal/clipboard"
	"github.com/bethropolis/undotext/internal/core"
	"github.com/bethropolis/undotext/internal/event"
	"github.com/bethropolis/undotext/internal/logger"
	"github.com/bethropolis/undotext/internal/types"
)

// Menu choices.
const (
	ChoiceExit    = 0
	ChoiceAdd     = 1
	ChoiceDelete  = 2
	ChoiceUndo    = 3
	ChoiceRedo    = 4
	ChoiceShow    = 5
	ChoiceCopy    = 6
	ChoiceHistory = 7
)

const menuText = `
Text Editor Menu:
1. Add Character
2. Delete Character
3. Undo
4. Redo
5. Show Text
6. Copy Text
7. Show History
0. Exit
`

// errEndOfInput means the input ran out while a command was reading arguments.
var errEndOfInput = errors.New("end of input")

// Options controls menu output.
type Options struct {
	Prompt        string
	ShowAfterEdit bool // Print the text after each successful edit
}

// Menu reads whitespace-separated tokens from in and writes results to out.
type Menu struct {
	text   *core.EditableText
	clip   *clipboard.Manager
	events *event.Manager
	opts   Options

	in  *bufio.Scanner
	out io.Writer
}

// New creates a menu. clip and events may be nil.
func New(text *core.EditableText, clip *clipboard.Manager, events *event.Manager, in io.Reader, out io.Writer, opts Options) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	if opts.Prompt == "" {
		opts.Prompt = "Choose option: "
	}
	return &Menu{
		text:   text,
		clip:   clip,
		events: events,
		opts:   opts,
		in:     scanner,
		out:    out,
	}
}

// Run loops until Exit is chosen or input ends. It returns only read errors.
func (m *Menu) Run() error {
	m.dispatch(event.TypeAppReady, nil)
	reason := event.AppQuitReason("exit")
	defer func() { m.dispatch(event.TypeAppQuit, reason) }()

	for {
		fmt.Fprint(m.out, menuText)
		fmt.Fprint(m.out, m.opts.Prompt)

		token, err := m.next()
		if errors.Is(err, errEndOfInput) {
			reason = "eof"
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			logger.DebugTagf("console", "Non-numeric menu choice %q", token)
			fmt.Fprintln(m.out, "Invalid option.")
			continue
		}
		if choice == ChoiceExit {
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}

		if err := m.execute(choice); err != nil {
			if errors.Is(err, errEndOfInput) {
				reason = "eof"
				fmt.Fprintln(m.out)
				return nil
			}
			return err
		}
	}
}

func (m *Menu) execute(choice int) error {
	switch choice {
	case ChoiceAdd:
		return m.add()
	case ChoiceDelete:
		return m.delete()
	case ChoiceUndo:
		m.undo()
	case ChoiceRedo:
		m.redo()
	case ChoiceShow:
		m.show()
	case ChoiceCopy:
		m.copy()
	case ChoiceHistory:
		m.history()
	default:
		fmt.Fprintln(m.out, "Invalid option.")
	}
	return nil
}

// add reads both arguments before validating either.
func (m *Menu) add() error {
	fmt.Fprint(m.out, "Enter character to add: ")
	charToken, err := m.next()
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, "Enter position: ")
	posToken, err := m.next()
	if err != nil {
		return err
	}

	ch, ok := m.parseChar(charToken)
	if !ok {
		return nil
	}
	pos, ok := m.parsePosition(posToken)
	if !ok {
		return nil
	}

	if err := m.text.Add(ch, pos); err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Added '%c' at position %d.\n", ch, pos)
	m.showAfterEdit()
	return nil
}

func (m *Menu) delete() error {
	fmt.Fprint(m.out, "Enter position to delete: ")
	token, err := m.next()
	if err != nil {
		return err
	}
	pos, ok := m.parsePosition(token)
	if !ok {
		return nil
	}

	removed, err := m.text.Delete(pos)
	if err != nil {
		m.report(err)
		return nil
	}
	fmt.Fprintf(m.out, "Deleted '%c' from position %d.\n", removed, pos)
	m.showAfterEdit()
	return nil
}

func (m *Menu) undo() {
	e, err := m.text.Undo()
	if err != nil {
		m.report(err)
		return
	}
	if e.Kind == types.Insert {
		fmt.Fprintf(m.out, "Undo Add: Removed '%c'\n", e.Char)
	} else {
		fmt.Fprintf(m.out, "Undo Delete: Restored '%c'\n", e.Char)
	}
	m.showAfterEdit()
}

func (m *Menu) redo() {
	e, err := m.text.Redo()
	if err != nil {
		m.report(err)
		return
	}
	if e.Kind == types.Insert {
		fmt.Fprintf(m.out, "Redo Add: Added '%c'\n", e.Char)
	} else {
		fmt.Fprintf(m.out, "Redo Delete: Deleted '%c'\n", e.Char)
	}
	m.showAfterEdit()
}

func (m *Menu) show() {
	fmt.Fprintf(m.out, "\nText: \"%s\"\n", m.text.Snapshot())
}

func (m *Menu) showAfterEdit() {
	if m.opts.ShowAfterEdit {
		m.show()
	}
}

func (m *Menu) copy() {
	if m.clip == nil {
		fmt.Fprintln(m.out, "Copy failed: no clipboard available.")
		return
	}
	text := m.text.String()
	system, err := m.clip.Copy(text)
	if err != nil {
		fmt.Fprintf(m.out, "Copy failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Copied %d characters to clipboard.\n", len(text))
	m.dispatch(event.TypeTextCopied, event.TextCopiedData{Length: len(text), System: system})
}

func (m *Menu) history() {
	writeEdits(m.out, "Undo history (most recent last):", m.text.UndoHistory())
	writeEdits(m.out, "Redo history (most recent last):", m.text.RedoHistory())
}

func writeEdits(w io.Writer, title string, edits []types.Edit) {
	fmt.Fprintln(w, title)
	if len(edits) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for i, e := range edits {
		fmt.Fprintf(w, "  %d. %v\n", i+1, e)
	}
}

// report renders a core error as the message the user sees.
func (m *Menu) report(err error) {
	switch {
	case errors.Is(err, core.ErrInvalidPosition):
		fmt.Fprintln(m.out, "Invalid position!")
	case errors.Is(err, core.ErrNothingToUndo):
		fmt.Fprintln(m.out, "Nothing to undo.")
	case errors.Is(err, core.ErrNothingToRedo):
		fmt.Fprintln(m.out, "Nothing to redo.")
	default:
		logger.Errorf("Console: unexpected editor error: %v", err)
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
	logger.DebugTagf("console", "Reported: %v", err)
}

// parseChar accepts a token holding exactly one single-byte character.
func (m *Menu) parseChar(token string) (byte, bool) {
	if uniseg.GraphemeClusterCount(token) != 1 {
		fmt.Fprintln(m.out, "Enter exactly one character!")
		return 0, false
	}
	if len(token) != 1 {
		fmt.Fprintln(m.out, "Only single-byte (ASCII) characters are supported!")
		return 0, false
	}
	return token[0], true
}

// parsePosition converts a position token. ok is false if it wasn't a number.
func (m *Menu) parsePosition(token string) (int, bool) {
	pos, err := strconv.Atoi(token)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid number!")
		return 0, false
	}
	return pos, true
}

func (m *Menu) next() (string, error) {
	if m.in.Scan() {
		return m.in.Text(), nil
	}
	if err := m.in.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", errEndOfInput
}

func (m *Menu) dispatch(t event.Type, data interface{}) {
	if m.events != nil {
		m.events.Dispatch(t, data)
	}
}
