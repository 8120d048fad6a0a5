package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/undotext/internal/clipboard"
	"github.com/bethropolis/undotext/internal/core"
	"github.com/bethropolis/undotext/internal/event"
)

type fakeBackend struct {
	text string
	err  error
}

func (f *fakeBackend) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, nil }

// run feeds input to a fresh menu and returns the editor and the transcript.
func run(t *testing.T, input string, opts Options) (*core.EditableText, string) {
	t.Helper()
	text := core.NewEditableText(nil)
	var out bytes.Buffer
	m := New(text, clipboard.NewManagerWithBackend(false, nil), nil, strings.NewReader(input), &out, opts)
	require.NoError(t, m.Run())
	return text, out.String()
}

func TestScenarioTranscript(t *testing.T) {
	input := "1 H 0\n1 i 1\n2 0\n3\n3\n4\n0\n"
	text, out := run(t, input, Options{ShowAfterEdit: true})

	assert.Equal(t, "Hi", text.String())

	wantInOrder := []string{
		"Added 'H' at position 0.",
		`Text: "H"`,
		"Added 'i' at position 1.",
		`Text: "Hi"`,
		"Deleted 'H' from position 0.",
		`Text: "i"`,
		"Undo Delete: Restored 'H'",
		`Text: "Hi"`,
		"Undo Add: Removed 'i'",
		`Text: "H"`,
		"Redo Add: Added 'i'",
		`Text: "Hi"`,
		"Goodbye!",
	}
	rest := out
	for _, want := range wantInOrder {
		idx := strings.Index(rest, want)
		require.GreaterOrEqual(t, idx, 0, "missing %q after previous lines in:\n%s", want, out)
		rest = rest[idx+len(want):]
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		absent   []string
	}{
		{"nothing to undo", "3\n0\n", []string{"Nothing to undo."}, nil},
		{"nothing to redo", "4\n0\n", []string{"Nothing to redo."}, nil},
		{"add out of range", "1 a 1\n0\n", []string{"Invalid position!"}, []string{"Added"}},
		{"add negative", "1 a -1\n0\n", []string{"Invalid position!"}, nil},
		{"delete empty", "2 0\n0\n", []string{"Invalid position!"}, nil},
		{"unknown option", "9\n0\n", []string{"Invalid option."}, nil},
		{"non-numeric option", "x\n0\n", []string{"Invalid option."}, nil},
		{"non-numeric position", "1 a z\n0\n", []string{"Invalid number!"}, []string{"Added"}},
		{"multi char", "1 ab 0\n0\n", []string{"Enter exactly one character!"}, []string{"Added"}},
		{"multi byte", "1 é 0\n0\n", []string{"Only single-byte (ASCII) characters are supported!"}, nil},
		{"redo delete", "1 a 0\n2 0\n3\n4\n0\n", []string{"Redo Delete: Deleted 'a'"}, nil},
		{"show", "1 q 0\n5\n0\n", []string{`Text: "q"`}, nil},
		{"quiet", "1 q 0\n0\n", []string{"Added 'q' at position 0."}, []string{`Text: "q"`}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{ShowAfterEdit: tc.name != "quiet"}
			_, out := run(t, tc.input, opts)
			for _, want := range tc.expected {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tc.absent {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestNewEditAfterUndoDropsRedo(t *testing.T) {
	text, out := run(t, "1 a 0\n3\n1 b 0\n4\n0\n", Options{})
	assert.Equal(t, "b", text.String())
	assert.Contains(t, out, "Nothing to redo.")
}

func TestRejectedAddConsumesArguments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"multi char then undo choice", "1 H 0\n1 ab 3\n0\n", "H"},
		{"multi byte then exit choice", "1 é 0\n1 k 0\n0\n", "k"},
		{"bad position then delete choice", "1 H 0\n1 x y\n2 0\n0\n", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, out := run(t, tc.input, Options{})
			assert.Equal(t, tc.text, text.String())
			assert.NotContains(t, out, "Undo Add")
			assert.Contains(t, out, "Goodbye!")
		})
	}
}

func TestEndOfInputStopsLoop(t *testing.T) {
	tests := []string{"", "1 a 0\n", "1", "1 a", "2"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, out := run(t, input, Options{})
			assert.NotContains(t, out, "Goodbye!")
		})
	}
}

func TestPrompt(t *testing.T) {
	_, out := run(t, "0\n", Options{Prompt: "> "})
	assert.Contains(t, out, "0. Exit\n> ")

	_, out = run(t, "0\n", Options{})
	assert.Contains(t, out, "Choose option: ")
}

func TestHistoryListing(t *testing.T) {
	_, out := run(t, "1 a 0\n1 b 1\n3\n7\n0\n", Options{})
	assert.Contains(t, out, "Undo history (most recent last):\n  1. Add 'a' @0\n")
	assert.Contains(t, out, "Redo history (most recent last):\n  1. Add 'b' @1\n")

	_, out = run(t, "7\n0\n", Options{})
	assert.Contains(t, out, "Undo history (most recent last):\n  (empty)\n")
}

func TestCopy(t *testing.T) {
	events := event.NewManager()
	var copied []event.TextCopiedData
	events.Subscribe(event.TypeTextCopied, func(e event.Event) bool {
		copied = append(copied, e.Data.(event.TextCopiedData))
		return false
	})

	backend := &fakeBackend{}
	text := core.NewEditableText(events)
	var out bytes.Buffer
	m := New(text, clipboard.NewManagerWithBackend(true, backend), events,
		strings.NewReader("1 o 0\n1 k 1\n6\n0\n"), &out, Options{})
	require.NoError(t, m.Run())

	assert.Contains(t, out.String(), "Copied 2 characters to clipboard.")
	assert.Equal(t, "ok", backend.text)
	assert.Equal(t, []event.TextCopiedData{{Length: 2, System: true}}, copied)
}

func TestCopyFailure(t *testing.T) {
	text := core.NewEditableText(nil)
	var out bytes.Buffer
	m := New(text, clipboard.NewManagerWithBackend(true, &fakeBackend{err: errors.New("no display")}), nil,
		strings.NewReader("6\n0\n"), &out, Options{})
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Copy failed: system clipboard write failed: no display")

	out.Reset()
	m = New(text, nil, nil, strings.NewReader("6\n0\n"), &out, Options{})
	require.NoError(t, m.Run())
	assert.Contains(t, out.String(), "Copy failed: no clipboard available.")
}

func TestLifecycleEvents(t *testing.T) {
	tests := []struct {
		input  string
		reason event.AppQuitReason
	}{
		{"0\n", "exit"},
		{"5\n", "eof"},
	}
	for _, tc := range tests {
		t.Run(string(tc.reason), func(t *testing.T) {
			events := event.NewManager()
			var seen []event.Type
			var reason event.AppQuitReason
			events.Subscribe(event.TypeAppReady, func(e event.Event) bool {
				seen = append(seen, e.Type)
				return false
			})
			events.Subscribe(event.TypeAppQuit, func(e event.Event) bool {
				seen = append(seen, e.Type)
				reason = e.Data.(event.AppQuitReason)
				return false
			})

			m := New(core.NewEditableText(events), nil, events, strings.NewReader(tc.input), &bytes.Buffer{}, Options{})
			require.NoError(t, m.Run())
			assert.Equal(t, []event.Type{event.TypeAppReady, event.TypeAppQuit}, seen)
			assert.Equal(t, tc.reason, reason)
		})
	}
}
