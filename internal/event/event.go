// internal/event/event.go
package event

import (
	"fmt"

	"github.com/bethropolis/undotext/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeTextModified // Fired after add, delete, undo or redo changed the text
	TypeTextCopied   // Fired after the text was copied to a clipboard

	TypeAppReady // Fired when the driver is about to start its loop
	TypeAppQuit  // Fired just before the driver loop returns
)

func (t Type) String() string {
	switch t {
	case TypeTextModified:
		return "TextModified"
	case TypeTextCopied:
		return "TextCopied"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// Op names the editor operation behind a TypeTextModified event.
type Op int

const (
	OpAdd Op = iota
	OpDelete
	OpUndo
	OpRedo
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpUndo:
		return "undo"
	case OpRedo:
		return "redo"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// TextModifiedData describes one successful mutation.
type TextModifiedData struct {
	Op     Op
	Edit   types.Edit
	Length int // Text length after the mutation
}

// TextCopiedData reports a copy to clipboard.
type TextCopiedData struct {
	Length int
	System bool // false when the internal fallback clipboard was used
}

// AppQuitReason says why the driver loop ended ("exit", "eof", "key").
type AppQuitReason string
