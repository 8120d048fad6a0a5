// internal/types/edit.go
package types

import "fmt"

// EditKind indicates whether a character was inserted or deleted.
type EditKind int

const (
	Insert EditKind = iota
	Delete
)

// String returns the menu name of the kind ("Add" or "Delete").
func (k EditKind) String() string {
	switch k {
	case Insert:
		return "Add"
	case Delete:
		return "Delete"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// Edit represents a single, reversible one-character change.
type Edit struct {
	Kind     EditKind
	Char     byte // Character inserted or character deleted
	Position int  // Index into the buffer *before* the edit was applied
}

// String renders the edit for history listings, e.g. `Add 'x' @3`.
func (e Edit) String() string {
	return fmt.Sprintf("%s '%c' @%d", e.Kind, e.Char, e.Position)
}
