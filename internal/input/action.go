// internal/input/action.go
package input

// Action represents an editor command decoded from a key press.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit

	// --- Cursor Movement ---
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd

	// --- Text Manipulation ---
	ActionInsertChar         // Requires Rune argument
	ActionDeleteCharBackward // Backspace
	ActionDeleteCharForward  // Delete

	// --- History ---
	ActionUndo
	ActionRedo

	ActionCopy
)

// ActionEvent is a decoded key press. Rune is set for ActionInsertChar.
type ActionEvent struct {
	Action Action
	Rune   rune
}
