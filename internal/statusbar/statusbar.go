// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration // Zero keeps messages until replaced
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the bottom line of the full-screen view.
type StatusBar struct {
	config Config
	now    func() time.Time

	length, cursor       int
	undoCount, redoCount int

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetInfo updates the text length, cursor and history counts shown.
func (sb *StatusBar) SetInfo(length, cursor, undoCount, redoCount int) {
	sb.length, sb.cursor = length, cursor
	sb.undoCount, sb.redoCount = undoCount, redoCount
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// Message returns the active temporary message, or "" once it expired.
func (sb *StatusBar) Message() string {
	if sb.tempMessage == "" {
		return ""
	}
	if sb.config.MessageTimeout > 0 && sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	return sb.tempMessage
}

// Text builds the full status line.
func (sb *StatusBar) Text() string {
	text := fmt.Sprintf(" len %d | pos %d | undo %d | redo %d", sb.length, sb.cursor, sb.undoCount, sb.redoCount)
	if msg := sb.Message(); msg != "" {
		text += " | " + msg
	}
	return text
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	style := sb.config.StyleDefault
	if sb.Message() != "" {
		style = sb.config.StyleMessage
	}
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(sb.Text())
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		if runes := gr.Runes(); len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
