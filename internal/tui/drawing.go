// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

var (
	styleText = tcell.StyleDefault
	styleHelp = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const helpLine = "Ctrl+Z undo  Ctrl+Y redo  Ctrl+C copy  Esc quit"

// drawString draws text at (x, y) cluster by cluster, clipped to maxWidth cells.
func drawString(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	used := 0
	for gr.Next() {
		w := gr.Width()
		if used+w > maxWidth {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			s.SetContent(x+used, y, runes[0], runes[1:], style)
		}
		used += w
	}
}

// draw renders the text row, the help row and the status line.
func (v *View) draw() {
	s := v.tui.GetScreen()
	width, height := v.tui.Size()
	v.tui.Clear()
	if width <= 0 || height <= 0 {
		return
	}

	// Scroll horizontally so the cursor stays visible.
	if v.cursor < v.scroll {
		v.scroll = v.cursor
	} else if v.cursor >= v.scroll+width {
		v.scroll = v.cursor - width + 1
	}

	content := v.text.Snapshot()
	for x := 0; x < width && v.scroll+x < len(content); x++ {
		s.SetContent(x, 0, rune(content[v.scroll+x]), nil, styleText)
	}
	s.ShowCursor(v.cursor-v.scroll, 0)

	if height > 2 {
		drawString(s, 0, 1, width, helpLine, styleHelp)
	}

	if height > 1 {
		v.status.SetInfo(v.text.Len(), v.cursor, v.text.UndoCount(), v.text.RedoCount())
		v.status.Draw(s, width, height)
	}

	v.tui.Show()
}
