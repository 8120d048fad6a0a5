// internal/app/app.go
package app

import (
	"fmt"
	"io"

	"github.com/bethropolis/undotext/internal/clipboard"
	"github.com/bethropolis/undotext/internal/config"
	"github.com/bethropolis/undotext/internal/console"
	"github.com/bethropolis/undotext/internal/core"
	"github.com/bethropolis/undotext/internal/event"
	"github.com/bethropolis/undotext/internal/logger"
	"github.com/bethropolis/undotext/internal/tui"
)

// Driver runs an interactive loop over the editor until the user exits.
type Driver interface {
	Run() error
}

// App wires the editor, event bus and clipboard to the configured driver.
type App struct {
	cfg          *config.Config
	text         *core.EditableText
	eventManager *event.Manager
	clipboard    *clipboard.Manager

	in  io.Reader
	out io.Writer

	// newTUI is swapped in tests for a simulation screen.
	newTUI func() (*tui.TUI, error)
}

// NewApp creates an application instance. in and out are used by the console driver.
func NewApp(cfg *config.Config, in io.Reader, out io.Writer) *App {
	eventManager := event.NewManager()
	a := &App{
		cfg:          cfg,
		text:         core.NewEditableText(eventManager),
		eventManager: eventManager,
		clipboard:    clipboard.NewManager(cfg.Editor.SystemClipboard),
		in:           in,
		out:          out,
		newTUI:       tui.New,
	}
	a.subscribeEvents()
	return a
}

// Text exposes the editor, mainly for tests and embedding.
func (a *App) Text() *core.EditableText {
	return a.text
}

// Run starts the configured driver and blocks until it returns.
func (a *App) Run() error {
	driver, cleanup, err := a.driver()
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Infof("Running %s driver", a.cfg.Editor.UI)
	if err := driver.Run(); err != nil {
		return fmt.Errorf("%s driver failed: %w", a.cfg.Editor.UI, err)
	}
	logger.Infof("Final text: %q (%d undo, %d redo)", a.text.String(), a.text.UndoCount(), a.text.RedoCount())
	return nil
}

func (a *App) driver() (Driver, func(), error) {
	switch a.cfg.Editor.UI {
	case config.UITUI:
		ui, err := a.newTUI()
		if err != nil {
			return nil, nil, fmt.Errorf("TUI initialization failed: %w", err)
		}
		return tui.NewView(ui, a.text, a.clipboard, a.eventManager), ui.Close, nil
	default:
		menu := console.New(a.text, a.clipboard, a.eventManager, a.in, a.out, console.Options{
			Prompt:        a.cfg.Editor.Prompt,
			ShowAfterEdit: a.cfg.Editor.ShowAfterEdit,
		})
		return menu, func() {}, nil
	}
}
