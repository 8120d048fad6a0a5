package app

import (
	"github.com/bethropolis/undotext/internal/event"
	"github.com/bethropolis/undotext/internal/logger"
)

// subscribeEvents sets up the app's own listeners; currently they only log.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeTextModified, func(e event.Event) bool {
		if data, ok := e.Data.(event.TextModifiedData); ok {
			logger.DebugTagf("app", "%s %v, length now %d", data.Op, data.Edit, data.Length)
		}
		return false
	})
	a.eventManager.Subscribe(event.TypeTextCopied, func(e event.Event) bool {
		if data, ok := e.Data.(event.TextCopiedData); ok {
			logger.Infof("Copied %d characters (system clipboard: %v)", data.Length, data.System)
		}
		return false
	})
	a.eventManager.Subscribe(event.TypeAppQuit, func(e event.Event) bool {
		logger.Infof("Driver loop ended: %v", e.Data)
		return false
	})
}
