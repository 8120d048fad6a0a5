// Package clipboard copies text to the system clipboard, falling back to an
// in-process register when the system clipboard is disabled or unavailable.
package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/undotext/internal/logger"
)

// Backend abstracts the system clipboard.
type Backend interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

type systemBackend struct{}

func (systemBackend) WriteAll(text string) error { return sysclip.WriteAll(text) }
func (systemBackend) ReadAll() (string, error)   { return sysclip.ReadAll() }

// Manager handles clipboard operations.
type Manager struct {
	useSystem bool
	backend   Backend
	internal  string
}

// NewManager creates a manager. With useSystem false, or when the platform
// has no clipboard utility, only the internal register is used.
func NewManager(useSystem bool) *Manager {
	return NewManagerWithBackend(useSystem && !sysclip.Unsupported, systemBackend{})
}

// NewManagerWithBackend is NewManager with an explicit system backend.
func NewManagerWithBackend(useSystem bool, backend Backend) *Manager {
	return &Manager{useSystem: useSystem && backend != nil, backend: backend}
}

// Copy stores text in the internal register and, if enabled, the system
// clipboard. It reports whether the system clipboard received the text.
// A system failure is returned as an error but the internal copy still holds.
func (m *Manager) Copy(text string) (bool, error) {
	m.internal = text
	if !m.useSystem {
		logger.DebugTagf("clipboard", "Copied %d bytes to internal register", len(text))
		return false, nil
	}
	if err := m.backend.WriteAll(text); err != nil {
		logger.Warnf("Clipboard: system write failed: %v", err)
		return false, fmt.Errorf("system clipboard write failed: %w", err)
	}
	logger.DebugTagf("clipboard", "Copied %d bytes to system clipboard", len(text))
	return true, nil
}

// Contents returns the last copied text, preferring the system clipboard.
func (m *Manager) Contents() string {
	if m.useSystem {
		if text, err := m.backend.ReadAll(); err == nil {
			return text
		}
	}
	return m.internal
}

// UsesSystem reports whether the system clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.useSystem
}
