package config

// Base application details
const AppName = "undotext"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml"

// Driver names accepted by editor.ui and --ui.
const (
	UIConsole = "console"
	UITUI     = "tui"
)

const DefaultPrompt = "Choose option: "
const DefaultShowAfterEdit = true
const SystemClipboard = true
