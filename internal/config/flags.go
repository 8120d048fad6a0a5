// internal/config/flags.go
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ogier/pflag"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	set    *pflag.FlagSet
	name   string
	output io.Writer

	ConfigFilePath  *string
	Version         *bool
	UI              *string
	LogLevel        *string
	LogFilePath     *string
	EnableTags      *string
	DisableTags     *string
	SystemClipboard *bool
	Quiet           *bool
}

// NewFlags defines the command-line flags on a fresh flag set.
func NewFlags(name string) *Flags {
	set := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f := &Flags{
		set:             set,
		name:            name,
		output:          os.Stderr,
		ConfigFilePath:  set.StringP("config", "c", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName)),
		Version:         set.BoolP("version", "v", false, "Show version information and exit"),
		UI:              set.StringP("ui", "u", "", "Driver to run: console or tui"),
		LogLevel:        set.String("loglevel", "", "Log level (debug, info, warn, error)"),
		LogFilePath:     set.String("logfile", "", "Path to write log file (use '-' for stderr)"),
		EnableTags:      set.String("log-tags", "", "Comma-separated list of log tags to enable"),
		DisableTags:     set.String("log-disable-tags", "", "Comma-separated list of log tags to disable"),
		SystemClipboard: set.Bool("system-clipboard", false, "Copy to the system clipboard instead of an internal register"),
		Quiet:           set.BoolP("quiet", "q", false, "Don't print the text after every edit"),
	}
	set.Usage = f.usage
	return f
}

// SetOutput redirects usage and parse error messages. The default is stderr.
func (f *Flags) SetOutput(w io.Writer) {
	f.output = w
	f.set.SetOutput(w)
}

func (f *Flags) usage() {
	fmt.Fprintf(f.output, "Usage: %s [options]\n", f.name)
	f.PrintDefaults()
}

// Parse parses args (without the program name) and returns the remaining arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// PrintDefaults writes flag usage to the flag set's output.
func (f *Flags) PrintDefaults() {
	f.set.PrintDefaults()
}

// ApplyOverrides copies flags that were set on the command line into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.set.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "ui":
			cfg.Editor.UI = strings.ToLower(*f.UI)
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "quiet":
			cfg.Editor.ShowAfterEdit = !*f.Quiet
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
