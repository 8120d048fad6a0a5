// cmd/undotext/main.go
package main

import (
	"errors"
	"fmt"
	stlog "log" // Standard log for errors before the logger is ready
	"os"

	"github.com/ogier/pflag"

	"github.com/bethropolis/undotext/internal/app"
	"github.com/bethropolis/undotext/internal/config"
	"github.com/bethropolis/undotext/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// --- Flags & Config ---
	flags := config.NewFlags(config.AppName)
	if _, err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return 0
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Error loading configuration: %v", err)
		return 1
	}

	// --- Logger Initialization ---
	logOutput, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Printf("%v", err)
		return 1
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s", config.AppName, config.Version)
	for _, w := range cfg.Warnings {
		logger.Warnf("Config: %s", w)
	}

	// --- Create and Run App ---
	if err := app.NewApp(cfg, os.Stdin, os.Stdout).Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
