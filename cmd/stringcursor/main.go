// cmd/stringcursor/main.go
package main

import (
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"strings"

	"github.com/bethropolis/stringcursor/internal/app"
	"github.com/bethropolis/stringcursor/internal/config"
	"github.com/bethropolis/stringcursor/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(nil)
	args, err := flags.ParseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration & Logger ---
	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: %v (using defaults)", err)
	}
	// Remaining arguments are the initial text, e.g. `stringcursor hello world`.
	if len(args) > 0 {
		cfg.Field.InitialText = strings.Join(args, " ")
	}

	logger.SetDebugFilter(*flags.DebugLog)
	logCloser, err := logger.Setup(cfg.Logger)
	if err != nil {
		stlog.Fatalf("%v", err)
	}
	defer logCloser.Close()

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("History limit: %d, system clipboard: %v", cfg.Field.HistoryLimit, cfg.Field.SystemClipboard)

	// --- Create and Run App ---
	fieldApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		stlog.Fatalf("%v", err)
	}

	text, err := fieldApp.Run()
	if err != nil {
		logger.Errorf("Application exited with error: %v", err)
		stlog.Fatalf("%v", err)
	}

	logger.Infof("%s finished.", config.AppName)
	fmt.Println(text)
}
