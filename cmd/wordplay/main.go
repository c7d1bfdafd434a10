package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wordplay/internal/adapters/editor"
	"wordplay/internal/adapters/tui"
	"wordplay/internal/app"
	"wordplay/internal/config"
	"wordplay/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	storeFlag := flag.String("store", "", "path to the question bank (default from config)")
	driverFlag := flag.String("driver", "", "store driver: sqlite, file or memory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *storeFlag != "" {
		cfg.Store.Path = *storeFlag
	}
	if *driverFlag != "" {
		cfg.Store.Driver = *driverFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.Discard()
	application, err := app.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	model := tui.NewApp(application.Bank, editor.NewOpener(), logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
