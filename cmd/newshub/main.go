package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"newshub/client"
	"newshub/config"
	"newshub/logging"
	"newshub/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Parse command-line flags
	backendURL := flag.String("url", cfg.BackendURL, "Backend base URL")
	flag.Parse()
	cfg.BackendURL = *backendURL

	// The TUI owns stdout, so diagnostics go to a file.
	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.LogLevel)

	// In-flight requests are aborted when the program exits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := client.New(cfg.BackendURL, cfg.RequestTimeout)
	m := tui.NewModel(ctx, api, logger, cfg)

	program := tea.NewProgram(m, tea.WithAltScreen())

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
