package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AirMile/dailysync/internal/checkin"
	"github.com/AirMile/dailysync/internal/diary"
	"github.com/AirMile/dailysync/internal/sample"
	"github.com/AirMile/dailysync/internal/store"
	"github.com/AirMile/dailysync/internal/tui"
)

func main() {
	seedDemo := flag.Bool("sample", false, "seed the database with demo entries and exit")
	flag.Parse()

	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file next to the database.
	logger := openLogger()

	s, err := store.New(dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	gen := diary.New()

	if *seedDemo {
		created, err := sample.Generate(s, gen, 35)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error seeding demo data: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %d demo entries\n", created)
		return
	}

	session := checkin.New(s, gen)

	app := tui.NewApp(s, session, gen)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openLogger() *slog.Logger {
	logPath, err := store.DefaultLogPath()
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(f, nil))
}
