package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/history"
	"github.com/ngmaloney/weather-terminal/internal/provider"
	"github.com/ngmaloney/weather-terminal/internal/ui"
)

func main() {
	location := flag.String("location", "", "City to show on startup (overrides WEATHER_DEFAULT_LOCATION)")
	dbPath := flag.String("db", "", "Path to the location history database (overrides WEATHER_DB_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *location != "" {
		cfg.DefaultLocation = *location
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	// The TUI owns stdout, so logs go to a file
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "weather")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	} else {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	}

	// History is optional; the app still works without it
	var h ui.LocationHistory
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		slog.Warn("location history disabled", "path", cfg.DBPath, "err", err)
	} else {
		defer db.Close()
		h = history.NewRepository(db)
	}

	p := provider.New(cfg)
	slog.Info("starting weather terminal",
		"provider", p.Name(),
		"default_location", cfg.DefaultLocation,
		"timezone", cfg.TimeZone,
	)

	program := tea.NewProgram(ui.NewModel(cfg, p, h), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
