package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hhkbp2/go-logging"
	"github.com/ngmaloney/truewind/internal/config"
	"github.com/ngmaloney/truewind/internal/models"
	"github.com/ngmaloney/truewind/internal/settings"
	"github.com/ngmaloney/truewind/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Path to the YAML settings file")
	frame := flag.String("frame", "", "Reference frame of the wind bearing: north or heading")
	orientation := flag.String("orientation", "", "Compass display: NorthUP or HeadUP")
	dbPath := flag.String("db", "", "Preferences database path")
	noPrefs := flag.Bool("no-prefs", false, "Do not load or save preferences")
	logLevel := flag.String("log", "", "Log level: DEBUG, INFO, WARN, ERROR, CRITICAL")
	logFile := flag.String("log-file", "", "File the log is appended to")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over the settings file
	if *frame != "" {
		f, err := models.ParseReferenceFrame(*frame)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg.ReferenceFrame = f
	}
	if *orientation != "" {
		o, err := models.ParseOrientationMode(*orientation)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Orientation = o
	}
	if *dbPath != "" {
		cfg.Database = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	// The alternate screen owns stdout, so records go to a file
	handler, err := config.NewFileHandler(cfg.LogFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.SetupLogging(cfg.LogLevel, handler); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Shutdown()

	opts := ui.Options{
		ReferenceFrame: cfg.ReferenceFrame,
		Orientation:    cfg.Orientation,
	}
	if !*noPrefs {
		opts.Preferences = settings.NewRepository(cfg.Database)
	}

	p := tea.NewProgram(ui.NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
