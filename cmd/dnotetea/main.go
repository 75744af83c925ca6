package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shhac/dnotetea/internal/config"
	"github.com/shhac/dnotetea/internal/demo"
	"github.com/shhac/dnotetea/internal/dnote"
	"github.com/shhac/dnotetea/internal/keymap"
	"github.com/shhac/dnotetea/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to the config file (default "+config.DefaultPath()+")")
		tickRate    = flag.Int("tick-rate", 0, "ticks per second (overrides config)")
		frameRate   = flag.Int("frame-rate", 0, "frames per second (overrides config)")
		logFile     = flag.String("log-file", "", "write debug logs to this file")
		debug       = flag.Bool("debug", false, "write debug logs to the default log file")
		demoMode    = flag.Bool("demo", false, "browse a built-in notebook instead of running dnote")
		writeConfig = flag.Bool("write-config", false, "write the effective config to -config and exit")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion || flag.Arg(0) == "version" {
		fmt.Printf("dnotetea %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	var cfg *config.Config
	var err error
	if *configPath == "" {
		*configPath = config.DefaultPath()
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(*configPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *tickRate > 0 {
		cfg.TickRate = *tickRate
	}
	if *frameRate > 0 {
		cfg.FrameRate = *frameRate
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if *writeConfig {
		if err := config.Save(cfg, *configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configPath)
		os.Exit(0)
	}

	km, err := keymap.FromConfig(cfg.Keybindings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid keybindings in %s: %v\n", *configPath, err)
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var svc ui.DnoteService
	if *demoMode {
		svc = demo.NewService().Client()
	} else {
		client, err := dnote.NewClient(cfg.BinaryPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run with --demo to try dnotetea without dnote installed.")
			os.Exit(1)
		}
		svc = client
	}

	app := ui.NewApp(ui.Options{
		Service:           svc,
		Keymap:            km,
		TickInterval:      cfg.TickInterval(),
		FrameInterval:     cfg.FrameInterval(),
		MaxActionsPerTick: cfg.MaxActionsPerTick,
		Markdown:          cfg.Markdown,
		Demo:              *demoMode,
		Version:           version,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to the log file when one is
// configured and discards it otherwise; the terminal belongs to the UI.
func setupLogging(cfg *config.Config, debug bool) (func(), error) {
	if cfg.LogFile == "" && !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "dnotetea")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Printf("dnotetea %s starting", version)
	return func() { f.Close() }, nil
}
