package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/njvack/gazehound/dataset"
	"github.com/njvack/gazehound/logging"
)

var logFile = flag.String("debug", "", "Write debug logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	statsFlag := flag.Bool("stats", false, "print per-viewer scan path statistics and exit")
	configPath := flag.String("config", "", "viewer config file (YAML)")
	fpsFlag := flag.Int("fps", 0, "redraw rate (overrides config)")
	speedFlag := flag.Float64("speed", 0, "playback speed multiplier (overrides config)")
	schemeFlag := flag.String("scheme", "", "color scheme name (overrides config)")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("gazehound: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: gazehound [--debug debug.log] [--config viewer.yaml] [--stats] <dataset.json>")
		os.Exit(1)
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config %q: %v", *configPath, err)
		}
	}
	if *fpsFlag > 0 {
		cfg.TargetFPS = *fpsFlag
	}
	if *speedFlag > 0 {
		cfg.Speed = *speedFlag
	}
	if *schemeFlag != "" {
		cfg.Scheme = *schemeFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	ds, err := dataset.Load(args[0])
	if err != nil {
		log.Fatalf("failed to load %q: %v", args[0], err)
	}

	if *statsFlag {
		if err := dataset.WriteStats(os.Stdout, dataset.Stats(ds)); err != nil {
			log.Fatalf("failed to write stats: %v", err)
		}
		return
	}

	m, err := newModel(cfg, ds)
	if err != nil {
		log.Fatalf("failed to build viewer: %v", err)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
