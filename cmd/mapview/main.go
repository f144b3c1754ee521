package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	mapboxgl "github.com/wippyai/mapbox-gl"
	"github.com/wippyai/mapbox-gl/engine"
	"github.com/wippyai/mapbox-gl/style"
)

func main() {
	var (
		configFile  = flag.String("config", "", "YAML config file")
		token       = flag.String("token", os.Getenv("MAPBOX_TOKEN"), "Mapbox access token (default $MAPBOX_TOKEN)")
		center      = flag.String("center", "", "Initial center as lng,lat")
		zoom        = flag.Float64("zoom", -1, "Initial zoom")
		styleFile   = flag.String("style", "", "Style JSON/YAML file, reapplied when it changes")
		styleRef    = flag.String("style-ref", "", "Style URL, e.g. mapbox://styles/mapbox/dark-v11")
		logFile     = flag.String("log", "", "Write debug logs to this file")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *token != "" {
		cfg.Token = *token
	}
	if *center != "" {
		v, err := parseLngLat(*center)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -center: %v\n", err)
			os.Exit(1)
		}
		cfg.Center = v
	}
	if *zoom >= 0 {
		cfg.Zoom = *zoom
	}
	if *styleFile != "" {
		cfg.StyleFile = *styleFile
	}
	if *styleRef != "" {
		cfg.StyleRef = *styleRef
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Usage: mapview [-config file.yaml] [-token pk...] [-center lng,lat] [-zoom z]")
		fmt.Fprintln(os.Stderr, "       mapview -style style.json -i  (interactive mode, reloads the style on save)")
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	if *interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal, running the scripted tour instead")
		*interactive = false
	}

	if err := run(cfg, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewDevelopmentConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}

func run(cfg *config, interactive bool) error {
	log, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	mapboxgl.SetLogger(log.Named("map"))
	engine.SetLogger(log.Named("engine"))

	s, err := newSession(cfg)
	if err != nil {
		return fmt.Errorf("create map: %w", err)
	}
	defer s.close()

	var watcher *styleWatcher
	if cfg.StyleFile != "" {
		st, err := style.Load(cfg.StyleFile)
		if err != nil {
			return err
		}
		if err := s.applyStyle(st, cfg.StyleFile); err != nil {
			return fmt.Errorf("apply style: %w", err)
		}
		if interactive {
			watcher, err = watchStyle(cfg.StyleFile, log)
			if err != nil {
				return fmt.Errorf("watch style: %w", err)
			}
			defer func() { _ = watcher.close() }()
		}
	}

	if interactive {
		return runInteractive(s, watcher)
	}
	return tour(s)
}

type tourStep struct {
	name string
	fn   func() error
}

// tour drives the map through a fixed script and prints what the listeners
// saw.
func tour(s *session) error {
	s.step()

	steps := []tourStep{
		{"zoom in", func() error { return s.zoomBy(1) }},
		{"pan east", func() error { return s.pan(200, 0) }},
		{"add marker", s.addMarkerAtCenter},
		{"drag marker", func() error { return s.dragLastMarker(0.05, 0.02) }},
		{"click center", s.clickCenter},
	}
	for i := range s.cfg.Places {
		steps = append(steps, tourStep{"fly to " + s.cfg.Places[i].Name, func() error { return s.flyTo(i) }})
	}

	printed := 0
	flush := func() {
		if printed > len(s.lines) {
			printed = 0
		}
		for _, line := range s.lines[printed:] {
			fmt.Println(" ", line)
		}
		printed = len(s.lines)
	}

	flush()
	for _, st := range steps {
		fmt.Printf("%s\n", st.name)
		if err := st.fn(); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
		s.step()
		flush()
	}
	fmt.Printf("\n%s\n", s.status())
	return nil
}
