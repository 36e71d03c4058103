package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"slimeatlas/internal/config"
	"slimeatlas/internal/logging"
	"slimeatlas/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource it opens so deferred cleanup happens before main exits.
func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if cfg.LogPath != "" {
		f, err := openLog(cfg.LogPath)
		if err != nil {
			return err
		}
		defer f.Close()
		defer logging.SetLogger(nil)
		logging.Logger().Info("starting", "seed", cfg.Seed, "center_x", cfg.CenterX, "center_z", cfg.CenterZ)
	}

	m := tui.New(cfg)
	defer m.Close()
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus()).Run()
	return err
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("slimeatlas", flag.ContinueOnError)
	var (
		cfgPath = fs.String("config", os.Getenv("ATLAS_CONFIG"), "JSON config file")
		seed    = fs.String("seed", "", "world seed (number or text)")
		logPath = fs.String("log", "", "write debug log to this file")
		x       = fs.Float64("x", 0, "initial center x")
		z       = fs.Float64("z", 0, "initial center z")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "x":
			cfg.CenterX = *x
		case "z":
			cfg.CenterZ = *z
		}
	})
	if *seed != "" {
		if cfg.Seed, err = config.ParseSeed(*seed); err != nil {
			return cfg, err
		}
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	return cfg, nil
}

// openLog routes the package logger to path. The caller closes the file.
func openLog(path string) (io.Closer, error) {
	f, err := tea.LogToFile(path, "slimeatlas")
	if err != nil {
		return nil, err
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}
