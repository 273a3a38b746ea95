package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quilt/internal/quilt"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.quiltrc)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	config, configErr := loadConfig(*configPath)

	l, err := newLogger(config.LogFile, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quilt: %v\n", err)
		os.Exit(1)
	}
	defer l.Sync() //nolint:errcheck
	zap.ReplaceGlobals(l)

	if configErr != nil {
		l.Warn("config ignored", zap.String("path", *configPath), zap.Error(configErr))
	}
	for _, key := range config.Unknown {
		l.Warn("unknown config key", zap.String("key", key))
	}

	m := initialModel(config, l)
	if path := flag.Arg(0); path != "" {
		m.load(path)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		l.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "quilt: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to path because the terminal belongs to the UI.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func initialModel(config *Config, logger *zap.Logger) model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256

	currentColor := config.Palette[0]
	return model{
		cursorY: paletteRows,
		app:     quilt.New(quilt.Options{StrictGroupColor: config.StrictGroupColor}),
		config:  config,
		logger:  logger,

		keys:     defaultKeyMap(),
		helpView: help.New(),
		input:    input,

		palette:      config.Palette,
		currentColor: currentColor,
		picker:       picker{selected: make(map[int]bool)},
	}
}
