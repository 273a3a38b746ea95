package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"quilt/internal/quilt"
)

type model struct {
	width     int
	height    int
	cursorX   int
	cursorY   int
	panX      int
	panY      int
	zPanMode  bool
	mode      Mode
	help      bool
	mouseDown bool

	app    *quilt.Application
	config *Config
	logger *zap.Logger

	keys     keyMap
	helpView help.Model
	input    textinput.Model

	palette      []string
	currentColor string
	picker       picker

	fileOp         FileOperation
	filename       string
	pendingPath    string
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
}

// picker is the "select stored patches" list.
type picker struct {
	cursor   int
	selected map[int]bool
}

func (p *picker) reset() {
	p.cursor = 0
	p.selected = make(map[int]bool)
}

func (p *picker) toggle() {
	if p.selected[p.cursor] {
		delete(p.selected, p.cursor)
	} else {
		p.selected[p.cursor] = true
	}
}

// indices returns the chosen stored-patch indices in ascending order.
func (p *picker) indices(n int) []int {
	out := make([]int, 0, len(p.selected))
	for i := 0; i < n; i++ {
		if p.selected[i] {
			out = append(out, i)
		}
	}
	return out
}
