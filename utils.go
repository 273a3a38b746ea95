package main

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/lucasb-eyer/go-colorful"

	"quilt/internal/quilt"
)

var errBadColor = errors.New("not a color")

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// normalizeColor accepts "#rgb", "#rrggbb" or the same without the hash
// and returns the lowercase "#rrggbb" form.
func normalizeColor(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("empty color: %w", errBadColor)
	}
	if !strings.HasPrefix(token, "#") {
		token = "#" + token
	}
	c, err := colorful.Hex(token)
	if err != nil {
		return "", fmt.Errorf("%q: %w", token, errBadColor)
	}
	return c.Hex(), nil
}

// worldCell maps a screen cell to a canvas cell, taking the palette bar
// and the pan offset into account.
func (m *model) worldCell(screenX, screenY int) (int, int) {
	return screenX + m.panX, screenY - paletteRows + m.panY
}

// cellToPixel returns the canvas pixel at the center of a canvas cell.
func (m *model) cellToPixel(cellX, cellY int) quilt.Point {
	cw, ch := float64(m.config.CellWidth), float64(m.config.CellHeight)
	return quilt.Point{
		X: float64(cellX)*cw + cw/2,
		Y: float64(cellY)*ch + ch/2,
	}
}

func (m *model) screenToPixel(screenX, screenY int) quilt.Point {
	return m.cellToPixel(m.worldCell(screenX, screenY))
}

func (m *model) cursorPixel() quilt.Point {
	return m.screenToPixel(m.cursorX, m.cursorY)
}

func (m *model) canvasHeight() int {
	h := m.height - paletteRows - statusRows
	if h < 1 {
		h = 1
	}
	return h
}

// swatchAt returns the palette index under screen column x of the
// palette bar, or -1.
func (m *model) swatchAt(x int) int {
	x -= len(paletteLabel)
	if x < 0 || x%swatchStride >= swatchWidth {
		return -1
	}
	i := x / swatchStride
	if i >= len(m.palette) {
		return -1
	}
	return i
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < paletteRows {
		m.cursorY = paletteRows
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	maxY := paletteRows + m.canvasHeight() - 1
	if m.cursorY > maxY {
		m.cursorY = maxY
	}
}
