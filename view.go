package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"quilt/internal/quilt"
)

var (
	gridDotColor  = lipgloss.Color("240")
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// cell is one rendered terminal cell.
type cell struct {
	ch     rune
	fg, bg string
	cursor bool
}

func (m model) View() string {
	if m.help {
		return m.renderHelp()
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderPalette())
	b.WriteString("\n")
	if m.mode == ModePicker {
		b.WriteString(m.renderPicker())
	} else {
		b.WriteString(m.renderCanvas())
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m model) renderPalette() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(paletteLabel))
	for i, hex := range m.palette {
		label := "   "
		if i < 10 {
			label = fmt.Sprintf(" %d ", (i+1)%10)
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(contrastHex(hex)))
		if hex == m.currentColor {
			style = style.Bold(true).Underline(true)
		}
		b.WriteString(style.Render(label))
		b.WriteString(" ")
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
}

func (m model) renderCanvas() string {
	items := m.app.Scene.Items()
	selected := make(map[quilt.Handle]bool)
	for _, p := range m.app.Selection() {
		selected[p.Handle] = true
	}
	cw, ch := float64(m.config.CellWidth), float64(m.config.CellHeight)

	rows := m.canvasHeight()
	lines := make([]string, rows)
	row := make([]cell, m.width)
	for y := 0; y < rows; y++ {
		for x := 0; x < m.width; x++ {
			cx, cy := x+m.panX, y+m.panY
			p := m.cellToPixel(cx, cy)
			c := cell{ch: ' '}

			if item, ok := topmostItem(items, p); ok {
				c.bg = item.Fill
				c.fg = contrastHex(item.Fill)
				if item.Width > 1 && onBorder(item.Rect, p, cw, ch) {
					c.ch = '▓'
					c.fg = item.Outline
				}
				if selected[item.Handle] {
					c.ch = '•'
				}
			} else if int(float64(cx)*cw)%quilt.GridSize < int(cw) &&
				int(float64(cy)*ch)%quilt.GridSize < int(ch) {
				c.ch = '·'
				c.fg = string(gridDotColor)
			}
			c.cursor = x == m.cursorX && y+paletteRows == m.cursorY
			row[x] = c
		}
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

func topmostItem(items []quilt.Item, p quilt.Point) (quilt.Item, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Rect.Contains(p) {
			return items[i], true
		}
	}
	return quilt.Item{}, false
}

// onBorder reports whether the cell centered on p touches the edge of r.
func onBorder(r quilt.Rect, p quilt.Point, cw, ch float64) bool {
	return p.X-r.X1 < cw || r.X2-p.X <= cw || p.Y-r.Y1 < ch || r.Y2-p.Y <= ch
}

// renderRow styles runs of identical cells together.
func renderRow(row []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i] == row[start] {
			continue
		}
		run := row[start]
		style := lipgloss.NewStyle()
		if run.bg != "" {
			style = style.Background(lipgloss.Color(run.bg))
		}
		if run.fg != "" {
			style = style.Foreground(lipgloss.Color(run.fg))
		}
		if run.cursor {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(strings.Repeat(string(run.ch), i-start)))
		start = i
	}
	return b.String()
}

func (m model) renderPicker() string {
	rows := m.canvasHeight()
	patches := m.app.Store.Patches()
	lines := []string{titleStyle.Render("Select stored patches: space toggles, enter places, esc cancels")}

	visible := rows - 1
	first := 0
	if m.picker.cursor >= visible {
		first = m.picker.cursor - visible + 1
	}
	for i := first; i < len(patches) && len(lines) < rows; i++ {
		mark := "[ ]"
		if m.picker.selected[i] {
			mark = "[x]"
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(patches[i].Color)).Render("  ")
		name := fmt.Sprintf("%s Patch %d %s %s", mark, i+1, swatch, patches[i].Color)
		if i == m.picker.cursor {
			name = selectedStyle.Render("> " + name + " <")
		} else {
			name = "  " + name
		}
		lines = append(lines, name)
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m model) renderStatus() string {
	var status string
	switch m.mode {
	case ModeColorInput:
		status = fmt.Sprintf("Mode: COLOR | Patch color: %s | Enter=create, Esc=cancel", m.input.View())
	case ModeFileInput:
		opStr := map[FileOperation]string{
			FileOpSave:   "Save",
			FileOpOpen:   "Open",
			FileOpExport: "Export",
		}[m.fileOp]
		status = fmt.Sprintf("Mode: FILE | %s filename: %s | Enter=confirm, Esc=cancel", opStr, m.input.View())
	case ModePicker:
		status = fmt.Sprintf("Mode: PICK | %d chosen of %d stored", len(m.picker.selected), m.app.Store.Len())
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit? Unsaved patches are lost (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("Overwrite %s? (y/n)", m.pendingPath)
		case ConfirmNewDesign:
			message = "Start a new design? (y/n)"
		}
		status = fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		modeStr := m.modeString()
		if m.zPanMode {
			modeStr = "PAN"
		}
		status = fmt.Sprintf("Mode: %s | Color: %s | Patches: %d/%d | Placed: %d | Selected: %d | Cursor: (%d,%d)",
			modeStr, m.currentColor, m.app.Store.Len(), quilt.MaxPatches,
			m.app.Placements.Len(), len(m.app.Selection()), m.cursorX, m.cursorY-paletteRows)
		if m.successMessage != "" {
			status += " | " + m.successMessage
		}
		if m.errorMessage != "" {
			status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
		} else if m.successMessage == "" {
			status += " | " + m.helpView.ShortHelpView(m.keys.ShortHelp())
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(status)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeMove:
		return "MOVE"
	case ModeColorInput:
		return "COLOR"
	case ModeFileInput:
		return "FILE"
	case ModePicker:
		return "PICK"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) renderHelp() string {
	h := m.helpView
	h.ShowAll = true
	lines := []string{
		titleStyle.Render("Quilt Block Designer"),
		"",
		"Click a swatch or press 1-0 to create a patch. Drag a patch with the",
		"mouse (or m, hjkl, enter) and it snaps to the grid on release.",
		"Right click or x marks patches, g groups them into one block.",
		"",
		h.View(m.keys),
		"",
		"esc, q or ? closes this help",
	}
	return strings.Join(lines, "\n")
}

func contrastHex(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
