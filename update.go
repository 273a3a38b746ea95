package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quilt/internal/quilt"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		switch m.mode {
		case ModeMove:
			return m.handleMoveKey(msg)
		case ModeColorInput, ModeFileInput:
			return m.handleInputKey(msg)
		case ModePicker:
			return m.handlePickerKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearMessages()
	k := msg.String()

	if n, err := strconv.Atoi(k); err == nil && len(k) == 1 {
		i := (n + 9) % 10
		if i < len(m.palette) {
			m.createPatch(m.palette[i])
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.app.Placements.Len() == 0 {
			return m, tea.Quit
		}
		m.confirmAction = ConfirmQuit
		m.mode = ModeConfirm
	case key.Matches(msg, m.keys.Help):
		m.help = true
	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right):
		m.handleNavigation(k, m.getMoveSpeed(k))
	case key.Matches(msg, m.keys.Pan):
		m.zPanMode = !m.zPanMode
	case key.Matches(msg, m.keys.Color):
		m.openPrompt(ModeColorInput, "#rrggbb", m.currentColor)
	case key.Matches(msg, m.keys.Create):
		m.createPatch(m.currentColor)
	case key.Matches(msg, m.keys.Stored):
		if m.app.Store.Len() == 0 {
			m.errorMessage = "no stored patches yet"
			return m, nil
		}
		m.picker.reset()
		m.mode = ModePicker
	case key.Matches(msg, m.keys.Select):
		m.toggleSelectionAt(m.cursorPixel())
	case key.Matches(msg, m.keys.Group):
		m.group()
	case key.Matches(msg, m.keys.Move):
		if m.app.PressAt(m.cursorPixel()) {
			m.mode = ModeMove
		} else {
			m.errorMessage = "no patch to move"
		}
	case key.Matches(msg, m.keys.Save):
		m.fileOp = FileOpSave
		m.openPrompt(ModeFileInput, "design.json", m.filename)
	case key.Matches(msg, m.keys.Open):
		m.fileOp = FileOpOpen
		m.openPrompt(ModeFileInput, "design.json", m.filename)
	case key.Matches(msg, m.keys.Export):
		m.fileOp = FileOpExport
		m.openPrompt(ModeFileInput, "design.png", "")
	case key.Matches(msg, m.keys.New):
		m.confirmAction = ConfirmNewDesign
		m.mode = ModeConfirm
	case key.Matches(msg, m.keys.Copy):
		m.copyColorAt(m.cursorPixel())
	case key.Matches(msg, m.keys.Paste):
		m.pasteColor()
	case key.Matches(msg, m.keys.Cancel):
		if !m.app.CancelDrag() {
			m.app.ClearSelection()
		}
	}
	return m, nil
}

func (m model) handleMoveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right):
		m.handleNavigation(k, m.getMoveSpeed(k))
	case key.Matches(msg, m.keys.Accept):
		m.release()
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Cancel):
		m.app.CancelDrag()
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.mode = ModeNormal
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		m.input.Blur()
		m.clearMessages()
		if m.mode == ModeColorInput {
			m.mode = ModeNormal
			m.chooseColor(value)
			return m, nil
		}
		m.runFileOp(value)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.app.Store.Len()
	switch msg.String() {
	case "j", "down":
		if m.picker.cursor < n-1 {
			m.picker.cursor++
		}
	case "k", "up":
		if m.picker.cursor > 0 {
			m.picker.cursor--
		}
	case " ", "x":
		m.picker.toggle()
	case "enter":
		m.mode = ModeNormal
		m.useStored(m.picker.indices(n))
	case "esc", "q":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteFile:
			m.writeFile(m.pendingPath)
			m.pendingPath = ""
		case ConfirmNewDesign:
			m.app = quilt.New(quilt.Options{StrictGroupColor: m.config.StrictGroupColor})
			m.picker.reset()
			m.filename = ""
			m.successMessage = "New design"
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.pendingPath = ""
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal && m.mode != ModeMove {
		return m, nil
	}
	switch msg.Type {
	case tea.MouseWheelUp:
		m.handlePan("k", 1)
		return m, nil
	case tea.MouseWheelDown:
		m.handlePan("j", 1)
		return m, nil
	}

	// Presses on the palette bar pick a swatch. Once a drag is under way
	// the pointer is clamped to the canvas instead.
	if msg.Y < paletteRows && !m.mouseDown {
		if msg.Type == tea.MouseLeft {
			if i := m.swatchAt(msg.X); i >= 0 {
				m.clearMessages()
				m.createPatch(m.palette[i])
			}
		}
		return m, nil
	}

	m.cursorX, m.cursorY = msg.X, msg.Y
	m.ensureCursorInBounds()
	p := m.screenToPixel(m.cursorX, m.cursorY)

	switch msg.Type {
	case tea.MouseLeft:
		if m.mouseDown {
			m.app.DragTo(p)
			return m, nil
		}
		m.mouseDown = true
		m.clearMessages()
		if m.app.PressAt(p) {
			m.mode = ModeMove
		}
	case tea.MouseMotion:
		if m.mouseDown {
			m.app.DragTo(p)
		}
	case tea.MouseRelease:
		if !m.mouseDown {
			return m, nil
		}
		m.mouseDown = false
		m.app.DragTo(p)
		m.release()
		m.mode = ModeNormal
	case tea.MouseRight:
		m.clearMessages()
		m.toggleSelectionAt(p)
	}
	return m, nil
}

func (m *model) openPrompt(mode Mode, placeholder, value string) {
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.mode = mode
}

func (m *model) createPatch(color string) {
	placement, err := m.app.CreatePatch(color)
	if err != nil {
		m.logger.Warn("patch not created", zap.String("color", color), zap.Error(err))
		m.errorMessage = err.Error()
		return
	}
	m.currentColor = color
	m.logger.Debug("patch created",
		zap.String("color", color),
		zap.Int("patches", m.app.Store.Len()),
		zap.Uint64("handle", uint64(placement.Handle)))
	m.successMessage = fmt.Sprintf("Patch %d created", m.app.Store.Len())
}

// chooseColor validates a typed color. An empty value is a cancelled
// prompt.
func (m *model) chooseColor(value string) {
	if value == "" {
		return
	}
	hex, err := normalizeColor(value)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.createPatch(hex)
}

func (m *model) release() {
	r, ok := m.app.Release()
	if !ok {
		return
	}
	m.successMessage = fmt.Sprintf("Placed at (%g,%g)", r.X1, r.Y1)
}

func (m *model) toggleSelectionAt(p quilt.Point) {
	placement, ok := m.app.PlacementAt(p)
	if !ok {
		return
	}
	if m.app.ToggleSelection(placement) {
		m.successMessage = fmt.Sprintf("%d selected", len(m.app.Selection()))
	}
}

func (m *model) useStored(indices []int) {
	if len(indices) == 0 {
		return
	}
	placed, err := m.app.UseStoredPatches(indices)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = fmt.Sprintf("%d stored patches placed and selected", len(placed))
}

func (m *model) group() {
	n := len(m.app.Selection())
	placement, err := m.app.GroupSelected()
	switch {
	case errors.Is(err, quilt.ErrCapacity):
		m.logger.Warn("group rejected", zap.Int("selected", n), zap.Error(err))
		m.errorMessage = err.Error()
	case err != nil:
		m.errorMessage = err.Error()
	case placement != nil:
		m.logger.Info("grouped patches",
			zap.Int("selected", n),
			zap.String("color", placement.Patch.Color),
			zap.Int("patches", m.app.Store.Len()))
		m.successMessage = fmt.Sprintf("Grouped %d patches", n)
	}
}

func (m *model) copyColorAt(p quilt.Point) {
	placement, ok := m.app.PlacementAt(p)
	if !ok {
		m.errorMessage = "no patch under cursor"
		return
	}
	if err := writeClipboardText(placement.Patch.Color); err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.successMessage = "Copied " + placement.Patch.Color
}

func (m *model) pasteColor() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	hex, err := normalizeColor(text)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.createPatch(hex)
}
