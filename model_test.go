package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quilt/internal/quilt"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	cfg := defaultConfig()
	cfg.SaveDirectory = t.TempDir()
	return newTestModelWith(cfg)
}

func newTestModelWith(cfg *Config) model {
	m := initialModel(cfg, zap.NewNop())
	return send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func keys(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func mouse(typ tea.MouseEventType, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Type: typ}
}

func placementRect(t *testing.T, m model, i int) quilt.Rect {
	t.Helper()
	require.Less(t, i, m.app.Placements.Len())
	r, ok := m.app.Rect(m.app.Placements.At(i))
	require.True(t, ok)
	return r
}

// prompt opens a prompt with key k and submits value.
func prompt(m model, k, value string) model {
	m = send(m, keys(k)...)
	m.input.SetValue(value)
	return send(m, enter)
}

func TestCreateKey_PlacesPatchInFirstSlot(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)

	assert.Equal(t, 1, m.app.Store.Len())
	assert.Equal(t, quilt.Rect{X1: 10, Y1: 10, X2: 60, Y2: 60}, placementRect(t, m, 0))
	assert.Equal(t, m.palette[0], m.app.Placements.At(0).Patch.Color)
	assert.Empty(t, m.errorMessage)
}

func TestDigitKeys_UsePaletteSwatches(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("30")...)

	require.Equal(t, 2, m.app.Placements.Len())
	assert.Equal(t, m.palette[2], m.app.Placements.At(0).Patch.Color)
	assert.Equal(t, m.palette[9], m.app.Placements.At(1).Patch.Color)
	assert.Equal(t, m.palette[9], m.currentColor)
}

func TestPaletteClick_CreatesPatch(t *testing.T) {
	m := newTestModel(t)
	x := len(paletteLabel) + 2*swatchStride + 1
	m = send(m, mouse(tea.MouseLeft, x, 0), mouse(tea.MouseRelease, x, 0))

	require.Equal(t, 1, m.app.Placements.Len())
	assert.Equal(t, m.palette[2], m.app.Placements.At(0).Patch.Color)
	assert.False(t, m.mouseDown)
}

func TestPaletteClick_GapIsIgnored(t *testing.T) {
	m := newTestModel(t)
	x := len(paletteLabel) + swatchWidth
	m = send(m, mouse(tea.MouseLeft, x, 0))
	assert.Equal(t, 0, m.app.Placements.Len())
}

func TestMouseDrag_SnapsOnRelease(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)

	// Cell (2,1) is pixel (25,12.5), inside the patch at (10,10).
	m = send(m, mouse(tea.MouseLeft, 2, 1))
	require.Equal(t, quilt.Dragging, m.app.Drag.State())
	item, _ := m.app.Scene.Item(m.app.Placements.At(0).Handle)
	assert.Equal(t, quilt.HighlightColor, item.Outline)
	assert.Equal(t, ModeMove, m.mode)

	m = send(m, mouse(tea.MouseMotion, 10, 3))
	assert.Equal(t, quilt.Rect{X1: 90, Y1: 60, X2: 140, Y2: 110}, placementRect(t, m, 0))

	m = send(m, mouse(tea.MouseRelease, 10, 3))
	assert.Equal(t, quilt.Rect{X1: 100, Y1: 50, X2: 150, Y2: 100}, placementRect(t, m, 0))
	assert.Equal(t, quilt.Idle, m.app.Drag.State())
	assert.Equal(t, ModeNormal, m.mode)
	assert.Contains(t, m.successMessage, "(100,50)")

	item, _ = m.app.Scene.Item(m.app.Placements.At(0).Handle)
	assert.Equal(t, m.palette[0], item.Outline)
}

func TestMouseDrag_LeftWhileDownMoves(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)
	m = send(m,
		mouse(tea.MouseLeft, 2, 1),
		mouse(tea.MouseLeft, 10, 3),
		mouse(tea.MouseRelease, 10, 3),
	)
	assert.Equal(t, quilt.Rect{X1: 100, Y1: 50, X2: 150, Y2: 100}, placementRect(t, m, 0))
}

func TestMouseRelease_WithoutPress(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)
	m = send(m, mouse(tea.MouseRelease, 10, 3))
	assert.Equal(t, quilt.Rect{X1: 10, Y1: 10, X2: 60, Y2: 60}, placementRect(t, m, 0))
}

func TestKeyboardMove_EnterSnaps(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)

	// The cursor starts on cell (0,0), pixel (5,12.5).
	m = send(m, keys("m")...)
	require.Equal(t, ModeMove, m.mode)
	m = send(m, keys("jj")...)
	m = send(m, enter)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, quilt.Rect{X1: 0, Y1: 50, X2: 50, Y2: 100}, placementRect(t, m, 0))
}

func TestKeyboardMove_EscCancels(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)
	m = send(m, keys("mllljj")...)
	m = send(m, esc)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, quilt.Idle, m.app.Drag.State())
	assert.Equal(t, quilt.Rect{X1: 10, Y1: 10, X2: 60, Y2: 60}, placementRect(t, m, 0))
}

func TestMoveKey_EmptyCanvas(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("m")...)
	assert.Equal(t, ModeNormal, m.mode)
	assert.NotEmpty(t, m.errorMessage)
}

func TestCreateKey_CapacityError(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < quilt.MaxPatches; i++ {
		_, err := m.app.CreatePatch("#000000")
		require.NoError(t, err)
	}
	m = send(m, keys("n")...)

	assert.Contains(t, m.errorMessage, "1000")
	assert.Equal(t, quilt.MaxPatches, m.app.Store.Len())
	assert.Equal(t, quilt.MaxPatches, m.app.Placements.Len())
}

func TestColorPrompt(t *testing.T) {
	m := newTestModel(t)
	m = prompt(m, "c", "ABC")

	assert.Equal(t, ModeNormal, m.mode)
	require.Equal(t, 1, m.app.Placements.Len())
	assert.Equal(t, "#aabbcc", m.app.Placements.At(0).Patch.Color)
	assert.Equal(t, "#aabbcc", m.currentColor)
}

func TestColorPrompt_CancelAndInvalid(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("c")...)
	require.Equal(t, ModeColorInput, m.mode)
	m = send(m, esc)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 0, m.app.Placements.Len())

	m = prompt(m, "c", "")
	assert.Equal(t, 0, m.app.Placements.Len())
	assert.Empty(t, m.errorMessage)

	m = prompt(m, "c", "not-a-color")
	assert.Equal(t, 0, m.app.Placements.Len())
	assert.NotEmpty(t, m.errorMessage)
}

func TestSaveAndOpen_RoundTrip(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n2")...)
	m = send(m, mouse(tea.MouseLeft, 2, 1), mouse(tea.MouseRelease, 10, 3))
	m = prompt(m, "w", "design")
	require.Empty(t, m.errorMessage)

	path := filepath.Join(m.config.SaveDirectory, "design.json")
	require.FileExists(t, path)

	other := newTestModelWith(m.config)
	other = prompt(other, "o", "design")
	require.Empty(t, other.errorMessage)

	assert.Equal(t, m.app.Snapshot(), other.app.Snapshot())
	assert.Equal(t, 0, other.app.Store.Len())
}

func TestOpen_MalformedFileKeepsCanvas(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)
	bad := `[{"coords": [0, 0, 50, 50], "size": 50}]`
	require.NoError(t, os.WriteFile(filepath.Join(m.config.SaveDirectory, "bad.json"), []byte(bad), 0644))

	m = prompt(m, "o", "bad")

	assert.NotEmpty(t, m.errorMessage)
	require.Equal(t, 1, m.app.Placements.Len())
	assert.Equal(t, quilt.Rect{X1: 10, Y1: 10, X2: 60, Y2: 60}, placementRect(t, m, 0))
}

func TestOpen_MissingFile(t *testing.T) {
	m := newTestModel(t)
	m = prompt(m, "o", "nowhere")
	assert.NotEmpty(t, m.errorMessage)
}

func TestSave_OverwriteAsks(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)
	m = prompt(m, "w", "design")
	m = send(m, keys("n")...)

	m = prompt(m, "w", "design")
	require.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmOverwriteFile, m.confirmAction)

	m = send(m, keys("y")...)
	assert.Equal(t, ModeNormal, m.mode)

	records, err := readProject(filepath.Join(m.config.SaveDirectory, "design.json"))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestExport_WritesImage(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)
	m = prompt(m, "e", "quilt")

	require.Empty(t, m.errorMessage)
	assert.FileExists(t, filepath.Join(m.config.SaveDirectory, "quilt.png"))
}

func TestExport_EmptyCanvas(t *testing.T) {
	m := newTestModel(t)
	m = prompt(m, "e", "quilt")
	assert.NotEmpty(t, m.errorMessage)
	assert.NoFileExists(t, filepath.Join(m.config.SaveDirectory, "quilt.png"))
}

func TestPicker_PlacesAndGroups(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("nn")...)

	m = send(m, keys("s")...)
	require.Equal(t, ModePicker, m.mode)
	m = send(m, keys(" j ")...)
	m = send(m, enter)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 4, m.app.Placements.Len())
	assert.Len(t, m.app.Selection(), 2)

	m = send(m, keys("g")...)
	assert.Equal(t, 3, m.app.Placements.Len())
	assert.Equal(t, 3, m.app.Store.Len())
	assert.Empty(t, m.app.Selection())
}

func TestPicker_EmptyStore(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("s")...)
	assert.Equal(t, ModeNormal, m.mode)
	assert.NotEmpty(t, m.errorMessage)
}

func TestRightClick_TogglesSelection(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)

	m = send(m, mouse(tea.MouseRight, 2, 1))
	assert.Len(t, m.app.Selection(), 1)
	m = send(m, mouse(tea.MouseRight, 2, 1))
	assert.Empty(t, m.app.Selection())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keys("q")[0])
	assert.NotNil(t, cmd)

	m = send(m, keys("n")...)
	next, cmd := m.Update(keys("q")[0])
	assert.Nil(t, cmd)
	assert.Equal(t, ModeConfirm, next.(model).mode)
}

func TestNewDesign(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("nn")...)
	m = send(m, keys("N")...)
	require.Equal(t, ModeConfirm, m.mode)
	m = send(m, keys("y")...)

	assert.Equal(t, 0, m.app.Placements.Len())
	assert.Equal(t, 0, m.app.Store.Len())
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)
	out := m.View()

	assert.Contains(t, out, "Mode: NORMAL")
	assert.Contains(t, out, "Patches: 1/1000")

	m = send(m, keys("?")...)
	assert.Contains(t, m.View(), "Quilt Block Designer")
	m = send(m, esc)
	assert.False(t, m.help)
}

func TestMouseDrag_ReleaseOverPaletteSnaps(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)

	m = send(m,
		mouse(tea.MouseLeft, 2, 1),
		mouse(tea.MouseMotion, 5, 1),
		mouse(tea.MouseRelease, 5, 0),
	)

	assert.Equal(t, quilt.Idle, m.app.Drag.State())
	assert.False(t, m.mouseDown)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, quilt.Rect{X1: 50, Y1: 0, X2: 100, Y2: 50}, placementRect(t, m, 0))
	assert.Equal(t, 1, m.app.Placements.Len(), "no swatch click while dragging")
}

func TestMouseDrag_MotionOverPaletteIsClamped(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)

	m = send(m, mouse(tea.MouseLeft, 2, 1), mouse(tea.MouseMotion, 5, 0))

	assert.Equal(t, quilt.Dragging, m.app.Drag.State())
	assert.Equal(t, 1, m.cursorY)
	assert.Equal(t, quilt.Rect{X1: 40, Y1: 10, X2: 90, Y2: 60}, placementRect(t, m, 0))
}

func TestFilename_OnlyRememberedOnSuccess(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keys("n")...)
	saved := filepath.Join(m.config.SaveDirectory, "design.json")

	m = prompt(m, "w", "design")
	require.Empty(t, m.errorMessage)
	assert.Equal(t, saved, m.filename)

	m = prompt(m, "o", "nowhere")
	require.NotEmpty(t, m.errorMessage)
	assert.Equal(t, saved, m.filename)

	m = prompt(m, "e", "quilt")
	require.Empty(t, m.errorMessage)
	assert.Equal(t, saved, m.filename)

	other := newTestModelWith(m.config)
	other = prompt(other, "o", "design")
	require.Empty(t, other.errorMessage)
	assert.Equal(t, saved, other.filename)
}
