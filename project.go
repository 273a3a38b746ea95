package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quilt/internal/export"
	"quilt/internal/quilt"
)

// resolvePath appends ext when name has no extension and places relative
// names under the configured save directory.
func (m *model) resolvePath(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			name = filepath.Join(homeDir, strings.TrimPrefix(name, "~"))
		}
	}
	if filepath.Ext(name) == "" {
		name += ext
	}
	return m.config.GetSavePath(name)
}

func saveProject(path string, records []quilt.Record) error {
	var buf bytes.Buffer
	if err := quilt.Encode(&buf, records); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readProject(path string) ([]quilt.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := quilt.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return records, nil
}

func (m *model) save(path string) {
	records := m.app.Snapshot()
	if err := saveProject(path, records); err != nil {
		m.logger.Error("save failed", zap.String("path", path), zap.Error(err))
		m.errorMessage = err.Error()
		return
	}
	m.filename = path
	m.logger.Info("saved design", zap.String("path", path), zap.Int("placements", len(records)))
	m.successMessage = fmt.Sprintf("Saved %d patches to %s", len(records), path)
}

// load replaces the canvas with the design at path. A file that fails to
// read or decode leaves the canvas as it was.
func (m *model) load(path string) {
	records, err := readProject(path)
	if err != nil {
		m.logger.Error("load failed", zap.String("path", path), zap.Error(err))
		m.errorMessage = err.Error()
		return
	}
	m.app.Load(records)
	m.picker.reset()
	m.filename = path
	m.logger.Info("loaded design", zap.String("path", path), zap.Int("placements", len(records)))
	m.successMessage = fmt.Sprintf("Loaded %d patches from %s", len(records), path)
}

func (m *model) exportImage(path string) {
	opts := export.Options{
		Width:  m.config.CanvasWidth,
		Height: m.config.CanvasHeight,
		Labels: m.config.ExportLabels,
	}
	if err := export.Rasterize(m.app.Scene.Items(), opts, path); err != nil {
		m.logger.Error("export failed", zap.String("path", path), zap.Error(err))
		m.errorMessage = err.Error()
		return
	}
	m.logger.Info("exported image", zap.String("path", path))
	m.successMessage = fmt.Sprintf("Exported to %s", path)
}

// runFileOp resolves the prompt value for the current file operation.
// Saving or exporting over an existing file asks first.
func (m *model) runFileOp(name string) {
	ext := ".json"
	if m.fileOp == FileOpExport {
		ext = ".png"
	}
	path := m.resolvePath(name, ext)
	m.mode = ModeNormal
	if path == "" {
		return
	}

	switch m.fileOp {
	case FileOpOpen:
		m.load(path)
	case FileOpSave, FileOpExport:
		if _, err := os.Stat(path); err == nil {
			m.pendingPath = path
			m.confirmAction = ConfirmOverwriteFile
			m.mode = ModeConfirm
			return
		}
		m.writeFile(path)
	}
}

func (m *model) writeFile(path string) {
	if m.fileOp == FileOpExport {
		m.exportImage(path)
		return
	}
	m.save(path)
}
