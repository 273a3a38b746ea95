package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	SaveDirectory    string   `toml:"save_directory"`
	CanvasWidth      int      `toml:"canvas_width"`
	CanvasHeight     int      `toml:"canvas_height"`
	CellWidth        int      `toml:"cell_width"`
	CellHeight       int      `toml:"cell_height"`
	StrictGroupColor bool     `toml:"strict_group_color"`
	ExportLabels     bool     `toml:"export_labels"`
	LogFile          string   `toml:"log_file"`
	Palette          []string `toml:"palette"`

	// Unknown lists keys in the file that no field consumed.
	Unknown []string `toml:"-"`
}

func defaultConfig() *Config {
	palette := make([]string, len(defaultPalette))
	copy(palette, defaultPalette)
	return &Config{
		SaveDirectory: "",
		CanvasWidth:   800,
		CanvasHeight:  800,
		CellWidth:     10,
		CellHeight:    25,
		LogFile:       filepath.Join(os.TempDir(), "quilt.log"),
		Palette:       palette,
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".quiltrc")
}

// loadConfig reads the TOML config at path, or ~/.quiltrc when path is
// empty. A missing file yields the defaults. A broken file yields the
// defaults and the parse error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return config, nil
	}

	md, err := toml.DecodeFile(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return defaultConfig(), err
	}
	for _, key := range md.Undecoded() {
		config.Unknown = append(config.Unknown, key.String())
	}
	config.normalize()
	return config, nil
}

func (c *Config) normalize() {
	defaults := defaultConfig()
	homeDir, _ := os.UserHomeDir()

	if c.SaveDirectory != "" {
		value := c.SaveDirectory
		if strings.HasPrefix(value, "~") && homeDir != "" {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
		if !filepath.IsAbs(value) {
			if absPath, err := filepath.Abs(value); err == nil {
				value = absPath
			}
		}
		c.SaveDirectory = value
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = defaults.CanvasWidth
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = defaults.CanvasHeight
	}
	if c.CellWidth <= 0 {
		c.CellWidth = defaults.CellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = defaults.CellHeight
	}
	if c.LogFile == "" {
		c.LogFile = defaults.LogFile
	}

	palette := make([]string, 0, len(c.Palette))
	for _, token := range c.Palette {
		if hex, err := normalizeColor(token); err == nil {
			palette = append(palette, hex)
		}
	}
	if len(palette) == 0 {
		palette = defaults.Palette
	}
	c.Palette = palette
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
