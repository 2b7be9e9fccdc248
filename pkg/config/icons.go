package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"

	"xcalendar-icons/pkg/fonts"
)

const (
	DefaultIconsConfigPath = "icons.toml"
	defaultBackground      = "#4a6fa5"
	defaultTextColor       = "#ffffff"
	defaultLabel           = "XC"
	defaultOutputDir       = "icons"
)

var defaultSizes = []int{16, 32, 48, 64, 128, 256}

type IconsConfig struct {
	Background string   `toml:"background"`
	TextColor  string   `toml:"text_color"`
	Label      string   `toml:"label"`
	Sizes      []int    `toml:"sizes"`
	OutputDir  string   `toml:"output_dir"`
	Fonts      []string `toml:"fonts"`
}

func DefaultIconsConfig() IconsConfig {
	return IconsConfig{
		Background: defaultBackground,
		TextColor:  defaultTextColor,
		Label:      defaultLabel,
		Sizes:      slices.Clone(defaultSizes),
		OutputDir:  defaultOutputDir,
		Fonts:      slices.Clone(fonts.DefaultCandidates),
	}
}

// LoadIconsConfig reads path as TOML. A missing file is not an error and
// yields the defaults.
func LoadIconsConfig(path string) (IconsConfig, error) {
	cfg := DefaultIconsConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	var file IconsConfig
	if _, err := toml.Decode(string(data), &file); err != nil {
		return DefaultIconsConfig(), fmt.Errorf("decode %s: %w", path, err)
	}

	file.applyDefaults()
	if err := file.Validate(); err != nil {
		return file, err
	}
	slices.Sort(file.Sizes)

	return file, nil
}

func (c *IconsConfig) applyDefaults() {
	if c.Background == "" {
		c.Background = defaultBackground
	}
	if c.TextColor == "" {
		c.TextColor = defaultTextColor
	}
	if c.Label == "" {
		c.Label = defaultLabel
	}
	if len(c.Sizes) == 0 {
		c.Sizes = slices.Clone(defaultSizes)
	}
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	if len(c.Fonts) == 0 {
		c.Fonts = slices.Clone(fonts.DefaultCandidates)
	}
}

func (c IconsConfig) Validate() error {
	seen := make(map[int]bool, len(c.Sizes))
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("invalid icon size: %d", size)
		}
		if seen[size] {
			return fmt.Errorf("duplicate icon size: %d", size)
		}
		seen[size] = true
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if _, err := c.BackgroundRGBA(); err != nil {
		return err
	}
	if _, err := c.TextRGBA(); err != nil {
		return err
	}
	return nil
}

// SortedSizes returns the sizes in ascending order without touching c.
func (c IconsConfig) SortedSizes() []int {
	sizes := slices.Clone(c.Sizes)
	slices.Sort(sizes)
	return sizes
}

func (c IconsConfig) BackgroundRGBA() (color.RGBA, error) {
	return parseColor("background", c.Background)
}

func (c IconsConfig) TextRGBA() (color.RGBA, error) {
	return parseColor("text_color", c.TextColor)
}

func parseColor(key, s string) (color.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
