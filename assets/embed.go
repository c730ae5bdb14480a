// Package assets holds the character model descriptors and loads them off
// the simulation goroutine.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed models/*.yaml
var assetsFS embed.FS

var ErrInvalidModel = errors.New("assets: invalid model")

// Model is how a character is drawn: a body box in world units and two
// colors in #rrggbb form.
type Model struct {
	Name   string  `yaml:"name"`
	Body   string  `yaml:"body"`
	Accent string  `yaml:"accent"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Scaled returns the model sized by a character's uniform scale. A
// non-positive scale leaves it unchanged.
func (m Model) Scaled(scale float64) Model {
	if scale <= 0 {
		return m
	}
	m.Width *= scale
	m.Height *= scale
	return m
}

func (m Model) BodyColor() color.RGBA {
	c, _ := parseHex(m.Body)
	return c
}

func (m Model) AccentColor() color.RGBA {
	c, _ := parseHex(m.Accent)
	return c
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadModel decodes and validates a model descriptor.
func LoadModel(path string) (Model, error) {
	b, err := LoadFile(path)
	if err != nil {
		return Model{}, err
	}
	var m Model
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Model{}, fmt.Errorf("%w: %s: %v", ErrInvalidModel, path, err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return Model{}, fmt.Errorf("%w: %s: size %vx%v", ErrInvalidModel, path, m.Width, m.Height)
	}
	for _, hex := range []string{m.Body, m.Accent} {
		if _, err := parseHex(hex); err != nil {
			return Model{}, fmt.Errorf("%w: %s: %v", ErrInvalidModel, path, err)
		}
	}
	return m, nil
}

func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
