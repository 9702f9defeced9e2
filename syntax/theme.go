//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package syntax

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	gott "github.com/jakelongenecker93/notpad/types"
)

// A Theme maps color classes to hex colors. The classes cover the
// syntax colors plus the match and found overlays.
type Theme struct {
	Name   string            `yaml:"name"`
	Colors map[string]string `yaml:"colors"`

	indexes map[string]int
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "notpad",
		Colors: map[string]string{
			"keyword": "#0000cc",
			"builtin": "#0066aa",
			"comment": "#008000",
			"string":  "#aa5500",
			"number":  "#990099",
			"match":   "#ffff00",
			"found":   "#add8e6",
		},
	}
}

// LoadTheme reads a YAML theme file. A theme without a name takes the
// file's base name.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme: %w", err)
	}
	t := &Theme{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

// FindTheme loads the named theme from dir.
func FindTheme(dir string, name string) (*Theme, error) {
	return LoadTheme(filepath.Join(dir, name+".yaml"))
}

// ListThemes returns the names of the themes available in dir.
func ListThemes(dir string) []string {
	matches, err := doublestar.Glob(os.DirFS(dir), "*.{yaml,yml}")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, filepath.Ext(m)))
	}
	sort.Strings(names)
	return names
}

// Index returns the 256-color palette index for a class, or -1 when
// the theme leaves it unset.
func (t *Theme) Index(class string) int {
	if t.indexes == nil {
		t.indexes = make(map[string]int)
	}
	if n, ok := t.indexes[class]; ok {
		return n
	}
	n := -1
	if hex, ok := t.Colors[class]; ok {
		n = ansiIndex(hex)
	}
	t.indexes[class] = n
	return n
}

// ForColor returns the palette index for a syntax color.
func (t *Theme) ForColor(c gott.Color) int {
	return t.Index(classFor(c))
}

// HexFor returns the hex color for a syntax color, or "" for plain text.
func (t *Theme) HexFor(c gott.Color) string {
	if c == gott.ColorText {
		return ""
	}
	return t.Colors[classFor(c)]
}

func classFor(c gott.Color) string {
	switch c {
	case gott.ColorKeyword:
		return "keyword"
	case gott.ColorBuiltin:
		return "builtin"
	case gott.ColorComment:
		return "comment"
	case gott.ColorString:
		return "string"
	case gott.ColorNumber:
		return "number"
	}
	return "text"
}

func ansiIndex(hex string) int {
	c := termenv.ANSI256.Color(hex)
	switch v := c.(type) {
	case termenv.ANSI256Color:
		return int(v)
	case termenv.ANSIColor:
		return int(v)
	}
	return -1
}
