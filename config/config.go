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

// Package config loads editor settings from ~/.notpad/config.toml.
// A missing file yields the defaults; unknown keys are ignored.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Gutter modes.
const (
	GutterIndent = "indent"
	GutterLines  = "lines"
	GutterOff    = "off"
)

type Config struct {
	Theme       string            `toml:"theme"`
	IndentWidth int               `toml:"indent_width"`
	Gutter      string            `toml:"gutter"`
	Syntax      bool              `toml:"syntax"`
	Formatter   string            `toml:"formatter"`
	SyntaxEng   SyntaxEngine      `toml:"syntax_engine"`
	FileTypes   map[string]string `toml:"filetypes"`
	Watch       Watch             `toml:"watch"`
	State       State             `toml:"state"`
}

type SyntaxEngine struct {
	Engine string `toml:"engine"`
}

type Watch struct {
	Enabled    bool `toml:"enabled"`
	DebounceMS int  `toml:"debounce_ms"`
}

type State struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Theme:       "notpad",
		IndentWidth: 4,
		Gutter:      GutterIndent,
		Syntax:      true,
		SyntaxEng:   SyntaxEngine{Engine: "auto"},
		FileTypes:   map[string]string{},
		Watch:       Watch{Enabled: true, DebounceMS: 400},
		State:       State{Enabled: true},
	}
}

// Dir returns the notpad directory under the user's home, creating it
// if needed. It also hosts the log, state db, history, and themes.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	dir := filepath.Join(home, ".notpad")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads the config at path, or at its default location when path
// is empty. A nonexistent file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return cfg, err
		}
		path = filepath.Join(dir, "config.toml")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Gutter {
	case GutterIndent, GutterLines, GutterOff:
	default:
		return fmt.Errorf("invalid gutter %q", c.Gutter)
	}
	switch c.SyntaxEng.Engine {
	case "auto", "native", "chroma":
	default:
		return fmt.Errorf("invalid syntax engine %q", c.SyntaxEng.Engine)
	}
	if c.IndentWidth < 1 || c.IndentWidth > 16 {
		return fmt.Errorf("indent_width %d out of range", c.IndentWidth)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("negative debounce_ms %d", c.Watch.DebounceMS)
	}
	return nil
}

// Languages regroups the filetypes table (pattern to language) into the
// per-language pattern lists the syntax package consumes.
func (c *Config) Languages() map[string][]string {
	byLanguage := map[string][]string{}
	for pattern, language := range c.FileTypes {
		byLanguage[language] = append(byLanguage[language], pattern)
	}
	return byLanguage
}
