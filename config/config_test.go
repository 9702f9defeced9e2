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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "notpad", cfg.Theme)
	assert.Equal(t, 4, cfg.IndentWidth)
	assert.Equal(t, GutterIndent, cfg.Gutter)
	assert.True(t, cfg.Syntax)
	assert.Equal(t, "auto", cfg.SyntaxEng.Engine)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 400, cfg.Watch.DebounceMS)
	assert.True(t, cfg.State.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
theme = "dusk"
indent_width = 2
gutter = "lines"
formatter = "black -q -"

[syntax_engine]
engine = "chroma"

[filetypes]
"*.pyx" = "python"
"*.txt" = "text"

[watch]
enabled = false
debounce_ms = 100
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dusk", cfg.Theme)
	assert.Equal(t, 2, cfg.IndentWidth)
	assert.Equal(t, GutterLines, cfg.Gutter)
	assert.Equal(t, "black -q -", cfg.Formatter)
	assert.Equal(t, "chroma", cfg.SyntaxEng.Engine)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 100, cfg.Watch.DebounceMS)
	// unset sections keep their defaults
	assert.True(t, cfg.State.Enabled)

	languages := cfg.Languages()
	assert.Contains(t, languages["python"], "*.pyx")
	assert.Contains(t, languages["text"], "*.txt")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"gutter = \"sideways\"\n",
		"indent_width = 0\n",
		"indent_width = 99\n",
		"[syntax_engine]\nengine = \"regex\"\n",
		"[watch]\ndebounce_ms = -1\n",
	}
	for _, body := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		_, err := Load(path)
		assert.Error(t, err, body)
	}
}
