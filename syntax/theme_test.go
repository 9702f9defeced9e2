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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/jakelongenecker93/notpad/types"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, "notpad", theme.Name)
	for _, class := range []string{"keyword", "builtin", "comment", "string", "number", "match", "found"} {
		assert.GreaterOrEqual(t, theme.Index(class), 0, class)
	}
	// plain text takes the terminal default
	assert.Equal(t, -1, theme.Index("text"))
	assert.Equal(t, -1, theme.Index("nosuchclass"))
	assert.Equal(t, "", theme.HexFor(gott.ColorText))
	assert.Equal(t, "#0000cc", theme.HexFor(gott.ColorKeyword))
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dusk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"colors:\n  keyword: \"#ff0000\"\n  comment: \"#888888\"\n"), 0644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	// an unnamed theme takes its file name
	assert.Equal(t, "dusk", theme.Name)
	assert.Equal(t, "#ff0000", theme.HexFor(gott.ColorKeyword))
	// classes the theme leaves unset stay unpainted
	assert.Equal(t, -1, theme.ForColor(gott.ColorString))
}

func TestFindThemeMissing(t *testing.T) {
	_, err := FindTheme(t.TempDir(), "nosuchtheme")
	assert.Error(t, err)
}

func TestListThemes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("name: b\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yml"), []byte("name: a\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), nil, 0644))
	assert.Equal(t, []string{"a", "b"}, ListThemes(dir))
}
