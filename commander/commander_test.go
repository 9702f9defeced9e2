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
package commander

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakelongenecker93/notpad/config"
	"github.com/jakelongenecker93/notpad/editor"
	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
)

func newTestCommander(t *testing.T, text string) (*Commander, *editor.Editor) {
	t.Helper()
	e := editor.NewEditor()
	c := NewCommander(e, config.Default(), syntax.DefaultTheme())
	if text != "" {
		e.GetActiveBuffer().LoadBytes([]byte(text))
	}
	return c, e
}

func press(t *testing.T, c *Commander, key gott.Key) {
	t.Helper()
	require.NoError(t, c.ProcessEvent(&gott.Event{Type: gott.EventKey, Key: key}))
}

func typeText(t *testing.T, c *Commander, text string) {
	t.Helper()
	for _, ch := range text {
		var event gott.Event
		switch ch {
		case ' ':
			event = gott.Event{Type: gott.EventKey, Key: gott.KeySpace}
		case '\n':
			event = gott.Event{Type: gott.EventKey, Key: gott.KeyEnter}
		default:
			event = gott.Event{Type: gott.EventKey, Ch: ch}
		}
		require.NoError(t, c.ProcessEvent(&event))
	}
}

func bufferText(e *editor.Editor) string {
	return string(e.Bytes())
}

// a whole run of typing undoes as one step
func TestTypingUndoesAsOneStep(t *testing.T) {
	c, e := newTestCommander(t, "")
	typeText(t, c, "hello world")
	assert.Equal(t, "hello world", bufferText(e))
	press(t, c, gott.KeyCtrlZ)
	assert.Equal(t, "", bufferText(e))
	press(t, c, gott.KeyCtrlY)
	assert.Equal(t, "hello world", bufferText(e))
}

// movement closes the typing run; each run is its own undo step
func TestMovementSplitsUndoSteps(t *testing.T) {
	c, e := newTestCommander(t, "")
	typeText(t, c, "one")
	press(t, c, gott.KeyArrowLeft)
	typeText(t, c, "x")
	assert.Equal(t, "onxe", bufferText(e))
	press(t, c, gott.KeyCtrlZ)
	assert.Equal(t, "one", bufferText(e))
	press(t, c, gott.KeyCtrlZ)
	assert.Equal(t, "", bufferText(e))
}

func TestBackspaceWithinTypingRun(t *testing.T) {
	c, e := newTestCommander(t, "")
	typeText(t, c, "abc")
	press(t, c, gott.KeyBackspace2)
	typeText(t, c, "d")
	assert.Equal(t, "abd", bufferText(e))
	press(t, c, gott.KeyCtrlZ)
	assert.Equal(t, "", bufferText(e))
}

func TestFindPrompt(t *testing.T) {
	c, e := newTestCommander(t, "alpha\nbeta\ngamma\n")
	press(t, c, gott.KeyCtrlF)
	label, _, active := c.GetPrompt()
	require.True(t, active)
	assert.Equal(t, "Find:", label)
	typeText(t, c, "gamma")
	press(t, c, gott.KeyEnter)
	_, _, active = c.GetPrompt()
	assert.False(t, active)
	assert.Equal(t, gott.Point{Row: 2, Col: 0}, e.GetCursor())
	assert.Equal(t, "", c.GetMessage())
}

func TestFindNotFoundMessage(t *testing.T) {
	c, _ := newTestCommander(t, "alpha\n")
	press(t, c, gott.KeyCtrlF)
	typeText(t, c, "zeta")
	press(t, c, gott.KeyEnter)
	assert.Equal(t, `"zeta" not found.`, c.GetMessage())
}

func TestReplacePrompts(t *testing.T) {
	c, e := newTestCommander(t, "a cat and a cat\n")
	press(t, c, gott.KeyCtrlR)
	typeText(t, c, "cat")
	press(t, c, gott.KeyEnter)
	label, _, active := c.GetPrompt()
	require.True(t, active)
	assert.Equal(t, "Replace 'cat' with:", label)
	typeText(t, c, "dog")
	press(t, c, gott.KeyEnter)
	assert.Equal(t, "a dog and a dog\n", bufferText(e))
	assert.Equal(t, "Replaced 2 occurrences.", c.GetMessage())
	// the whole replacement is one undo step
	press(t, c, gott.KeyCtrlZ)
	assert.Equal(t, "a cat and a cat\n", bufferText(e))
}

func TestReplaceSingularMessage(t *testing.T) {
	c, _ := newTestCommander(t, "one cat\n")
	press(t, c, gott.KeyCtrlR)
	typeText(t, c, "cat")
	press(t, c, gott.KeyEnter)
	typeText(t, c, "dog")
	press(t, c, gott.KeyEnter)
	assert.Equal(t, "Replaced 1 occurrence.", c.GetMessage())
}

func TestHighlightPromptAndEscClears(t *testing.T) {
	c, e := newTestCommander(t, "cat cat cat\n")
	press(t, c, gott.KeyCtrlL)
	typeText(t, c, "cat")
	press(t, c, gott.KeyEnter)
	assert.Len(t, e.GetMatches(), 3)
	press(t, c, gott.KeyEsc)
	assert.Empty(t, e.GetMatches())
}

func TestLineNumberCommand(t *testing.T) {
	c, e := newTestCommander(t, strings.Repeat("line\n", 50))
	press(t, c, gott.KeyCtrlE)
	typeText(t, c, "42")
	press(t, c, gott.KeyEnter)
	assert.Equal(t, 41, e.GetCursor().Row)
}

func TestUnknownCommand(t *testing.T) {
	c, _ := newTestCommander(t, "")
	c.PerformCommand("frobnicate")
	assert.Equal(t, "Unknown command: frobnicate", c.GetMessage())
}

func TestQuitConfirmsWhenDirty(t *testing.T) {
	c, _ := newTestCommander(t, "")
	typeText(t, c, "unsaved")
	press(t, c, gott.KeyCtrlQ)
	label, _, active := c.GetPrompt()
	require.True(t, active)
	assert.Contains(t, label, "Unsaved changes")
	assert.True(t, c.IsRunning())
	// n keeps editing
	typeText(t, c, "n")
	assert.True(t, c.IsRunning())
	press(t, c, gott.KeyCtrlQ)
	typeText(t, c, "y")
	assert.False(t, c.IsRunning())
}

func TestQuitCleanBuffer(t *testing.T) {
	c, _ := newTestCommander(t, "")
	press(t, c, gott.KeyCtrlQ)
	assert.False(t, c.IsRunning())
}

func TestMarkSelectionAndCut(t *testing.T) {
	c, e := newTestCommander(t, "hello world\n")
	press(t, c, gott.KeyCtrlSpace)
	for i := 0; i < 5; i++ {
		press(t, c, gott.KeyArrowRight)
	}
	from, to, ok := e.GetSelection()
	require.True(t, ok)
	assert.Equal(t, gott.Point{Row: 0, Col: 0}, from)
	assert.Equal(t, gott.Point{Row: 0, Col: 5}, to)

	press(t, c, gott.KeyCtrlX)
	assert.Equal(t, " world\n", bufferText(e))
	assert.Equal(t, "hello", e.GetPasteText())

	e.SetCursor(gott.Point{Row: 0, Col: 6})
	press(t, c, gott.KeyCtrlV)
	assert.Equal(t, " worldhello\n", bufferText(e))
}

// typing over a selection deletes it and inserts in one undo step
func TestTypeOverSelection(t *testing.T) {
	c, e := newTestCommander(t, "abcdef\n")
	press(t, c, gott.KeyCtrlSpace)
	for i := 0; i < 3; i++ {
		press(t, c, gott.KeyArrowRight)
	}
	typeText(t, c, "XY")
	assert.Equal(t, "XYdef\n", bufferText(e))
	press(t, c, gott.KeyCtrlZ) // the Y
	press(t, c, gott.KeyCtrlZ) // delete+X together
	assert.Equal(t, "abcdef\n", bufferText(e))
}

func TestTabIndentsSelection(t *testing.T) {
	c, e := newTestCommander(t, "one\ntwo\nthree\n")
	press(t, c, gott.KeyCtrlSpace)
	press(t, c, gott.KeyArrowDown)
	press(t, c, gott.KeyTab)
	assert.Equal(t, "    one\n    two\nthree\n", bufferText(e))
	// the shifted lines stay selected, so Tab shifts them again
	press(t, c, gott.KeyTab)
	assert.Equal(t, "        one\n        two\nthree\n", bufferText(e))
	press(t, c, gott.KeyCtrlU)
	assert.Equal(t, "    one\n    two\nthree\n", bufferText(e))
}

func TestTabWithoutSelectionInsertsSpaces(t *testing.T) {
	c, e := newTestCommander(t, "x\n")
	press(t, c, gott.KeyTab)
	assert.Equal(t, "    x\n", bufferText(e))
	// the cursor follows the indent, so typing continues after it
	assert.Equal(t, gott.Point{Row: 0, Col: 4}, e.GetCursor())
	typeText(t, c, "y")
	assert.Equal(t, "    yx\n", bufferText(e))
}

func TestOutdentAtLineStart(t *testing.T) {
	c, e := newTestCommander(t, "        deep\n")
	press(t, c, gott.KeyCtrlU)
	assert.Equal(t, "    deep\n", bufferText(e))
	press(t, c, gott.KeyCtrlZ)
	assert.Equal(t, "        deep\n", bufferText(e))
}

func TestSelectAllDeleteBackspace(t *testing.T) {
	c, e := newTestCommander(t, "first\nsecond\n")
	press(t, c, gott.KeyCtrlA)
	press(t, c, gott.KeyBackspace2)
	assert.Equal(t, "", bufferText(e))
	press(t, c, gott.KeyCtrlZ)
	assert.Equal(t, "first\nsecond\n", bufferText(e))
}

func TestReadOnlyRefusesEdits(t *testing.T) {
	c, e := newTestCommander(t, "locked\n")
	e.SetReadOnly(true)
	typeText(t, c, "x")
	assert.Equal(t, "locked\n", bufferText(e))
	assert.Equal(t, "Buffer is read-only.", c.GetMessage())
	press(t, c, gott.KeyCtrlK)
	assert.Equal(t, "locked\n", bufferText(e))
}

func TestDeleteRowKey(t *testing.T) {
	c, e := newTestCommander(t, "first\nsecond\n")
	press(t, c, gott.KeyCtrlK)
	assert.Equal(t, "second\n", bufferText(e))
	assert.Equal(t, "first", e.GetPasteText())
}

func TestSaveAndOpen(t *testing.T) {
	c, e := newTestCommander(t, "")
	typeText(t, c, "saved text")

	press(t, c, gott.KeyCtrlS)
	label, _, active := c.GetPrompt()
	require.True(t, active)
	assert.Equal(t, "Save as:", label)
	dir := t.TempDir()
	path := dir + "/out.txt"
	typeText(t, c, path)
	press(t, c, gott.KeyEnter)
	assert.Equal(t, "Saved "+path+".", c.GetMessage())
	assert.False(t, e.GetBuffer().IsDirty())

	// open the saved file into a fresh buffer
	press(t, c, gott.KeyCtrlN)
	press(t, c, gott.KeyCtrlO)
	typeText(t, c, path)
	press(t, c, gott.KeyEnter)
	assert.Equal(t, "saved text", string(e.GetBuffer().GetRowText(0)))
}

func TestSyntaxCommand(t *testing.T) {
	c, _ := newTestCommander(t, "")
	c.PerformCommand("syntax maybe")
	assert.Equal(t, "Usage: syntax on|off|now", c.GetMessage())
}

// syntax = false in the configuration reaches every buffer
func TestSyntaxConfigDisablesHighlighting(t *testing.T) {
	cfg := config.Default()
	cfg.Syntax = false
	e := editor.NewEditor()
	NewCommander(e, cfg, syntax.DefaultTheme())
	assert.False(t, e.GetActiveBuffer().GetSyntaxEnabled())
	e.NewBuffer()
	assert.False(t, e.GetActiveBuffer().GetSyntaxEnabled())
}

// the configured engine reaches buffers opened later too
func TestEngineConfigAppliesToBuffers(t *testing.T) {
	cfg := config.Default()
	cfg.SyntaxEng.Engine = syntax.EngineChroma
	e := editor.NewEditor()
	NewCommander(e, cfg, syntax.DefaultTheme())
	assert.Equal(t, syntax.EngineChroma, e.GetActiveBuffer().GetEngine())
	e.NewBuffer()
	assert.Equal(t, syntax.EngineChroma, e.GetActiveBuffer().GetEngine())
}

func TestGutterCommand(t *testing.T) {
	c, _ := newTestCommander(t, "")
	assert.Equal(t, config.GutterIndent, c.GutterMode())
	c.PerformCommand("gutter lines")
	assert.Equal(t, config.GutterLines, c.GutterMode())
	c.PerformCommand("gutter sideways")
	assert.Equal(t, config.GutterLines, c.GutterMode())
	assert.Equal(t, "Usage: gutter indent|lines|off", c.GetMessage())
}

func TestLispEval(t *testing.T) {
	c, e := newTestCommander(t, "one\ntwo\n")
	assert.Equal(t, "3", c.ParseEval("(line-count)"))
	assert.Equal(t, "2", c.ParseEval(`(find "two")`))
	assert.Equal(t, "1", c.ParseEval(`(replace-all "two" "2")`))
	assert.Equal(t, "one\n2\n", bufferText(e))
	c.ParseEval(`(goto 1)`)
	assert.Equal(t, 0, e.GetCursor().Row)
	c.ParseEval(`(insert "X")`)
	assert.Equal(t, "Xone\n2\n", bufferText(e))
}
