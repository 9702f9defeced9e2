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
package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakelongenecker93/notpad/operations"
	gott "github.com/jakelongenecker93/notpad/types"
)

const source = "testdata/sample.py"

func setup(t *testing.T) *Editor {
	t.Helper()
	e := NewEditor()
	require.NoError(t, e.ReadFile(source))
	return e
}

// final saves the buffer and checks it against the fixture, so a test
// that undoes its edits proves the undo was exact.
func final(t *testing.T, e *Editor) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "final.py")
	require.NoError(t, e.WriteFile(out))
	saved, err := os.ReadFile(out)
	require.NoError(t, err)
	original, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, original, saved)
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	e := setup(t)
	final(t, e)
}

func TestLoadBytesRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte("one\ntwo\nthree\n"),
		[]byte("one\r\ntwo\r\n"),
		[]byte("no trailing newline"),
		[]byte("\n\n\n"),
		[]byte(""),
	}
	for _, data := range cases {
		b := NewBuffer()
		b.LoadBytes(data)
		assert.Equal(t, data, b.Bytes())
	}
}

func TestLatin1Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin.txt")
	require.NoError(t, os.WriteFile(path, []byte("caf\xe9\n"), 0644))

	e := NewEditor()
	require.NoError(t, e.ReadFile(path))
	b := e.GetActiveBuffer()
	assert.Equal(t, "latin-1", b.GetEncoding())
	assert.Equal(t, "café", string(b.GetRowText(0)))

	// saving always encodes UTF-8
	require.NoError(t, e.WriteFile(path))
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("café\n"), saved)
}

func TestOpenMissingFile(t *testing.T) {
	e := NewEditor()
	path := filepath.Join(t.TempDir(), "new.py")
	created, err := e.OpenFile(path)
	require.NoError(t, err)
	assert.True(t, created)
	b := e.GetActiveBuffer()
	assert.Equal(t, path, b.GetFileName())
	assert.Equal(t, "python", b.GetLanguage())
	assert.False(t, b.IsDirty())
}

func TestInsertUndo(t *testing.T) {
	e := setup(t)
	e.Cursor = gott.Point{Row: 1, Col: 0}
	e.Perform(&operations.Insert{Position: gott.InsertAtCursor, Text: "import os\n"}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, "import os", string(b.GetRowText(1)))
	assert.Equal(t, "import sys", string(b.GetRowText(2)))
	assert.True(t, b.IsDirty())
	e.PerformUndo()
	assert.Equal(t, "import sys", string(b.GetRowText(1)))
	final(t, e)
}

func TestBackspaceJoinsRows(t *testing.T) {
	e := setup(t)
	e.Cursor = gott.Point{Row: 1, Col: 0}
	e.Perform(&operations.Backspace{}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, "# A tiny example used by the editor tests.import sys",
		string(b.GetRowText(0)))
	e.PerformUndo()
	final(t, e)
}

func TestDeleteRow(t *testing.T) {
	e := setup(t)
	e.Cursor = gott.Point{Row: 1, Col: 3}
	e.Perform(&operations.DeleteRow{}, 1)
	assert.Equal(t, 20, e.GetActiveBuffer().GetRowCount())
	assert.Equal(t, "import sys", e.GetPasteText())
	assert.Equal(t, gott.PasteNewLine, e.GetPasteMode())
	e.PerformUndo()
	final(t, e)
}

func TestDeleteRangeUndo(t *testing.T) {
	e := setup(t)
	e.Perform(&operations.DeleteRange{
		From: gott.Point{Row: 4, Col: 0},
		To:   gott.Point{Row: 5, Col: 0},
	}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, `    """Say hello."""`, string(b.GetRowText(4)))
	assert.Equal(t, gott.Point{Row: 4, Col: 0}, e.GetCursor())
	e.PerformUndo()
	final(t, e)
}

func TestCutLoadsPasteboard(t *testing.T) {
	e := setup(t)
	e.Perform(&operations.DeleteRange{
		From:         gott.Point{Row: 1, Col: 7},
		To:           gott.Point{Row: 1, Col: 10},
		ToPasteboard: true,
	}, 1)
	assert.Equal(t, "sys", e.GetPasteText())
	e.PerformUndo()
	final(t, e)
}

func TestPasteUndo(t *testing.T) {
	e := setup(t)
	e.SetPasteBoard("pasted", gott.PasteAtCursor)
	e.Cursor = gott.Point{Row: 1, Col: 0}
	e.Perform(&operations.Paste{}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, "pastedimport sys", string(b.GetRowText(1)))
	e.PerformUndo()
	final(t, e)
}

func TestPasteWholeLines(t *testing.T) {
	e := setup(t)
	e.SetPasteBoard("import os", gott.PasteNewLine)
	e.Cursor = gott.Point{Row: 1, Col: 4}
	e.Perform(&operations.Paste{}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, "import sys", string(b.GetRowText(1)))
	assert.Equal(t, "import os", string(b.GetRowText(2)))
	e.PerformUndo()
	final(t, e)
}

func TestRedo(t *testing.T) {
	e := setup(t)
	e.Cursor = gott.Point{Row: 1, Col: 0}
	e.Perform(&operations.Insert{Position: gott.InsertAtCursor, Text: "x"}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, "ximport sys", string(b.GetRowText(1)))
	e.PerformUndo()
	assert.Equal(t, "import sys", string(b.GetRowText(1)))
	e.PerformRedo()
	assert.Equal(t, "ximport sys", string(b.GetRowText(1)))
	e.PerformUndo()
	final(t, e)
}

func TestIndentLinesUndo(t *testing.T) {
	e := setup(t)
	e.Cursor = gott.Point{Row: 11, Col: 4}
	e.Perform(&operations.IndentLines{First: 11, Last: 12, Width: 4}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, "        count = 0", string(b.GetRowText(11)))
	assert.Equal(t, "        for arg in sys.argv[1:]:", string(b.GetRowText(12)))
	assert.Equal(t, gott.Point{Row: 11, Col: 8}, e.GetCursor())
	e.PerformUndo()
	final(t, e)
}

// rows with unequal leading spaces lose unequal amounts; the inverse
// restores the exact counts
func TestOutdentLinesUndo(t *testing.T) {
	e := setup(t)
	e.Perform(&operations.OutdentLines{First: 10, Last: 13, Width: 4}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, "def main():", string(b.GetRowText(10)))
	assert.Equal(t, "count = 0", string(b.GetRowText(11)))
	assert.Equal(t, "    greet(arg)", string(b.GetRowText(13)))
	e.PerformUndo()
	final(t, e)
}

func TestOutdentWithoutLeadingSpaces(t *testing.T) {
	e := setup(t)
	e.Cursor = gott.Point{Row: 1, Col: 0}
	e.Perform(&operations.OutdentLines{First: 1, Last: 1, Width: 4}, 1)
	b := e.GetActiveBuffer()
	assert.Equal(t, "import sys", string(b.GetRowText(1)))
	// nothing changed, so nothing was pushed to undo
	e.PerformUndo()
	final(t, e)
}

func TestIndentDepth(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("def f():\n    pass\n        pass\n\t  x\n"))
	assert.Equal(t, 0, b.GetRowIndentDepth(0))
	assert.Equal(t, 4, b.GetRowIndentDepth(1))
	assert.Equal(t, 8, b.GetRowIndentDepth(2))
	// tabs are skipped without being counted
	assert.Equal(t, 2, b.GetRowIndentDepth(3))
}

func TestReplaceAllSingleUndo(t *testing.T) {
	e := setup(t)
	n := e.ReplaceAll("count", "total")
	assert.Equal(t, 3, n)
	b := e.GetActiveBuffer()
	assert.Equal(t, "    total = 0", string(b.GetRowText(11)))
	// the whole replacement is one undo step
	e.PerformUndo()
	final(t, e)
}

func TestReplaceAllNoMatches(t *testing.T) {
	e := setup(t)
	assert.Equal(t, 0, e.ReplaceAll("nowhere", "x"))
	assert.Equal(t, "nowhere", e.GetSearchText())
	final(t, e)
}

func TestFindWrapsAround(t *testing.T) {
	e := setup(t)
	e.Cursor = gott.Point{Row: 15, Col: 0}
	require.True(t, e.Find("import"))
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, e.GetCursor())
}

func TestFindNextAndPrevious(t *testing.T) {
	e := setup(t)
	require.True(t, e.Find("sys"))
	assert.Equal(t, gott.Point{Row: 1, Col: 7}, e.GetCursor())
	require.True(t, e.FindNext())
	assert.Equal(t, gott.Point{Row: 12, Col: 15}, e.GetCursor())
	// wraps back to the first occurrence
	require.True(t, e.FindNext())
	assert.Equal(t, gott.Point{Row: 1, Col: 7}, e.GetCursor())
	// backward from the first occurrence wraps to the last
	require.True(t, e.FindPrevious())
	assert.Equal(t, gott.Point{Row: 12, Col: 15}, e.GetCursor())
}

func TestFindNotFound(t *testing.T) {
	e := setup(t)
	assert.False(t, e.Find("nowhere"))
	_, ok := e.GetCurrentMatch()
	assert.False(t, ok)
}

func TestHighlightMatches(t *testing.T) {
	e := setup(t)
	assert.Equal(t, 3, e.HighlightMatches("count"))
	assert.Len(t, e.GetMatches(), 3)
	assert.Equal(t, gott.Span{Row: 11, Col: 4, Length: 5}, e.GetMatches()[0])

	e.ClearMatches()
	assert.Empty(t, e.GetMatches())
}

// editing under a marked span drops it; edits never add new spans
func TestStaleMatchRefresh(t *testing.T) {
	e := setup(t)
	require.Equal(t, 3, e.HighlightMatches("count"))
	e.Cursor = gott.Point{Row: 11, Col: 9}
	e.Perform(&operations.Backspace{}, 1)
	assert.Len(t, e.GetMatches(), 2)
	// an edit elsewhere leaves the surviving spans alone
	e.Cursor = gott.Point{Row: 0, Col: 0}
	e.Perform(&operations.Insert{Position: gott.InsertAtCursor, Text: "#"}, 1)
	assert.Len(t, e.GetMatches(), 2)
}

func TestSelectAll(t *testing.T) {
	e := setup(t)
	e.SelectAll()
	from, to, ok := e.GetSelection()
	require.True(t, ok)
	assert.Equal(t, gott.Point{}, from)
	assert.Equal(t, 20, to.Row)
}

func TestBufferSwitching(t *testing.T) {
	e := setup(t)
	e.NewBuffer()
	assert.Equal(t, 2, e.GetBufferCount())
	assert.Equal(t, "", e.GetBuffer().GetFileName())
	e.PreviousBuffer()
	assert.Equal(t, source, e.GetBuffer().GetFileName())
	e.NextBuffer()
	assert.Equal(t, "", e.GetBuffer().GetFileName())
	assert.Error(t, e.SelectBuffer(7))
}

func TestMoveCursorClampsColumn(t *testing.T) {
	e := setup(t)
	e.Cursor = gott.Point{Row: 0, Col: 40}
	e.MoveCursor(gott.MoveDown)
	// row 1 is shorter, so the column clamps to its end
	assert.Equal(t, gott.Point{Row: 1, Col: 10}, e.GetCursor())
}

func TestMoveToLineClamps(t *testing.T) {
	e := setup(t)
	e.MoveToLine(1000)
	assert.Equal(t, 20, e.GetCursor().Row)
	e.MoveToLine(-5)
	assert.Equal(t, 0, e.GetCursor().Row)
}
