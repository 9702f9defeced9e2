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
	"strings"

	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
)

var lastBufferNumber = -1

// A Buffer represents a file being edited.
type Buffer struct {
	number        int
	Name          string
	rows          []*Row
	fileName      string
	language      string
	encoding      string
	dirty         bool
	Highlighted   bool
	ReadOnly      bool
	syntaxEnabled bool
	engine        string
}

func NewBuffer() *Buffer {
	lastBufferNumber++
	b := &Buffer{}
	b.number = lastBufferNumber
	b.rows = make([]*Row, 0)
	b.encoding = "utf-8"
	b.syntaxEnabled = true
	b.engine = syntax.EngineAuto
	return b
}

func (b *Buffer) GetIndex() int {
	return b.number
}

func (b *Buffer) GetName() string {
	return b.Name
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) GetLanguage() string {
	return b.language
}

func (b *Buffer) GetEncoding() string {
	return b.encoding
}

func (b *Buffer) GetReadOnly() bool {
	return b.ReadOnly
}

func (b *Buffer) IsDirty() bool {
	return b.dirty
}

func (b *Buffer) SetEncoding(name string) {
	b.encoding = name
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
	b.language = syntax.DetectLanguage(name)
	b.Name = name
	b.Highlighted = false
}

// SetSyntaxEnabled turns highlighting on or off for this buffer.
func (b *Buffer) SetSyntaxEnabled(enabled bool) {
	b.syntaxEnabled = enabled
	b.Highlighted = false
}

func (b *Buffer) GetSyntaxEnabled() bool {
	return b.syntaxEnabled
}

// SetEngine selects the highlight engine (auto, native, chroma).
func (b *Buffer) SetEngine(engine string) {
	b.engine = engine
	b.Highlighted = false
}

func (b *Buffer) GetEngine() string {
	return b.engine
}

// InvalidateHighlight forces the next EnsureHighlighted to repaint.
func (b *Buffer) InvalidateHighlight() {
	b.Highlighted = false
}

func (b *Buffer) LoadBytes(bytes []byte) {
	s := string(bytes)
	lines := strings.Split(s, "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	b.dirty = false
	b.Highlighted = false
}

func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(string(row.Text))
	}
	return []byte(s.String())
}

// Touch marks the buffer as edited and invalidates its highlighting.
func (b *Buffer) Touch() {
	b.dirty = true
	b.Highlighted = false
}

// SetClean marks the buffer as saved.
func (b *Buffer) SetClean() {
	b.dirty = false
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRowText(i int) []rune {
	if i < len(b.rows) {
		return b.rows[i].Text
	}
	return nil
}

func (b *Buffer) GetRowColors(i int) []gott.Color {
	if i < len(b.rows) {
		return b.rows[i].Colors
	}
	return nil
}

func (b *Buffer) GetRowIndentDepth(i int) int {
	if i < len(b.rows) {
		return b.rows[i].IndentDepth()
	}
	return 0
}

func (b *Buffer) GetCharacterAtCursor(cursor gott.Point) rune {
	if cursor.Row < len(b.rows) {
		row := b.rows[cursor.Row]
		if cursor.Col < row.Length() && cursor.Col >= 0 {
			return row.Text[cursor.Col]
		}
	}
	return rune(0)
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	b.Touch()
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) DeleteRow(row int) {
	b.Touch()
	if row < len(b.rows) {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

func (b *Buffer) DeleteCharacters(row int, col int, count int, joinLines bool) string {
	b.Touch()
	deletedText := ""
	if b.GetRowCount() == 0 {
		return deletedText
	}
	for i := 0; i < count; i++ {
		if col < b.rows[row].Length() {
			c := b.rows[row].DeleteChar(col)
			deletedText += string(c)
		} else if joinLines && row < b.GetRowCount()-1 {
			// join next row to current row
			nextRow := b.rows[row+1]
			b.rows[row].Join(nextRow)
			b.DeleteRow(row + 1)
			deletedText += "\n"
		}
	}
	return deletedText
}

// EnsureHighlighted runs the highlight engine if an edit invalidated
// the row colors. Rendering and exporting call this first.
func (b *Buffer) EnsureHighlighted() {
	if b.Highlighted {
		return
	}
	var h syntax.Highlighter
	if b.syntaxEnabled {
		h = syntax.ForFile(b.fileName, b.language, b.engine)
	}
	if h != nil {
		lines := make([][]rune, len(b.rows))
		for i, r := range b.rows {
			lines[i] = r.Text
		}
		colors := h.Highlight(lines)
		for i, r := range b.rows {
			if i < len(colors) && len(colors[i]) == len(r.Colors) {
				copy(r.Colors, colors[i])
			}
		}
	} else {
		for _, r := range b.rows {
			for j := range r.Colors {
				r.Colors[j] = gott.ColorText
			}
		}
	}
	b.Highlighted = true
}
