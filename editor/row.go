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
	gott "github.com/jakelongenecker93/notpad/types"
)

// A row of text in the editor. Tabs are kept in the text so that
// saving an unedited file reproduces it exactly; the screen expands
// them for display.
type Row struct {
	Text   []rune
	Colors []gott.Color
}

func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]rune(text))
	return r
}

func (r *Row) setText(text []rune) {
	r.Text = text
	r.Colors = make([]gott.Color, len(r.Text))
	for j := range r.Colors {
		r.Colors[j] = gott.ColorText
	}
}

func (r *Row) DisplayText() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) InsertChar(col int, c rune) {
	line := make([]rune, 0)
	if col <= len(r.Text) {
		line = append(line, r.Text[0:col]...)
	} else {
		line = append(line, r.Text...)
	}
	line = append(line, c)
	if col < len(r.Text) {
		line = append(line, r.Text[col:]...)
	}
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if len(r.Text) == 0 {
		return 0
	}
	if col > len(r.Text)-1 {
		col = len(r.Text) - 1
	}
	c := r.Text[col]
	r.setText(append(r.Text[0:col], r.Text[col+1:]...))
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < len(r.Text) {
		after := r.Text[col:]
		r.setText(r.Text[0:col])
		return NewRow(string(after))
	}
	return NewRow("")
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.setText(append(r.Text, other.Text...))
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}

// IndentDepth counts leading spaces. Tabs are skipped without being
// counted; anything else ends the count.
func (r *Row) IndentDepth() int {
	depth := 0
	for _, c := range r.Text {
		switch c {
		case ' ':
			depth++
		case '\t':
			continue
		default:
			return depth
		}
	}
	return depth
}

// Indent prefixes the row with width spaces.
func (r *Row) Indent(width int) {
	spaces := make([]rune, width)
	for i := range spaces {
		spaces[i] = ' '
	}
	r.setText(append(spaces, r.Text...))
}

// Outdent removes up to width leading spaces and returns the number removed.
func (r *Row) Outdent(width int) int {
	removed := 0
	for removed < width && removed < len(r.Text) && r.Text[removed] == ' ' {
		removed++
	}
	if removed > 0 {
		r.setText(r.Text[removed:])
	}
	return removed
}
