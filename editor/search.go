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
	"unicode/utf8"

	"github.com/jakelongenecker93/notpad/operations"
	gott "github.com/jakelongenecker93/notpad/types"
)

// Find searches forward from the cursor for text, wrapping at the end
// of the buffer. The term is remembered for FindNext and FindPrevious.
func (e *Editor) Find(text string) bool {
	e.searchText = text
	e.hasCurrentMatch = false
	if text == "" {
		return false
	}
	span, ok := e.findFrom(e.Cursor, text)
	if ok {
		e.setCurrentMatch(span)
	}
	return ok
}

func (e *Editor) FindNext() bool {
	if e.searchText == "" {
		return false
	}
	// start one past the cursor so the current match is not found again
	start := e.Cursor
	start.Col++
	span, ok := e.findFrom(start, e.searchText)
	if ok {
		e.setCurrentMatch(span)
	}
	return ok
}

// FindPrevious searches backward from the cursor, wrapping at the top.
func (e *Editor) FindPrevious() bool {
	if e.searchText == "" {
		return false
	}
	b := e.GetActiveBuffer()
	rows := b.GetRowCount()
	term := []rune(e.searchText)
	if rows == 0 {
		return false
	}
	row := e.Cursor.Row
	// only matches starting strictly before the cursor count
	before := e.Cursor.Col
	for i := 0; i <= rows; i++ {
		line := b.GetRowText(row)
		if i > 0 {
			before = len(line) + 1
		}
		if idx := lastIndexBefore(line, term, before); idx >= 0 {
			e.setCurrentMatch(gott.Span{Row: row, Col: idx, Length: len(term)})
			return true
		}
		row--
		if row < 0 {
			row = rows - 1
		}
	}
	return false
}

func (e *Editor) GetSearchText() string {
	return e.searchText
}

func (e *Editor) findFrom(start gott.Point, text string) (gott.Span, bool) {
	b := e.GetActiveBuffer()
	rows := b.GetRowCount()
	term := []rune(text)
	if rows == 0 || len(term) == 0 {
		return gott.Span{}, false
	}
	row := start.Row
	col := start.Col
	if row >= rows {
		row, col = 0, 0
	}
	for i := 0; i <= rows; i++ {
		if idx := indexFrom(b.GetRowText(row), term, col); idx >= 0 {
			return gott.Span{Row: row, Col: idx, Length: len(term)}, true
		}
		row++
		col = 0
		if row >= rows {
			row = 0
		}
	}
	return gott.Span{}, false
}

// setCurrentMatch records the hit and puts the cursor on its first
// character.
func (e *Editor) setCurrentMatch(span gott.Span) {
	e.currentMatch = span
	e.hasCurrentMatch = true
	e.Cursor = gott.Point{Row: span.Row, Col: span.Col}
	e.CenterCursor()
}

// HighlightMatches marks every occurrence of text and returns the count.
// Any current find match is dropped in favor of the new marks.
func (e *Editor) HighlightMatches(text string) int {
	e.matches = nil
	e.highlightText = text
	e.hasCurrentMatch = false
	if text == "" {
		return 0
	}
	b := e.GetActiveBuffer()
	term := []rune(text)
	for row := 0; row < b.GetRowCount(); row++ {
		line := b.GetRowText(row)
		col := 0
		for {
			idx := indexFrom(line, term, col)
			if idx < 0 {
				break
			}
			e.matches = append(e.matches, gott.Span{Row: row, Col: idx, Length: len(term)})
			col = idx + len(term)
		}
	}
	return len(e.matches)
}

func (e *Editor) ClearMatches() {
	e.matches = nil
	e.highlightText = ""
	e.hasCurrentMatch = false
}

func (e *Editor) GetMatches() []gott.Span {
	return e.matches
}

func (e *Editor) GetCurrentMatch() (gott.Span, bool) {
	return e.currentMatch, e.hasCurrentMatch
}

// ReplaceAll replaces every occurrence of find as a single undoable
// step and returns the number of replacements.
func (e *Editor) ReplaceAll(find string, replace string) int {
	if find == "" {
		return 0
	}
	if strings.Count(string(e.Bytes()), find) == 0 {
		e.searchText = find
		return 0
	}
	op := &operations.ReplaceAll{Find: find, Replace: replace}
	e.Perform(op, 1)
	e.searchText = find
	e.ClearMatches()
	return op.Count
}

// refreshMatches drops marked spans that an edit invalidated. A span
// survives only while the text under it still equals its term; edits
// never add new spans.
func (e *Editor) refreshMatches() {
	if len(e.matches) == 0 && !e.hasCurrentMatch {
		return
	}
	b := e.GetActiveBuffer()
	if len(e.matches) > 0 {
		keep := e.matches[:0]
		for _, s := range e.matches {
			if spanMatches(b, s, e.highlightText) {
				keep = append(keep, s)
			}
		}
		e.matches = keep
	}
	if e.hasCurrentMatch && !spanMatches(b, e.currentMatch, e.searchText) {
		e.hasCurrentMatch = false
	}
}

func spanMatches(b *Buffer, s gott.Span, term string) bool {
	if term == "" || utf8.RuneCountInString(term) != s.Length {
		return false
	}
	if s.Row < 0 || s.Row >= b.GetRowCount() {
		return false
	}
	line := b.GetRowText(s.Row)
	if s.Col < 0 || s.Col+s.Length > len(line) {
		return false
	}
	return string(line[s.Col:s.Col+s.Length]) == term
}

// indexFrom returns the rune index of the first occurrence of term in
// line at or after from, or -1.
func indexFrom(line []rune, term []rune, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(line) {
		return -1
	}
	s := string(line[from:])
	idx := strings.Index(s, string(term))
	if idx < 0 {
		return -1
	}
	return from + utf8.RuneCountInString(s[:idx])
}

// lastIndexBefore returns the rune index of the last occurrence of
// term in line starting before the rune index before, or -1.
func lastIndexBefore(line []rune, term []rune, before int) int {
	s := string(line)
	t := string(term)
	best := -1
	from := 0
	for {
		idx := strings.Index(s[from:], t)
		if idx < 0 {
			break
		}
		byteStart := from + idx
		runeStart := utf8.RuneCountInString(s[:byteStart])
		if runeStart >= before {
			break
		}
		best = runeStart
		from = byteStart + 1
	}
	return best
}
