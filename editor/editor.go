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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
)

// The Editor manages the editing of text in its buffers.
type Editor struct {
	Cursor    gott.Point           // cursor position
	Offset    gott.Size            // display offset
	buffers   []*Buffer            // open buffers
	current   int                  // index of the buffer being edited
	size      gott.Size            // size of editing area
	pasteText string               // used to cut/copy and paste
	pasteMode int                  // how to paste the string on the pasteboard
	undo      []gott.Operation     // stack of operations to undo
	redo      []gott.Operation     // stack of operations to redo
	insert    gott.InsertOperation // the insert operation currently collecting typed text

	selectionFrom   gott.Point // start of selection (half-open range)
	selectionTo     gott.Point // end of selection
	selectionActive bool

	searchText      string      // term of the last find
	highlightText   string      // term of the last highlight-all
	matches         []gott.Span // spans marked by highlight-all
	currentMatch    gott.Span   // span of the last find hit
	hasCurrentMatch bool

	syntaxDefault bool   // highlight setting for new buffers
	engineDefault string // engine setting for new buffers
}

func NewEditor() *Editor {
	e := &Editor{
		syntaxDefault: true,
		engineDefault: syntax.EngineAuto,
	}
	e.buffers = []*Buffer{e.newBuffer()}
	return e
}

func (e *Editor) newBuffer() *Buffer {
	b := NewBuffer()
	b.SetSyntaxEnabled(e.syntaxDefault)
	b.SetEngine(e.engineDefault)
	return b
}

// SetSyntaxDefaults applies the configured highlight settings to the
// buffers already open and to every buffer created afterward.
func (e *Editor) SetSyntaxDefaults(enabled bool, engine string) {
	e.syntaxDefault = enabled
	e.engineDefault = engine
	for _, b := range e.buffers {
		b.SetSyntaxEnabled(enabled)
		b.SetEngine(engine)
	}
}

// Buffers

func (e *Editor) GetActiveBuffer() *Buffer {
	return e.buffers[e.current]
}

func (e *Editor) GetBuffer() gott.Buffer {
	return e.GetActiveBuffer()
}

func (e *Editor) GetBufferCount() int {
	return len(e.buffers)
}

func (e *Editor) SelectBuffer(number int) error {
	if number < 0 || number >= len(e.buffers) {
		return fmt.Errorf("no buffer %d", number)
	}
	e.current = number
	e.Cursor = gott.Point{}
	e.Offset = gott.Size{}
	e.resetTransientState()
	return nil
}

func (e *Editor) NextBuffer() {
	e.SelectBuffer((e.current + 1) % len(e.buffers))
}

func (e *Editor) PreviousBuffer() {
	e.SelectBuffer((e.current + len(e.buffers) - 1) % len(e.buffers))
}

// ListBuffers describes the open buffers, one per line.
func (e *Editor) ListBuffers() string {
	var s strings.Builder
	for i, b := range e.buffers {
		name := b.GetFileName()
		if name == "" {
			name = "(unnamed)"
		}
		marker := " "
		if i == e.current {
			marker = "*"
		}
		dirty := ""
		if b.IsDirty() {
			dirty = " [modified]"
		}
		fmt.Fprintf(&s, "%s%d %s%s\n", marker, i, name, dirty)
	}
	return s.String()
}

// NewBuffer appends an empty unnamed buffer and selects it.
func (e *Editor) NewBuffer() {
	e.buffers = append(e.buffers, e.newBuffer())
	e.SelectBuffer(len(e.buffers) - 1)
}

// SetReadOnly marks every open buffer read-only, or editable again.
func (e *Editor) SetReadOnly(readOnly bool) {
	for _, b := range e.buffers {
		b.ReadOnly = readOnly
	}
}

// AnyDirty reports whether any buffer has unsaved changes.
func (e *Editor) AnyDirty() bool {
	for _, b := range e.buffers {
		if b.IsDirty() {
			return true
		}
	}
	return false
}

func (e *Editor) resetTransientState() {
	e.insert = nil
	e.undo = nil
	e.redo = nil
	e.selectionActive = false
	e.matches = nil
	e.hasCurrentMatch = false
}

// OpenFile loads a file into a new buffer, reusing the initial buffer
// when it is still unnamed and untouched. A path that does not exist
// yet opens as an empty named buffer; created reports that case.
func (e *Editor) OpenFile(path string) (created bool, err error) {
	b := e.GetActiveBuffer()
	if b.GetFileName() != "" || b.IsDirty() || b.GetRowCount() > 1 ||
		(b.GetRowCount() == 1 && b.GetRowLength(0) > 0) {
		b = e.newBuffer()
		e.buffers = append(e.buffers, b)
		e.current = len(e.buffers) - 1
	}
	e.Cursor = gott.Point{}
	e.Offset = gott.Size{}
	e.resetTransientState()
	if _, statErr := os.Stat(path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			b.LoadBytes(nil)
			b.SetFileName(path)
			return true, nil
		}
		return false, fmt.Errorf("opening %s: %w", path, statErr)
	}
	return false, e.ReadFile(path)
}

// ReadFile replaces the active buffer's contents with the file at path.
func (e *Editor) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	text, encoding := DecodeBytes(data)
	b := e.GetActiveBuffer()
	b.LoadBytes([]byte(text))
	b.SetEncoding(encoding)
	b.SetFileName(path)
	e.resetTransientState()
	e.KeepCursorInRow()
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.GetActiveBuffer().Bytes()
}

// WriteFile saves the active buffer to path, which becomes its file name.
func (e *Editor) WriteFile(path string) error {
	b := e.GetActiveBuffer()
	if err := AtomicWriteFile(path, b.Bytes(), fileMode(path)); err != nil {
		return err
	}
	if path != b.GetFileName() {
		b.SetFileName(path)
	}
	b.SetClean()
	return nil
}

// Operations

func (e *Editor) Perform(op gott.Operation, multiplier int) {
	inverse := op.Perform(e, multiplier)
	if inverse != nil {
		e.undo = append(e.undo, inverse)
	}
	e.redo = nil
	e.refreshMatches()
}

func (e *Editor) PerformUndo() {
	e.CloseInsert()
	if len(e.undo) == 0 {
		return
	}
	last := len(e.undo) - 1
	op := e.undo[last]
	e.undo = e.undo[0:last]
	if inverse := op.Perform(e, 0); inverse != nil {
		e.redo = append(e.redo, inverse)
	}
	e.refreshMatches()
}

func (e *Editor) PerformRedo() {
	if len(e.redo) == 0 {
		return
	}
	last := len(e.redo) - 1
	op := e.redo[last]
	e.redo = e.redo[0:last]
	if inverse := op.Perform(e, 0); inverse != nil {
		e.undo = append(e.undo, inverse)
	}
	e.refreshMatches()
}

// Scrolling

func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if e.Cursor.Col < e.Offset.Cols {
		e.Offset.Cols = e.Cursor.Col
	}
	if e.Cursor.Col-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = e.Cursor.Col - e.size.Cols + 1
	}
}

// CenterCursor scrolls so the cursor row sits mid-screen.
func (e *Editor) CenterCursor() {
	offset := e.Cursor.Row - e.size.Rows/2
	if offset < 0 {
		offset = 0
	}
	e.Offset.Rows = offset
}

// Movement

func (e *Editor) MoveCursor(direction int) {
	b := e.GetActiveBuffer()
	switch direction {
	case gott.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = b.GetRowLength(e.Cursor.Row)
		}
	case gott.MoveRight:
		if e.Cursor.Col < b.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		} else if e.Cursor.Row < b.GetRowCount()-1 {
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	case gott.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case gott.MoveDown:
		if e.Cursor.Row < b.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	// don't go past the end of the current line
	if e.Cursor.Col > b.GetRowLength(e.Cursor.Row) {
		e.Cursor.Col = b.GetRowLength(e.Cursor.Row)
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.GetActiveBuffer().GetRowLength(e.Cursor.Row)
}

// MoveToLine moves to a zero-based row and centers it on screen.
func (e *Editor) MoveToLine(row int) {
	b := e.GetActiveBuffer()
	if row > b.GetRowCount()-1 {
		row = b.GetRowCount() - 1
	}
	if row < 0 {
		row = 0
	}
	e.Cursor = gott.Point{Row: row, Col: 0}
	e.CenterCursor()
}

func (e *Editor) MoveCursorToStartOfLineBelowCursor() {
	e.Cursor.Col = 0
	e.Cursor.Row++
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	// move up by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(gott.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	// move down by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(gott.MoveDown)
	}
}

func (e *Editor) KeepCursorInRow() {
	b := e.GetActiveBuffer()
	if b.GetRowCount() == 0 {
		e.Cursor = gott.Point{}
		return
	}
	if e.Cursor.Row >= b.GetRowCount() {
		e.Cursor.Row = b.GetRowCount() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	if e.Cursor.Col > b.GetRowLength(e.Cursor.Row) {
		e.Cursor.Col = b.GetRowLength(e.Cursor.Row)
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

// Text changes. These primitives are called by operations and, while
// an insert operation is collecting text, directly by the commander.

func (e *Editor) InsertChar(c rune) {
	if e.insert != nil {
		e.insert.AddCharacter(c)
	}
	b := e.GetActiveBuffer()
	if c == '\n' {
		e.InsertRow()
		e.Cursor.Row++
		e.Cursor.Col = 0
		e.refreshMatches()
		return
	}
	for e.Cursor.Row >= b.GetRowCount() {
		e.AppendBlankRow()
	}
	b.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
	e.refreshMatches()
}

func (e *Editor) InsertRow() {
	b := e.GetActiveBuffer()
	b.Touch()
	if e.Cursor.Row >= b.GetRowCount() {
		e.AppendBlankRow()
	} else {
		newRow := b.rows[e.Cursor.Row].Split(e.Cursor.Col)
		i := e.Cursor.Row + 1
		// add a dummy row at the end of the Rows slice
		e.AppendBlankRow()
		// move rows to make room for the one we are adding
		copy(b.rows[i+1:], b.rows[i:])
		// add the new row
		b.rows[i] = newRow
	}
}

// BackspaceChar deletes the character before the cursor, joining the
// row with the one above at a line start. When an insert operation is
// open it only retreats over text typed in that operation.
func (e *Editor) BackspaceChar() rune {
	b := e.GetActiveBuffer()
	if b.GetRowCount() == 0 {
		return rune(0)
	}
	if e.insert != nil {
		if e.insert.Length() == 0 {
			return rune(0)
		}
		e.insert.DeleteCharacter()
	}
	defer e.refreshMatches()
	if e.Cursor.Col > 0 {
		c := b.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col - 1)
		b.Touch()
		e.Cursor.Col--
		return c
	} else if e.Cursor.Row > 0 {
		// join the current row with the previous one
		b.Touch()
		oldRowText := b.rows[e.Cursor.Row].Text
		newCol := len(b.rows[e.Cursor.Row-1].Text)
		b.rows[e.Cursor.Row-1].setText(append(b.rows[e.Cursor.Row-1].Text, oldRowText...))
		b.rows = append(b.rows[0:e.Cursor.Row], b.rows[e.Cursor.Row+1:]...)
		e.Cursor.Row--
		e.Cursor.Col = newCol
		return rune('\n')
	}
	return rune(0)
}

func (e *Editor) AppendBlankRow() {
	b := e.GetActiveBuffer()
	b.rows = append(b.rows, NewRow(""))
}

func (e *Editor) InsertLineAboveCursor() {
	b := e.GetActiveBuffer()
	b.Touch()
	e.AppendBlankRow()
	copy(b.rows[e.Cursor.Row+1:], b.rows[e.Cursor.Row:])
	b.rows[e.Cursor.Row] = NewRow("")
	e.Cursor.Col = 0
}

func (e *Editor) InsertLineBelowCursor() {
	b := e.GetActiveBuffer()
	b.Touch()
	e.AppendBlankRow()
	copy(b.rows[e.Cursor.Row+2:], b.rows[e.Cursor.Row+1:])
	b.rows[e.Cursor.Row+1] = NewRow("")
	e.Cursor.Row++
	e.Cursor.Col = 0
}

func (e *Editor) DeleteRowsAtCursor(multiplier int) string {
	b := e.GetActiveBuffer()
	b.Touch()
	deletedText := ""
	for i := 0; i < multiplier; i++ {
		row := e.Cursor.Row
		if row < b.GetRowCount() {
			if i > 0 {
				deletedText += "\n"
			}
			deletedText += string(b.rows[row].Text)
			b.rows = append(b.rows[0:row], b.rows[row+1:]...)
		} else {
			break
		}
	}
	e.Cursor.Row = clipToRange(e.Cursor.Row, 0, b.GetRowCount()-1)
	e.Cursor.Col = 0
	e.refreshMatches()
	return deletedText
}

func (e *Editor) DeleteCharactersAtCursor(multiplier int, joinLines bool, finallyDeleteRow bool) string {
	b := e.GetActiveBuffer()
	deletedText := b.DeleteCharacters(e.Cursor.Row, e.Cursor.Col, multiplier, joinLines)
	if e.Cursor.Col > b.rows[e.Cursor.Row].Length() {
		e.Cursor.Col = b.rows[e.Cursor.Row].Length()
	}
	if finallyDeleteRow && b.GetRowCount() > 0 {
		b.DeleteRow(e.Cursor.Row)
		e.KeepCursorInRow()
	}
	e.refreshMatches()
	return deletedText
}

// DeleteRange deletes the half-open range [from, to) and returns the
// deleted text. The cursor lands at from.
func (e *Editor) DeleteRange(from gott.Point, to gott.Point) string {
	if to.Before(from) {
		from, to = to, from
	}
	b := e.GetActiveBuffer()
	e.clampPoint(&from)
	e.clampPoint(&to)
	count := 0
	if from.Row == to.Row {
		count = to.Col - from.Col
	} else {
		count = b.GetRowLength(from.Row) - from.Col + 1
		for r := from.Row + 1; r < to.Row; r++ {
			count += b.GetRowLength(r) + 1
		}
		count += to.Col
	}
	e.Cursor = from
	if count <= 0 {
		return ""
	}
	deleted := b.DeleteCharacters(from.Row, from.Col, count, true)
	e.refreshMatches()
	return deleted
}

func (e *Editor) clampPoint(p *gott.Point) {
	b := e.GetActiveBuffer()
	if p.Row > b.GetRowCount()-1 {
		p.Row = b.GetRowCount() - 1
	}
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Col > b.GetRowLength(p.Row) {
		p.Col = b.GetRowLength(p.Row)
	}
	if p.Col < 0 {
		p.Col = 0
	}
}

// SetText replaces the whole buffer, clamping the cursor.
func (e *Editor) SetText(text string) {
	b := e.GetActiveBuffer()
	b.LoadBytes([]byte(text))
	b.Touch()
	e.KeepCursorInRow()
	e.refreshMatches()
}

func (e *Editor) InsertText(text string, position int) (gott.Point, bool) {
	b := e.GetActiveBuffer()
	if b.GetRowCount() == 0 {
		e.AppendBlankRow()
	}
	switch position {
	case gott.InsertAtCursor:
		break
	case gott.InsertAfterCursor:
		e.Cursor.Col++
		e.Cursor.Col = clipToRange(e.Cursor.Col, 0, b.rows[e.Cursor.Row].Length())
	case gott.InsertAtStartOfLine:
		e.Cursor.Col = 0
	case gott.InsertAfterEndOfLine:
		e.Cursor.Col = b.rows[e.Cursor.Row].Length()
	case gott.InsertAtNewLineBelowCursor:
		e.InsertLineBelowCursor()
	case gott.InsertAtNewLineAboveCursor:
		e.InsertLineAboveCursor()
	}
	if text != "" {
		r := e.Cursor.Row
		c := e.Cursor.Col
		for _, ch := range text {
			e.InsertChar(ch)
		}
		e.Cursor.Row = r
		e.Cursor.Col = c
		return e.Cursor, false
	}
	return e.Cursor, true
}

// Cursor and size

func (e *Editor) GetCursor() gott.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor gott.Point) {
	e.Cursor = cursor
}

func (e *Editor) SetSize(s gott.Size) {
	e.size = s
}

func (e *Editor) GetOffset() gott.Size {
	return e.Offset
}

// Pasteboard

func (e *Editor) SetPasteBoard(text string, mode int) {
	e.pasteText = text
	e.pasteMode = mode
}

func (e *Editor) GetPasteMode() int {
	return e.pasteMode
}

func (e *Editor) GetPasteText() string {
	return e.pasteText
}

// Insert operations

func (e *Editor) SetInsertOperation(insert gott.InsertOperation) {
	e.insert = insert
}

func (e *Editor) CloseInsert() {
	if e.insert != nil {
		e.insert.Close()
		e.insert = nil
	}
}

// Selection

func (e *Editor) GetSelection() (gott.Point, gott.Point, bool) {
	return e.selectionFrom, e.selectionTo, e.selectionActive
}

func (e *Editor) SetSelection(from gott.Point, to gott.Point) {
	if to.Before(from) {
		from, to = to, from
	}
	e.selectionFrom = from
	e.selectionTo = to
	e.selectionActive = true
}

func (e *Editor) ClearSelection() {
	e.selectionActive = false
}

func (e *Editor) SelectAll() {
	b := e.GetActiveBuffer()
	if b.GetRowCount() == 0 {
		return
	}
	last := b.GetRowCount() - 1
	e.SetSelection(gott.Point{}, gott.Point{Row: last, Col: b.GetRowLength(last)})
	e.Cursor = gott.Point{Row: last, Col: b.GetRowLength(last)}
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
