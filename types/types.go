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
package types

// Event types
const (
	EventKey       = 0
	EventResize    = 1
	EventInterrupt = 2
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Insert positions
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

// Paste modes
const (
	PasteAtCursor = 0
	PasteNewLine  = 1
)

// Color classes painted by highlighters. Themes resolve these to
// terminal colors at render time.
type Color uint8

const (
	ColorText Color = iota
	ColorKeyword
	ColorBuiltin
	ColorComment
	ColorString
	ColorNumber
)

// Keys passed to the commander. The screen translates terminal events
// into these so that everything above it can run without a terminal.
type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyBackspace2
	KeyDelete
	KeyF5
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlU
	KeyCtrlV
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyCtrlSpace
)

type Point struct {
	Row int
	Col int
}

// Before reports whether p precedes q in reading order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

type Size struct {
	Rows int
	Cols int
}

// A Span marks a run of characters on a single row.
type Span struct {
	Row    int
	Col    int
	Length int
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Size Size
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer
	GetBufferCount() int
	SelectBuffer(number int) error
	NewBuffer()
	NextBuffer()
	PreviousBuffer()
	ListBuffers() string
	AnyDirty() bool
	SetSyntaxDefaults(enabled bool, engine string)
	OpenFile(path string) (created bool, err error)

	Scroll()
	CenterCursor()
	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveToLine(row int)
	MoveCursorToStartOfLineBelowCursor()
	PageUp()
	PageDown()
	KeepCursorInRow()

	InsertChar(c rune)
	InsertText(text string, position int) (Point, bool)
	InsertRow()
	BackspaceChar() rune
	DeleteRowsAtCursor(multiplier int) string
	DeleteCharactersAtCursor(multiplier int, joinLines bool, finallyDeleteRow bool) string
	DeleteRange(from Point, to Point) string
	IndentRows(first int, last int, width int)
	OutdentRows(first int, last int, width int) []int
	SetText(text string)
	Bytes() []byte

	SetPasteBoard(text string, mode int)
	GetPasteMode() int
	GetPasteText() string
	SetInsertOperation(insert InsertOperation)
	CloseInsert()

	Perform(op Operation, multiplier int)
	PerformUndo()
	PerformRedo()

	GetSelection() (Point, Point, bool)
	SetSelection(from Point, to Point)
	ClearSelection()
	SelectAll()

	Find(text string) bool
	FindNext() bool
	FindPrevious() bool
	GetSearchText() string
	HighlightMatches(text string) int
	ClearMatches()
	GetMatches() []Span
	GetCurrentMatch() (Span, bool)
	ReplaceAll(find string, replace string) int

	ReadFile(path string) error
	WriteFile(path string) error
}

type Buffer interface {
	GetRowCount() int
	GetRowText(i int) []rune
	GetRowColors(i int) []Color
	GetRowIndentDepth(i int) int
	GetFileName() string
	GetName() string
	GetLanguage() string
	GetEncoding() string
	GetReadOnly() bool
	IsDirty() bool
	SetSyntaxEnabled(enabled bool)
	GetSyntaxEnabled() bool
	SetEngine(engine string)
	EnsureHighlighted()
	InvalidateHighlight()
}

type Operation interface {
	Perform(e Editor, multiplier int) Operation // performs the operation and returns its inverse
}

type InsertOperation interface {
	Operation
	AddCharacter(c rune)
	DeleteCharacter()
	Close()
	Length() int
}

type Commander interface {
	GetMessage() string
	GetPrompt() (label string, text string, active bool)
	IsRunning() bool
}
