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
package screen

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/jakelongenecker93/notpad/config"
	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
)

const (
	gutterWidth = 4
	tabWidth    = 8
)

// A Controller supplies what the screen renders beyond the editor's
// text: messages, prompts, the theme, and the gutter mode.
type Controller interface {
	gott.Commander
	Theme() *syntax.Theme
	GutterMode() string
}

// The Screen draws the state of an Editor. It is the only code that
// talks to termbox.
type Screen struct {
	size gott.Size // screen size
}

func NewScreen() *Screen {
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

// Interrupt wakes a blocked GetNextEvent. Safe from any goroutine;
// the watcher uses it to push file-change reports into the main loop.
func (s *Screen) Interrupt() {
	termbox.Interrupt()
}

func (s *Screen) Render(e gott.Editor, c Controller) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	var screenSize gott.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	gutter := gutterWidth
	if c.GutterMode() == config.GutterOff {
		gutter = 0
	}
	editSize := gott.Size{
		Rows: screenSize.Rows - 2,
		Cols: screenSize.Cols - gutter,
	}
	e.SetSize(editSize)
	e.Scroll()

	s.renderBuffer(e, c, gutter, editSize)
	s.renderInfoBar(e, c)
	s.renderMessageBar(e, c)
	s.placeCursor(e, c, gutter)
	termbox.Flush()
}

func (s *Screen) renderBuffer(e gott.Editor, c Controller, gutter int, editSize gott.Size) {
	b := e.GetBuffer()
	b.EnsureHighlighted()
	theme := c.Theme()
	offset := e.GetOffset()

	selFrom, selTo, hasSelection := e.GetSelection()
	matches := e.GetMatches()
	current, hasCurrent := e.GetCurrentMatch()
	matchBg := attrFor(theme.Index("match"), termbox.ColorYellow)
	foundBg := attrFor(theme.Index("found"), termbox.ColorCyan)

	for i := 0; i < editSize.Rows; i++ {
		row := i + offset.Rows
		if row >= b.GetRowCount() {
			break
		}
		s.renderGutter(b, c.GutterMode(), row, i)
		line := b.GetRowText(row)
		colors := b.GetRowColors(row)
		x := gutter
		for col := offset.Cols; col < len(line); col++ {
			ch := line[col]
			w := cellWidth(ch, x-gutter)
			if x+w > gutter+editSize.Cols {
				break
			}
			fg := attrFor(theme.ForColor(colorAt(colors, col)), termbox.ColorDefault)
			bg := termbox.ColorDefault
			here := gott.Point{Row: row, Col: col}
			switch {
			case hasSelection && !here.Before(selFrom) && here.Before(selTo):
				fg = termbox.ColorWhite
				bg = termbox.ColorBlue
			case hasCurrent && inSpan(current, row, col):
				fg = termbox.ColorBlack
				bg = foundBg
			case inMatches(matches, row, col):
				fg = termbox.ColorBlack
				bg = matchBg
			}
			if ch == '\t' {
				for t := 0; t < w; t++ {
					termbox.SetCell(x+t, i, ' ', fg, bg)
				}
			} else {
				termbox.SetCell(x, i, ch, fg, bg)
			}
			x += w
		}
	}
}

// renderGutter draws one row of the left margin: indentation depth
// (the original's indent guide, blank at zero) or line numbers.
func (s *Screen) renderGutter(b gott.Buffer, mode string, row int, screenRow int) {
	var text string
	switch mode {
	case config.GutterIndent:
		depth := b.GetRowIndentDepth(row)
		if depth == 0 {
			return
		}
		text = fmt.Sprintf("%3d ", depth)
	case config.GutterLines:
		text = fmt.Sprintf("%3d ", row+1)
	default:
		return
	}
	for x, ch := range text {
		termbox.SetCell(x, screenRow, ch, termbox.Attribute(245), termbox.ColorDefault)
	}
}

func (s *Screen) renderInfoBar(e gott.Editor, c Controller) {
	b := e.GetBuffer()
	name := b.GetName()
	if name == "" {
		name = "(unnamed)"
	}
	dirty := ""
	if b.IsDirty() {
		dirty = " [*]"
	}
	language := b.GetLanguage()
	if language == "" {
		language = "text"
	}
	text := fmt.Sprintf(" %s%s (%s, %s)", name, dirty, language, b.GetEncoding())
	finalText := fmt.Sprintf("Ln %d, Col %d  %d lines ",
		e.GetCursor().Row+1, e.GetCursor().Col+1, b.GetRowCount())

	width := s.size.Cols - runewidth.StringWidth(finalText) - 1
	if width < 0 {
		width = 0
	}
	text = runewidth.Truncate(text, width, "…")
	text = runewidth.FillRight(text, width+1) + finalText
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) renderMessageBar(e gott.Editor, c Controller) {
	line := c.GetMessage()
	if label, entry, active := c.GetPrompt(); active {
		line = label + " " + entry
	}
	line = runewidth.Truncate(line, s.size.Cols, "")
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
}

// placeCursor puts the terminal cursor in the prompt while one is
// open, and on the editing position otherwise.
func (s *Screen) placeCursor(e gott.Editor, c Controller, gutter int) {
	if label, entry, active := c.GetPrompt(); active {
		termbox.SetCursor(runewidth.StringWidth(label+" "+entry), s.size.Rows-1)
		return
	}
	b := e.GetBuffer()
	cursor := e.GetCursor()
	offset := e.GetOffset()
	x := gutter
	if cursor.Row < b.GetRowCount() {
		line := b.GetRowText(cursor.Row)
		for col := offset.Cols; col < cursor.Col && col < len(line); col++ {
			x += cellWidth(line[col], x-gutter)
		}
	}
	termbox.SetCursor(x, cursor.Row-offset.Rows)
}

// cellWidth returns the screen width of ch at visual column x. Only
// tabs depend on the position.
func cellWidth(ch rune, x int) int {
	if ch == '\t' {
		return tabWidth - x%tabWidth
	}
	w := runewidth.RuneWidth(ch)
	if w < 1 {
		return 1
	}
	return w
}

func colorAt(colors []gott.Color, i int) gott.Color {
	if i < 0 || i >= len(colors) {
		return gott.ColorText
	}
	return colors[i]
}

// attrFor converts a 256-color palette index to a termbox attribute;
// Output256 attributes are shifted up by one.
func attrFor(index int, fallback termbox.Attribute) termbox.Attribute {
	if index < 0 || index > 255 {
		return fallback
	}
	return termbox.Attribute(index + 1)
}

func inSpan(span gott.Span, row int, col int) bool {
	return span.Row == row && col >= span.Col && col < span.Col+span.Length
}

func inMatches(matches []gott.Span, row int, col int) bool {
	for _, span := range matches {
		if inSpan(span, row, col) {
			return true
		}
	}
	return false
}

func (s *Screen) GetNextEvent() *gott.Event {
	return translateEvent(termbox.PollEvent())
}

func translateEvent(event termbox.Event) *gott.Event {
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &gott.Event{
			Type: gott.EventResize,
			Size: gott.Size{Rows: event.Height, Cols: event.Width},
		}
	case termbox.EventInterrupt:
		return &gott.Event{Type: gott.EventInterrupt}
	case termbox.EventKey:
		// termbox reports a plain rune with Key 0, the code it also
		// uses for Ctrl+Space; keys only translate when no rune arrived
		k := gott.KeyUnsupported
		if event.Ch == 0 {
			k = key(event.Key)
		}
		return &gott.Event{
			Type: gott.EventKey,
			Key:  k,
			Ch:   event.Ch,
		}
	default:
		return &gott.Event{Type: gott.EventKey, Key: gott.KeyUnsupported}
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	case termbox.KeyBackspace:
		return gott.KeyBackspace2
	case termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyF5:
		return gott.KeyF5
	case termbox.KeyCtrlSpace:
		return gott.KeyCtrlSpace
	case termbox.KeyCtrlA:
		return gott.KeyCtrlA
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlG:
		return gott.KeyCtrlG
	case termbox.KeyCtrlK:
		return gott.KeyCtrlK
	case termbox.KeyCtrlL:
		return gott.KeyCtrlL
	case termbox.KeyCtrlN:
		return gott.KeyCtrlN
	case termbox.KeyCtrlO:
		return gott.KeyCtrlO
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyCtrlR:
		return gott.KeyCtrlR
	case termbox.KeyCtrlS:
		return gott.KeyCtrlS
	case termbox.KeyCtrlU:
		return gott.KeyCtrlU
	case termbox.KeyCtrlV:
		return gott.KeyCtrlV
	case termbox.KeyCtrlX:
		return gott.KeyCtrlX
	case termbox.KeyCtrlY:
		return gott.KeyCtrlY
	case termbox.KeyCtrlZ:
		return gott.KeyCtrlZ
	default:
		return gott.KeyUnsupported
	}
}
