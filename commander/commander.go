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
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jakelongenecker93/notpad/config"
	"github.com/jakelongenecker93/notpad/export"
	"github.com/jakelongenecker93/notpad/operations"
	"github.com/jakelongenecker93/notpad/state"
	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
	"github.com/jakelongenecker93/notpad/watch"
)

// Prompts collected in the message bar.
const (
	PromptNone = iota
	PromptFind
	PromptHighlight
	PromptReplaceFind
	PromptReplaceWith
	PromptOpen
	PromptSaveAs
	PromptCommand
	PromptConfirmQuit
)

// The Commander converts user input into commands for the Editor.
// Printable input inserts; everything else runs through key bindings,
// message bar prompts, and the command line.
type Commander struct {
	editor  gott.Editor
	config  *config.Config
	theme   *syntax.Theme
	store   *state.Store   // nil when session state is disabled
	watcher *watch.Watcher // nil when file watching is disabled

	gutter  string
	running bool
	debug   bool   // debug mode displays information about events (key codes, etc)
	message string // status message

	prompt int    // prompt being collected in the message bar
	entry  string // text typed into the prompt

	insert        *operations.Insert // typing run in progress
	mark          gott.Point         // selection anchor
	markSet       bool
	replaceText   string // find term held while the replacement is typed
	highlightTerm string // last highlight-all term, prefills the prompt
}

func NewCommander(e gott.Editor, cfg *config.Config, theme *syntax.Theme) *Commander {
	c := &Commander{
		editor:  e,
		config:  cfg,
		theme:   theme,
		gutter:  cfg.Gutter,
		running: true,
	}
	e.SetSyntaxDefaults(cfg.Syntax, cfg.SyntaxEng.Engine)
	bindLispPrimitives(c)
	return c
}

func (c *Commander) SetStore(s *state.Store) {
	c.store = s
}

func (c *Commander) SetWatcher(w *watch.Watcher) {
	c.watcher = w
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) Theme() *syntax.Theme {
	return c.theme
}

func (c *Commander) GutterMode() string {
	return c.gutter
}

func (c *Commander) GetMessage() string {
	return c.message
}

// GetPrompt reports the prompt being collected, if any, for the
// message bar.
func (c *Commander) GetPrompt() (label string, text string, active bool) {
	if c.prompt == PromptNone {
		return "", "", false
	}
	return c.promptLabel(), c.entry, true
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventResize:
		// the screen measures itself on every render
		return nil
	case gott.EventInterrupt:
		c.checkWatcher()
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	if c.prompt != PromptNone {
		return c.ProcessKeyPrompt(event)
	}
	return c.ProcessKeyEdit(event)
}

func (c *Commander) ProcessKeyEdit(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.reset()
		//
		// movement ends the typing run and follows the mark
		//
		case gott.KeyArrowUp:
			c.move(gott.MoveUp)
		case gott.KeyArrowDown:
			c.move(gott.MoveDown)
		case gott.KeyArrowLeft:
			c.move(gott.MoveLeft)
		case gott.KeyArrowRight:
			c.move(gott.MoveRight)
		case gott.KeyHome:
			c.endInsert()
			e.MoveToBeginningOfLine()
			c.extendSelection()
		case gott.KeyEnd:
			c.endInsert()
			e.MoveToEndOfLine()
			c.extendSelection()
		case gott.KeyPgup:
			c.endInsert()
			e.PageUp()
			c.extendSelection()
		case gott.KeyPgdn:
			c.endInsert()
			e.PageDown()
			c.extendSelection()
		//
		// typing
		//
		case gott.KeyEnter:
			c.typeRune('\n')
		case gott.KeySpace:
			c.typeRune(' ')
		case gott.KeyTab:
			c.indent()
		case gott.KeyBackspace2:
			c.backspace()
		case gott.KeyDelete:
			c.deleteForward()
		//
		// control keys carry the menu commands
		//
		case gott.KeyCtrlSpace:
			c.toggleMark()
		case gott.KeyCtrlA:
			c.endInsert()
			e.SelectAll()
			c.markSet = false
		case gott.KeyCtrlB:
			c.findPrevious()
		case gott.KeyCtrlC:
			c.copySelection()
		case gott.KeyCtrlE:
			c.openPrompt(PromptCommand, "")
		case gott.KeyCtrlF:
			c.openPrompt(PromptFind, e.GetSearchText())
		case gott.KeyCtrlG:
			c.findNext()
		case gott.KeyCtrlK:
			c.deleteRow()
		case gott.KeyCtrlL:
			prefill := c.highlightTerm
			if prefill == "" {
				prefill = e.GetSearchText()
			}
			c.openPrompt(PromptHighlight, prefill)
		case gott.KeyCtrlN:
			c.newBuffer()
		case gott.KeyCtrlO:
			c.openPrompt(PromptOpen, "")
		case gott.KeyCtrlQ:
			c.quit()
		case gott.KeyCtrlR:
			c.openPrompt(PromptReplaceFind, e.GetSearchText())
		case gott.KeyCtrlS:
			c.save()
		case gott.KeyCtrlU:
			c.outdent()
		case gott.KeyCtrlV:
			c.paste()
		case gott.KeyCtrlX:
			c.cutSelection()
		case gott.KeyCtrlY:
			c.endInsert()
			e.PerformRedo()
		case gott.KeyCtrlZ:
			c.insert = nil
			e.PerformUndo()
		case gott.KeyF5:
			b := e.GetBuffer()
			b.InvalidateHighlight()
			b.EnsureHighlighted()
		}
	}
	if ch != 0 {
		c.typeRune(ch)
	}
	return nil
}

// ProcessKeyPrompt collects prompt input in the message bar.
func (c *Commander) ProcessKeyPrompt(event *gott.Event) error {
	if c.prompt == PromptConfirmQuit {
		switch {
		case event.Ch == 'y' || event.Ch == 'Y':
			c.closePrompt()
			c.running = false
		case event.Ch == 'n' || event.Ch == 'N' || event.Key == gott.KeyEsc:
			c.closePrompt()
		}
		return nil
	}
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.closePrompt()
		case gott.KeyEnter:
			c.acceptPrompt()
		case gott.KeyBackspace2:
			if r := []rune(c.entry); len(r) > 0 {
				c.entry = string(r[0 : len(r)-1])
			}
		case gott.KeySpace:
			c.entry += " "
		}
	}
	if ch != 0 {
		c.entry = c.entry + string(ch)
	}
	return nil
}

func (c *Commander) openPrompt(kind int, prefill string) {
	c.prompt = kind
	c.entry = prefill
	c.message = ""
}

func (c *Commander) closePrompt() {
	c.prompt = PromptNone
	c.entry = ""
}

func (c *Commander) promptLabel() string {
	switch c.prompt {
	case PromptFind:
		return "Find:"
	case PromptHighlight:
		return "Highlight:"
	case PromptReplaceFind:
		return "Replace:"
	case PromptReplaceWith:
		return fmt.Sprintf("Replace '%s' with:", c.replaceText)
	case PromptOpen:
		return "Open:"
	case PromptSaveAs:
		return "Save as:"
	case PromptCommand:
		return ":"
	case PromptConfirmQuit:
		return "Unsaved changes. Quit anyway? (y/n)"
	}
	return ""
}

func (c *Commander) acceptPrompt() {
	kind := c.prompt
	text := c.entry
	c.closePrompt()
	switch kind {
	case PromptFind:
		c.performFind(text)
	case PromptHighlight:
		c.performHighlight(text)
	case PromptReplaceFind:
		if text == "" {
			return
		}
		c.replaceText = text
		c.openPrompt(PromptReplaceWith, "")
	case PromptReplaceWith:
		c.performReplace(c.replaceText, text)
	case PromptOpen:
		if text != "" {
			c.OpenPath(text)
		}
	case PromptSaveAs:
		if text != "" {
			c.writeFile(text)
		}
	case PromptCommand:
		c.PerformCommand(text)
	}
}

// reset is the Esc action: it ends the typing run and clears the
// mark, selection, search marks, and message.
func (c *Commander) reset() {
	e := c.editor
	c.endInsert()
	c.markSet = false
	e.ClearSelection()
	e.ClearMatches()
	c.message = ""
}

// endInsert closes the typing run so the next operation gets its own
// undo step.
func (c *Commander) endInsert() {
	c.editor.CloseInsert()
	c.insert = nil
}

func (c *Commander) move(direction int) {
	c.endInsert()
	c.editor.MoveCursor(direction)
	c.extendSelection()
}

// extendSelection stretches the selection between the mark and the
// cursor. Movement without a mark drops any selection.
func (c *Commander) extendSelection() {
	e := c.editor
	if c.markSet {
		e.SetSelection(c.mark, e.GetCursor())
	} else {
		e.ClearSelection()
	}
}

func (c *Commander) toggleMark() {
	e := c.editor
	if c.markSet {
		c.markSet = false
		e.ClearSelection()
		c.message = "Mark cleared."
		return
	}
	c.mark = e.GetCursor()
	c.markSet = true
	c.message = "Mark set."
}

// editable reports whether the buffer accepts changes, complaining in
// the message bar when it does not.
func (c *Commander) editable() bool {
	if c.editor.GetBuffer().GetReadOnly() {
		c.message = "Buffer is read-only."
		return false
	}
	return true
}

// typeRune inserts a printable character. Typing over a selection
// deletes it first; both edits undo as one step.
func (c *Commander) typeRune(ch rune) {
	e := c.editor
	if !c.editable() {
		return
	}
	if from, to, ok := e.GetSelection(); ok {
		c.insert = nil
		e.Perform(&operations.Sequence{Operations: []gott.Operation{
			&operations.DeleteRange{From: from, To: to},
			&operations.Insert{Position: gott.InsertAtCursor, Text: string(ch)},
		}}, 1)
		// the insert primitive leaves the cursor at the start of the
		// inserted text; typing continues after it
		e.MoveCursor(gott.MoveRight)
		e.ClearSelection()
		c.markSet = false
		return
	}
	if c.insert == nil {
		c.insert = &operations.Insert{Position: gott.InsertAtCursor}
		e.Perform(c.insert, 1)
	}
	e.InsertChar(ch)
}

func (c *Commander) backspace() {
	e := c.editor
	if !c.editable() {
		return
	}
	if c.deleteSelection() {
		return
	}
	if c.insert != nil && c.insert.Length() > 0 {
		e.BackspaceChar()
		return
	}
	c.endInsert()
	e.Perform(&operations.Backspace{}, 1)
}

func (c *Commander) deleteForward() {
	e := c.editor
	if !c.editable() {
		return
	}
	if c.deleteSelection() {
		return
	}
	c.endInsert()
	e.Perform(&operations.DeleteCharacter{}, 1)
}

// deleteSelection removes the selected range as one undo step.
func (c *Commander) deleteSelection() bool {
	e := c.editor
	from, to, ok := e.GetSelection()
	if !ok {
		return false
	}
	c.endInsert()
	e.Perform(&operations.DeleteRange{From: from, To: to}, 1)
	e.ClearSelection()
	c.markSet = false
	return true
}

func (c *Commander) deleteRow() {
	if !c.editable() {
		return
	}
	c.endInsert()
	c.markSet = false
	c.editor.ClearSelection()
	c.editor.Perform(&operations.DeleteRow{}, 1)
}

// rangeText reads the text of the half-open range [from, to).
func (c *Commander) rangeText(from gott.Point, to gott.Point) string {
	b := c.editor.GetBuffer()
	if from.Row == to.Row {
		line := b.GetRowText(from.Row)
		return string(line[clip(from.Col, len(line)):clip(to.Col, len(line))])
	}
	var s strings.Builder
	first := b.GetRowText(from.Row)
	s.WriteString(string(first[clip(from.Col, len(first)):]))
	for row := from.Row + 1; row < to.Row; row++ {
		s.WriteByte('\n')
		s.WriteString(string(b.GetRowText(row)))
	}
	last := b.GetRowText(to.Row)
	s.WriteByte('\n')
	s.WriteString(string(last[0:clip(to.Col, len(last))]))
	return s.String()
}

func clip(i int, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func (c *Commander) copySelection() {
	e := c.editor
	from, to, ok := e.GetSelection()
	if !ok {
		c.message = "No selection."
		return
	}
	e.SetPasteBoard(c.rangeText(from, to), gott.PasteAtCursor)
	c.message = ""
}

func (c *Commander) cutSelection() {
	e := c.editor
	if !c.editable() {
		return
	}
	from, to, ok := e.GetSelection()
	if !ok {
		c.message = "No selection."
		return
	}
	c.endInsert()
	e.Perform(&operations.DeleteRange{From: from, To: to, ToPasteboard: true}, 1)
	e.ClearSelection()
	c.markSet = false
}

func (c *Commander) paste() {
	e := c.editor
	if !c.editable() {
		return
	}
	if e.GetPasteText() == "" {
		return
	}
	c.endInsert()
	if from, to, ok := e.GetSelection(); ok {
		e.Perform(&operations.Sequence{Operations: []gott.Operation{
			&operations.DeleteRange{From: from, To: to},
			&operations.Paste{},
		}}, 1)
		e.ClearSelection()
		c.markSet = false
		return
	}
	e.Perform(&operations.Paste{}, 1)
}

// indent shifts the selected lines right by the configured width, or
// inserts that many spaces at the cursor.
func (c *Commander) indent() {
	e := c.editor
	if !c.editable() {
		return
	}
	width := c.config.IndentWidth
	if from, to, ok := e.GetSelection(); ok {
		c.endInsert()
		e.Perform(&operations.IndentLines{First: from.Row, Last: to.Row, Width: width}, 1)
		c.reselectRows(from.Row, to.Row)
		return
	}
	c.endInsert()
	e.Perform(&operations.Insert{
		Position: gott.InsertAtCursor,
		Text:     strings.Repeat(" ", width),
	}, 1)
	// the insert primitive leaves the cursor at the start of the
	// inserted spaces; typing continues after them
	for i := 0; i < width; i++ {
		e.MoveCursor(gott.MoveRight)
	}
}

func (c *Commander) outdent() {
	e := c.editor
	if !c.editable() {
		return
	}
	width := c.config.IndentWidth
	if from, to, ok := e.GetSelection(); ok {
		c.endInsert()
		e.Perform(&operations.OutdentLines{First: from.Row, Last: to.Row, Width: width}, 1)
		c.reselectRows(from.Row, to.Row)
		return
	}
	c.endInsert()
	e.Perform(&operations.OutdentLines{
		First: e.GetCursor().Row,
		Last:  e.GetCursor().Row,
		Width: width,
	}, 1)
}

// reselectRows selects the whole lines just shifted so the block can
// be shifted again.
func (c *Commander) reselectRows(first int, last int) {
	e := c.editor
	b := e.GetBuffer()
	if last >= b.GetRowCount() {
		last = b.GetRowCount() - 1
	}
	if last < 0 {
		return
	}
	end := gott.Point{Row: last, Col: len(b.GetRowText(last))}
	e.SetSelection(gott.Point{Row: first}, end)
	c.mark = gott.Point{Row: first}
	c.markSet = true
}

// Search

func (c *Commander) performFind(term string) {
	e := c.editor
	if term == "" {
		e.Find("")
		c.message = ""
		return
	}
	if e.Find(term) {
		c.message = ""
	} else {
		c.message = fmt.Sprintf("%q not found.", term)
	}
}

func (c *Commander) findNext() {
	e := c.editor
	if e.GetSearchText() == "" {
		c.openPrompt(PromptFind, "")
		return
	}
	c.endInsert()
	if e.FindNext() {
		c.message = ""
	} else {
		c.message = fmt.Sprintf("%q not found.", e.GetSearchText())
	}
}

func (c *Commander) findPrevious() {
	e := c.editor
	if e.GetSearchText() == "" {
		c.openPrompt(PromptFind, "")
		return
	}
	c.endInsert()
	if e.FindPrevious() {
		c.message = ""
	} else {
		c.message = fmt.Sprintf("%q not found.", e.GetSearchText())
	}
}

func (c *Commander) performHighlight(term string) {
	e := c.editor
	if term == "" {
		e.ClearMatches()
		c.message = ""
		return
	}
	c.highlightTerm = term
	if e.HighlightMatches(term) == 0 {
		c.message = fmt.Sprintf("%q not found.", term)
	} else {
		c.message = ""
	}
}

func (c *Commander) performReplace(find string, replace string) {
	e := c.editor
	if find == "" || !c.editable() {
		return
	}
	c.endInsert()
	n := e.ReplaceAll(find, replace)
	if n == 0 {
		c.message = fmt.Sprintf("%q not found.", find)
		return
	}
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	c.message = fmt.Sprintf("Replaced %d occurrence%s.", n, suffix)
}

// Files and buffers

func (c *Commander) save() {
	name := c.editor.GetBuffer().GetFileName()
	if name == "" {
		c.openPrompt(PromptSaveAs, "")
		return
	}
	c.writeFile(name)
}

func (c *Commander) writeFile(name string) {
	e := c.editor
	c.endInsert()
	if c.watcher != nil {
		c.watcher.Silence(name)
	}
	if err := e.WriteFile(name); err != nil {
		c.message = err.Error()
		return
	}
	c.message = fmt.Sprintf("Saved %s.", name)
	abs := absPath(name)
	c.store.SavePosition(abs, e.GetCursor())
	if c.watcher != nil {
		c.watcher.Add(abs)
	}
}

// OpenPath loads a file into a buffer, restoring the saved cursor
// position when the session store has one.
func (c *Commander) OpenPath(path string) {
	e := c.editor
	c.endInsert()
	c.markSet = false
	created, err := e.OpenFile(path)
	if err != nil {
		c.message = err.Error()
		return
	}
	abs := absPath(path)
	if created {
		c.message = fmt.Sprintf("New file %s.", path)
	} else {
		c.message = ""
		if p, ok := c.store.Position(abs); ok {
			b := e.GetBuffer()
			if p.Row >= b.GetRowCount() {
				p.Row = b.GetRowCount() - 1
			}
			if p.Row < 0 {
				p.Row = 0
			}
			e.SetCursor(p)
			e.KeepCursorInRow()
			e.CenterCursor()
		}
	}
	c.store.TouchFile(abs)
	if c.watcher != nil {
		c.watcher.Add(abs)
	}
}

func (c *Commander) newBuffer() {
	c.endInsert()
	c.markSet = false
	c.editor.NewBuffer()
	c.message = ""
}

func (c *Commander) quit() {
	if c.editor.AnyDirty() {
		c.openPrompt(PromptConfirmQuit, "")
		return
	}
	c.running = false
}

func (c *Commander) reload() {
	e := c.editor
	name := e.GetBuffer().GetFileName()
	if name == "" {
		c.message = "No file to reload."
		return
	}
	c.insert = nil
	c.markSet = false
	if err := e.ReadFile(name); err != nil {
		c.message = err.Error()
		return
	}
	c.message = fmt.Sprintf("Reloaded %s.", name)
}

// Shutdown records the cursor position and stops the watcher. Called
// once when the main loop exits.
func (c *Commander) Shutdown() {
	e := c.editor
	if name := e.GetBuffer().GetFileName(); name != "" {
		c.store.SavePosition(absPath(name), e.GetCursor())
	}
	if c.watcher != nil {
		c.watcher.Close()
	}
}

// checkWatcher drains queued file-change reports into the message bar.
func (c *Commander) checkWatcher() {
	if c.watcher == nil {
		return
	}
	for {
		select {
		case <-c.watcher.Changes():
			c.message = "File changed on disk. Use :reload to refresh."
		default:
			return
		}
	}
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// PerformCommand runs a command line entered at the command prompt.
func (c *Commander) PerformCommand(text string) {
	e := c.editor

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	parts := strings.Fields(trimmed)
	// everything after the command word, for arguments with spaces
	arg := strings.TrimSpace(strings.TrimPrefix(trimmed, parts[0]))

	if i, err := strconv.ParseInt(parts[0], 10, 64); err == nil {
		c.endInsert()
		e.MoveToLine(int(i) - 1)
		c.extendSelection()
		return
	}

	switch parts[0] {
	case "$":
		c.endInsert()
		e.MoveToLine(e.GetBuffer().GetRowCount() - 1)
		c.extendSelection()
	case "open":
		if arg != "" {
			c.OpenPath(arg)
		}
	case "saveas":
		if arg != "" {
			c.writeFile(arg)
		}
	case "new":
		c.newBuffer()
	case "q":
		c.quit()
	case "q!":
		c.running = false
	case "wq":
		name := e.GetBuffer().GetFileName()
		if name == "" {
			c.message = "No file name. Use saveas <path>."
			return
		}
		c.writeFile(name)
		if !e.GetBuffer().IsDirty() {
			c.running = false
		}
	case "buffer":
		if len(parts) == 2 {
			number, err := strconv.Atoi(parts[1])
			if err != nil {
				c.message = err.Error()
				return
			}
			if err := e.SelectBuffer(number); err != nil {
				c.message = err.Error()
			} else {
				c.insert = nil
				c.markSet = false
				c.message = ""
			}
		}
	case "buffers":
		c.message = strings.TrimSpace(strings.ReplaceAll(e.ListBuffers(), "\n", "  "))
	case "bn":
		c.insert = nil
		c.markSet = false
		e.NextBuffer()
	case "bp":
		c.insert = nil
		c.markSet = false
		e.PreviousBuffer()
	case "syntax":
		c.performSyntax(arg)
	case "engine":
		c.performEngine(arg)
	case "theme":
		c.performTheme(arg)
	case "gutter":
		c.performGutter(arg)
	case "export":
		c.performExport(parts[1:])
	case "fmt":
		c.formatBuffer()
	case "reload":
		c.reload()
	case "recent":
		paths, _ := c.store.Recent(10)
		if len(paths) == 0 {
			c.message = "No recent files."
		} else {
			c.message = strings.Join(paths, "  ")
		}
	case "eval":
		if arg != "" {
			c.message = c.ParseEval(arg)
		}
	case "debug":
		if arg == "on" {
			c.debug = true
		} else if arg == "off" {
			c.debug = false
			c.message = ""
		}
	default:
		c.message = fmt.Sprintf("Unknown command: %s", parts[0])
	}
}

func (c *Commander) performSyntax(arg string) {
	b := c.editor.GetBuffer()
	switch arg {
	case "on":
		b.SetSyntaxEnabled(true)
		b.EnsureHighlighted()
	case "off":
		b.SetSyntaxEnabled(false)
		b.EnsureHighlighted()
	case "now":
		b.InvalidateHighlight()
		b.EnsureHighlighted()
	default:
		c.message = "Usage: syntax on|off|now"
	}
}

func (c *Commander) performEngine(arg string) {
	b := c.editor.GetBuffer()
	switch arg {
	case syntax.EngineAuto, syntax.EngineNative, syntax.EngineChroma:
		b.SetEngine(arg)
		b.EnsureHighlighted()
	default:
		c.message = "Usage: engine auto|native|chroma"
	}
}

func (c *Commander) performTheme(name string) {
	if name == "" {
		c.message = fmt.Sprintf("Theme is %s.", c.theme.Name)
		return
	}
	if name == "notpad" {
		c.theme = syntax.DefaultTheme()
		c.message = ""
		return
	}
	dir, err := config.Dir()
	if err != nil {
		c.message = err.Error()
		return
	}
	theme, err := syntax.FindTheme(filepath.Join(dir, "themes"), name)
	if err != nil {
		c.message = fmt.Sprintf("No theme %s.", name)
		return
	}
	c.theme = theme
	c.message = ""
}

func (c *Commander) performGutter(arg string) {
	switch arg {
	case config.GutterIndent, config.GutterLines, config.GutterOff:
		c.gutter = arg
	default:
		c.message = "Usage: gutter indent|lines|off"
	}
}

func (c *Commander) performExport(args []string) {
	if len(args) != 2 {
		c.message = "Usage: export pdf|docx|html <path>"
		return
	}
	format, path := args[0], args[1]
	if err := export.File(format, path, c.editor.GetBuffer(), c.theme); err != nil {
		c.message = err.Error()
		return
	}
	c.message = fmt.Sprintf("Exported %s.", path)
}

// formatBuffer pipes the buffer through the configured formatter and
// applies the result as one undoable step.
func (c *Commander) formatBuffer() {
	e := c.editor
	command := c.config.Formatter
	if command == "" {
		c.message = "No formatter configured."
		return
	}
	if !c.editable() {
		return
	}
	out, err := FormatBuffer(command, e.GetBuffer().GetFileName(), e.Bytes())
	if err != nil {
		c.message = err.Error()
		return
	}
	if string(out) == string(e.Bytes()) {
		c.message = "Already formatted."
		return
	}
	c.endInsert()
	e.Perform(&operations.RestoreBuffer{Text: string(out)}, 1)
	c.message = "Formatted."
}
