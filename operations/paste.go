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

package operations

import (
	"strings"
	"unicode/utf8"

	gott "github.com/jakelongenecker93/notpad/types"
)

// Paste

// Paste inserts the pasteboard text at the cursor. Text cut as whole
// lines pastes as whole lines, starting on the line below the cursor.
type Paste struct {
	operation
}

func (op *Paste) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	text := strings.Repeat(e.GetPasteText(), op.Multiplier)
	if text == "" {
		return nil
	}
	b := e.GetBuffer()
	if e.GetPasteMode() == gott.PasteNewLine {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		below := e.GetCursor().Row + 1
		if b.GetRowCount() == 0 {
			e.SetCursor(gott.Point{})
		} else if below >= b.GetRowCount() {
			// pasting after the last line joins to its end instead of
			// growing a blank row past it
			last := b.GetRowCount() - 1
			e.SetCursor(gott.Point{Row: last, Col: len(b.GetRowText(last))})
			text = "\n" + strings.TrimSuffix(text, "\n")
		} else {
			e.SetCursor(gott.Point{Row: below, Col: 0})
		}
	}
	start := e.GetCursor()
	for _, c := range text {
		e.InsertChar(c)
	}
	inverse := &DeleteCharacter{}
	inverse.copyForUndo(&op.operation)
	inverse.Cursor = start
	inverse.Multiplier = utf8.RuneCountInString(text)
	return inverse
}
