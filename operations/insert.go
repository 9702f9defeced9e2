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
	"unicode/utf8"

	gott "github.com/jakelongenecker93/notpad/types"
)

// Insert

// An Insert with Text inserts it at Position. An Insert with no Text
// registers itself with the editor and collects characters as they are
// typed, so the whole run of typing undoes as one step.
type Insert struct {
	operation
	Position int
	Text     string
	Inverse  *DeleteCharacter
}

func (op *Insert) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)

	if op.Text != "" {
		e.SetCursor(op.Cursor)
	} else {
		op.Cursor = e.GetCursor()
		e.SetInsertOperation(op)
	}

	op.Cursor, _ = e.InsertText(op.Text, op.Position)

	inverse := &DeleteCharacter{}
	inverse.copyForUndo(&op.operation)
	inverse.Multiplier = utf8.RuneCountInString(op.Text)
	if op.Position == gott.InsertAtNewLineBelowCursor ||
		op.Position == gott.InsertAtNewLineAboveCursor {
		inverse.FinallyDeleteRow = true
	}
	op.Inverse = inverse
	return inverse
}

func (op *Insert) Length() int {
	return utf8.RuneCountInString(op.Text)
}

func (op *Insert) AddCharacter(c rune) {
	op.Text += string(c)
}

func (op *Insert) DeleteCharacter() {
	r := []rune(op.Text)
	if len(r) == 0 {
		return
	}
	op.Text = string(r[0 : len(r)-1])
}

func (op *Insert) Close() {
	op.Inverse.Multiplier = utf8.RuneCountInString(op.Text)
}
