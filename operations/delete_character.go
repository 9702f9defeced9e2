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
	gott "github.com/jakelongenecker93/notpad/types"
)

// DeleteCharacter

// DeleteCharacter deletes characters at the cursor, joining rows when
// the deletion runs past a line end. FinallyDeleteRow additionally
// removes the cursor row; it marks the inverse of an Insert that
// created a new line.
type DeleteCharacter struct {
	operation
	FinallyDeleteRow bool
}

func (op *DeleteCharacter) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	deletedText := e.DeleteCharactersAtCursor(op.Multiplier, true, op.FinallyDeleteRow)
	if deletedText == "" && !op.FinallyDeleteRow {
		return nil
	}
	inverse := &Insert{Position: gott.InsertAtCursor, Text: deletedText}
	inverse.copyForUndo(&op.operation)
	return inverse
}
