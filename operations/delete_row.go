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

// DeleteRow

// DeleteRow deletes rows at the cursor, loading them on the pasteboard
// so they can be pasted as whole lines.
type DeleteRow struct {
	operation
}

func (op *DeleteRow) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	rowsBefore := e.GetBuffer().GetRowCount()
	snapshot := ""
	if len(e.GetBuffer().GetRowText(op.Cursor.Row)) == 0 {
		snapshot = string(e.Bytes())
	}
	deletedText := e.DeleteRowsAtCursor(op.Multiplier)
	if e.GetBuffer().GetRowCount() == rowsBefore {
		return nil
	}
	e.SetPasteBoard(deletedText, gott.PasteNewLine)
	text := deletedText
	// rows remaining below the gap mean the deleted rows reinsert as a
	// split, so the inverse text needs its line ending back
	if op.Cursor.Row < e.GetBuffer().GetRowCount() {
		text += "\n"
	}
	if text == "" {
		// deleting an empty final row leaves nothing to reinsert
		inverse := &RestoreBuffer{Text: snapshot}
		inverse.copyForUndo(&op.operation)
		return inverse
	}
	inverse := &Insert{Position: gott.InsertAtCursor, Text: text}
	inverse.copyForUndo(&op.operation)
	return inverse
}
