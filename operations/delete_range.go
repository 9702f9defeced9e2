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

// DeleteRange

// DeleteRange deletes the half-open range [From, To), optionally
// loading the deleted text on the pasteboard. The commander uses it to
// cut or delete a selection.
type DeleteRange struct {
	operation
	From         gott.Point
	To           gott.Point
	ToPasteboard bool
}

func (op *DeleteRange) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	deleted := e.DeleteRange(op.From, op.To)
	if deleted == "" {
		return nil
	}
	if op.ToPasteboard {
		e.SetPasteBoard(deleted, gott.PasteAtCursor)
	}
	inverse := &Insert{Position: gott.InsertAtCursor, Text: deleted}
	inverse.copyForUndo(&op.operation)
	inverse.Cursor = e.GetCursor()
	return inverse
}
