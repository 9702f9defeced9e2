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

// Backspace

// Backspace deletes the characters before the cursor, joining the row
// with the one above at a line start.
type Backspace struct {
	operation
}

func (op *Backspace) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	deleted := make([]rune, 0)
	for i := 0; i < op.Multiplier; i++ {
		c := e.BackspaceChar()
		if c == rune(0) {
			break
		}
		deleted = append([]rune{c}, deleted...)
	}
	if len(deleted) == 0 {
		return nil
	}
	// the deleted text reinserts where the cursor lands after deleting
	inverse := &Insert{Position: gott.InsertAtCursor, Text: string(deleted)}
	inverse.copyForUndo(&op.operation)
	inverse.Cursor = e.GetCursor()
	return inverse
}
