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

	gott "github.com/jakelongenecker93/notpad/types"
)

// ReplaceAll

// ReplaceAll replaces every occurrence of Find with Replace as one
// undoable step. Count reports how many occurrences were replaced.
// Replacement is not self-inverting, so the inverse restores a
// snapshot of the buffer.
type ReplaceAll struct {
	operation
	Find    string
	Replace string
	Count   int
}

func (op *ReplaceAll) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	if op.Find == "" {
		return nil
	}
	before := string(e.Bytes())
	op.Count = strings.Count(before, op.Find)
	if op.Count == 0 {
		return nil
	}
	e.SetText(strings.ReplaceAll(before, op.Find, op.Replace))
	inverse := &RestoreBuffer{Text: before}
	inverse.copyForUndo(&op.operation)
	return inverse
}
