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

// IndentLines

// IndentLines indents the rows in [First, Last] by Width spaces.
type IndentLines struct {
	operation
	First int
	Last  int
	Width int
}

func (op *IndentLines) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	e.IndentRows(op.First, op.Last, op.Width)
	inverse := &OutdentLines{First: op.First, Last: op.Last, Width: op.Width}
	inverse.copyForUndo(&op.operation)
	return inverse
}

// OutdentLines

// OutdentLines removes up to Width leading spaces from the rows in
// [First, Last]. Rows may lose unequal amounts, so the inverse records
// the count removed from each.
type OutdentLines struct {
	operation
	First int
	Last  int
	Width int
}

func (op *OutdentLines) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	removed := e.OutdentRows(op.First, op.Last, op.Width)
	total := 0
	for _, n := range removed {
		total += n
	}
	if total == 0 {
		return nil
	}
	inverse := &AdjustIndent{First: op.First, Counts: removed}
	inverse.copyForUndo(&op.operation)
	return inverse
}

// AdjustIndent

// AdjustIndent adds or removes an exact number of leading spaces per
// row, starting at First.
type AdjustIndent struct {
	operation
	First  int
	Counts []int
	Remove bool
}

func (op *AdjustIndent) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	for i, n := range op.Counts {
		if n <= 0 {
			continue
		}
		row := op.First + i
		if op.Remove {
			e.OutdentRows(row, row, n)
		} else {
			e.IndentRows(row, row, n)
		}
	}
	inverse := &AdjustIndent{First: op.First, Counts: op.Counts, Remove: !op.Remove}
	inverse.copyForUndo(&op.operation)
	return inverse
}
