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

// Sequence

// Sequence performs a list of operations as one undoable step. Its
// inverse performs the collected inverses in reverse order.
type Sequence struct {
	operation
	Operations []gott.Operation
}

func (op *Sequence) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	inverses := make([]gott.Operation, 0, len(op.Operations))
	for _, o := range op.Operations {
		if inverse := o.Perform(e, multiplier); inverse != nil {
			inverses = append([]gott.Operation{inverse}, inverses...)
		}
	}
	if len(inverses) == 0 {
		return nil
	}
	inverse := &Sequence{Operations: inverses}
	inverse.copyForUndo(&op.operation)
	return inverse
}
