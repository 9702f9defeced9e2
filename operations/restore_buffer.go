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

// RestoreBuffer

// RestoreBuffer swaps in a full snapshot of the buffer text. It serves
// as the inverse of operations whose effect cannot be undone by
// reinserting deleted text, such as replace-all and reformatting.
type RestoreBuffer struct {
	operation
	Text string
}

func (op *RestoreBuffer) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	before := string(e.Bytes())
	e.SetText(op.Text)
	inverse := &RestoreBuffer{Text: before}
	inverse.copyForUndo(&op.operation)
	return inverse
}
