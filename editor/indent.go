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
package editor

// IndentRows prefixes each row in [first, last] with width spaces. The
// cursor follows the text it was on.
func (e *Editor) IndentRows(first int, last int, width int) {
	if width <= 0 {
		return
	}
	b := e.GetActiveBuffer()
	changed := false
	for r := first; r <= last && r < b.GetRowCount(); r++ {
		if r < 0 {
			continue
		}
		b.rows[r].Indent(width)
		changed = true
	}
	if changed {
		b.Touch()
	}
	if e.Cursor.Row >= first && e.Cursor.Row <= last {
		e.Cursor.Col += width
	}
	e.KeepCursorInRow()
	e.refreshMatches()
}

// OutdentRows removes up to width leading spaces from each row in
// [first, last] and returns how many were removed per row.
func (e *Editor) OutdentRows(first int, last int, width int) []int {
	b := e.GetActiveBuffer()
	if first < 0 {
		first = 0
	}
	removed := make([]int, 0)
	changed := false
	for r := first; r <= last && r < b.GetRowCount(); r++ {
		n := b.rows[r].Outdent(width)
		removed = append(removed, n)
		if n > 0 {
			changed = true
		}
	}
	if changed {
		b.Touch()
	}
	if idx := e.Cursor.Row - first; idx >= 0 && idx < len(removed) {
		e.Cursor.Col -= removed[idx]
		if e.Cursor.Col < 0 {
			e.Cursor.Col = 0
		}
	}
	e.KeepCursorInRow()
	e.refreshMatches()
	return removed
}
