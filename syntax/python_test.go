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
package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/jakelongenecker93/notpad/types"
)

func highlightLine(line string) []gott.Color {
	colors := NewPythonHighlighter().Highlight([][]rune{[]rune(line)})
	return colors[0]
}

// expand turns a color row into a compact string for comparison:
// t=text, k=keyword, b=builtin, c=comment, s=string, n=number.
func expand(colors []gott.Color) string {
	letters := map[gott.Color]byte{
		gott.ColorText:    't',
		gott.ColorKeyword: 'k',
		gott.ColorBuiltin: 'b',
		gott.ColorComment: 'c',
		gott.ColorString:  's',
		gott.ColorNumber:  'n',
	}
	out := make([]byte, len(colors))
	for i, c := range colors {
		out[i] = letters[c]
	}
	return string(out)
}

func TestKeywordsAndBuiltins(t *testing.T) {
	colors := highlightLine("def f(): return len(x)")
	//                       def f(): return len(x)
	assert.Equal(t, "kkkttttttkkkkkktbbbtttt"[:len(colors)], expand(colors))
}

func TestComment(t *testing.T) {
	colors := highlightLine("x = 1  # a comment")
	assert.Equal(t, "ttttnttcccccccccccc"[:len(colors)], expand(colors))
}

// a quoted literal inside a comment paints as a string; strings are
// applied after comments and overwrite them
func TestStringInsideComment(t *testing.T) {
	colors := highlightLine(`# say "hi" now`)
	assert.Equal(t, "ccccccsssscccc", expand(colors))
}

// word classes skip matches whose first cell is already painted, so a
// keyword inside a string stays a string
func TestKeywordInsideString(t *testing.T) {
	colors := highlightLine(`x = "def return"`)
	assert.Equal(t, "ttttssssssssssss", expand(colors))
}

func TestNumbers(t *testing.T) {
	colors := highlightLine("y = 3.14 + 7")
	assert.Equal(t, "ttttnnnntttn", expand(colors))
}

// a number inside an identifier is not a number
func TestNumberNeedsWordBoundary(t *testing.T) {
	colors := highlightLine("x2 = a1")
	assert.Equal(t, "ttttttt", expand(colors))
}

func TestEscapedQuote(t *testing.T) {
	colors := highlightLine(`s = 'it\'s'`)
	assert.Equal(t, "ttttsssssss", expand(colors))
}

func TestKeywordCaseSensitive(t *testing.T) {
	colors := highlightLine("DEF x")
	assert.Equal(t, "tttttt"[:len(colors)], expand(colors))
}

func TestEmptyAndBlankLines(t *testing.T) {
	colors := NewPythonHighlighter().Highlight([][]rune{nil, []rune("   ")})
	require.Len(t, colors, 2)
	assert.Empty(t, colors[0])
	assert.Equal(t, "ttt", expand(colors[1]))
}

func TestUnicodeOffsets(t *testing.T) {
	// é and ü are multi-byte; painting converts byte offsets to runes
	colors := highlightLine(`café = 1  # über`)
	assert.Equal(t, "tttttttnttcccccc", expand(colors))
}
