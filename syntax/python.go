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
	"regexp"
	"strings"
	"unicode/utf8"

	gott "github.com/jakelongenecker93/notpad/types"
)

var pythonKeywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else",
	"except", "finally", "for", "from", "global", "if", "import",
	"in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
	"return", "try", "while", "with", "yield",
}

var pythonBuiltins = []string{
	"abs", "aiter", "all", "anext", "any", "ascii", "bin", "bool",
	"breakpoint", "bytearray", "bytes", "callable", "chr",
	"classmethod", "compile", "complex", "delattr", "dict", "dir",
	"divmod", "enumerate", "eval", "exec", "exit", "filter", "float",
	"format", "frozenset", "getattr", "globals", "hasattr", "hash",
	"help", "hex", "id", "input", "int", "isinstance", "issubclass",
	"iter", "len", "list", "locals", "map", "max", "memoryview",
	"min", "next", "object", "oct", "open", "ord", "pow", "print",
	"property", "quit", "range", "repr", "reversed", "round", "set",
	"setattr", "slice", "sorted", "staticmethod", "str", "sum",
	"super", "tuple", "type", "vars", "zip",
	"ArithmeticError", "AssertionError", "AttributeError",
	"BaseException", "BlockingIOError", "BrokenPipeError",
	"BufferError", "ChildProcessError", "ConnectionError",
	"ConnectionAbortedError", "ConnectionRefusedError",
	"ConnectionResetError", "EOFError", "Ellipsis", "EnvironmentError",
	"Exception", "FileExistsError", "FileNotFoundError",
	"FloatingPointError", "GeneratorExit", "IOError", "ImportError",
	"IndentationError", "IndexError", "InterruptedError",
	"IsADirectoryError", "KeyError", "KeyboardInterrupt",
	"LookupError", "MemoryError", "ModuleNotFoundError", "NameError",
	"NotADirectoryError", "NotImplemented", "NotImplementedError",
	"OSError", "OverflowError", "PermissionError",
	"ProcessLookupError", "RecursionError", "ReferenceError",
	"RuntimeError", "StopAsyncIteration", "StopIteration",
	"SyntaxError", "SystemError", "SystemExit", "TabError",
	"TimeoutError", "TypeError", "UnboundLocalError",
	"UnicodeDecodeError", "UnicodeEncodeError", "UnicodeError",
	"UnicodeTranslateError", "ValueError", "ZeroDivisionError",
}

// The PythonHighlighter colors Python with per-line patterns. Strings
// are painted after comments so a quoted span wins where the two
// overlap, and word classes only paint runs whose first cell is still
// uncolored.
type PythonHighlighter struct {
	commentPattern *regexp.Regexp
	stringPattern  *regexp.Regexp
	keywordPattern *regexp.Regexp
	builtinPattern *regexp.Regexp
	numberPattern  *regexp.Regexp
}

func NewPythonHighlighter() *PythonHighlighter {
	h := &PythonHighlighter{}
	h.commentPattern = regexp.MustCompile(`#.*`)
	h.stringPattern = regexp.MustCompile(`'([^'\\]|\\.)*'|"([^"\\]|\\.)*"`)
	h.keywordPattern = regexp.MustCompile(`\b(` + strings.Join(pythonKeywords, "|") + `)\b`)
	h.builtinPattern = regexp.MustCompile(`\b(` + strings.Join(pythonBuiltins, "|") + `)\b`)
	h.numberPattern = regexp.MustCompile(`\b\d+(\.\d+)?\b`)
	return h
}

func (h *PythonHighlighter) Highlight(lines [][]rune) [][]gott.Color {
	colors := make([][]gott.Color, len(lines))
	for i, runes := range lines {
		rowColors := make([]gott.Color, len(runes))
		for j := range rowColors {
			rowColors[j] = gott.ColorText
		}
		line := string(runes)
		for _, m := range h.commentPattern.FindAllStringIndex(line, -1) {
			paintBytes(rowColors, line, m[0], m[1], gott.ColorComment, false)
		}
		for _, m := range h.stringPattern.FindAllStringIndex(line, -1) {
			paintBytes(rowColors, line, m[0], m[1], gott.ColorString, false)
		}
		for _, m := range h.keywordPattern.FindAllStringIndex(line, -1) {
			paintBytes(rowColors, line, m[0], m[1], gott.ColorKeyword, true)
		}
		for _, m := range h.builtinPattern.FindAllStringIndex(line, -1) {
			paintBytes(rowColors, line, m[0], m[1], gott.ColorBuiltin, true)
		}
		for _, m := range h.numberPattern.FindAllStringIndex(line, -1) {
			paintBytes(rowColors, line, m[0], m[1], gott.ColorNumber, true)
		}
		colors[i] = rowColors
	}
	return colors
}

// paintBytes colors the byte range [from, to) of line, converting byte
// offsets to rune indexes. With skipExisting, a match whose first cell
// is already colored is left alone.
func paintBytes(colors []gott.Color, line string, from, to int, color gott.Color, skipExisting bool) {
	runeFrom := utf8.RuneCountInString(line[:from])
	if runeFrom >= len(colors) {
		return
	}
	if skipExisting && colors[runeFrom] != gott.ColorText {
		return
	}
	runeTo := runeFrom + utf8.RuneCountInString(line[from:to])
	if runeTo > len(colors) {
		runeTo = len(colors)
	}
	for k := runeFrom; k < runeTo; k++ {
		colors[k] = color
	}
}
