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
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	gott "github.com/jakelongenecker93/notpad/types"
)

// The ChromaHighlighter colors any language chroma has a lexer for,
// folding chroma's token types down to the editor's color classes.
type ChromaHighlighter struct {
	lexer    chroma.Lexer
	fileName string // resolved by name and content when no lexer was given
}

func NewChromaHighlighter(language string) *ChromaHighlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	return &ChromaHighlighter{lexer: chroma.Coalesce(lexer)}
}

// NewChromaFileHighlighter colors a file no filetype pattern claimed.
// The lexer is matched on the file name, then sniffed from the text,
// then chroma's plain-text fallback.
func NewChromaFileHighlighter(name string) *ChromaHighlighter {
	return &ChromaHighlighter{fileName: name}
}

func (h *ChromaHighlighter) resolve(text string) chroma.Lexer {
	if h.lexer != nil {
		return h.lexer
	}
	lexer := lexers.Match(filepath.Base(h.fileName))
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func (h *ChromaHighlighter) Highlight(lines [][]rune) [][]gott.Color {
	colors := make([][]gott.Color, len(lines))
	parts := make([]string, len(lines))
	for i, runes := range lines {
		colors[i] = make([]gott.Color, len(runes))
		for j := range colors[i] {
			colors[i][j] = gott.ColorText
		}
		parts[i] = string(runes)
	}
	text := strings.Join(parts, "\n")
	iterator, err := h.resolve(text).Tokenise(nil, text)
	if err != nil {
		return colors
	}
	row, col := 0, 0
	for token := iterator(); token != chroma.EOF; token = iterator() {
		color := tokenColor(token.Type)
		for _, c := range token.Value {
			if c == '\n' {
				row++
				col = 0
				continue
			}
			if color != gott.ColorText && row < len(colors) && col < len(colors[row]) {
				colors[row][col] = color
			}
			col++
		}
	}
	return colors
}

func tokenColor(t chroma.TokenType) gott.Color {
	switch {
	case t == chroma.NameBuiltin || t == chroma.NameBuiltinPseudo:
		return gott.ColorBuiltin
	case t.InCategory(chroma.Keyword):
		return gott.ColorKeyword
	case t.InSubCategory(chroma.LiteralString):
		return gott.ColorString
	case t.InSubCategory(chroma.LiteralNumber):
		return gott.ColorNumber
	case t.InCategory(chroma.Comment):
		return gott.ColorComment
	}
	return gott.ColorText
}
