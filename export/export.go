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

// Package export writes a highlighted buffer to PDF, DOCX, or HTML.
// Each writer works from the same per-line color runs; search marks
// and selections are not exported, only syntax colors.
package export

import (
	"fmt"
	"strconv"

	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
)

// A Run is a stretch of characters on one line sharing a color class.
type Run struct {
	Text  string
	Color gott.Color
}

// Runs groups each row into color runs, refreshing highlighting first.
// With highlighting off every line is a single plain run.
func Runs(b gott.Buffer) [][]Run {
	b.EnsureHighlighted()
	lines := make([][]Run, b.GetRowCount())
	for i := range lines {
		text := b.GetRowText(i)
		colors := b.GetRowColors(i)
		var runs []Run
		start := 0
		for j := 1; j <= len(text); j++ {
			if j == len(text) || colorAt(colors, j) != colorAt(colors, start) {
				runs = append(runs, Run{
					Text:  string(text[start:j]),
					Color: colorAt(colors, start),
				})
				start = j
			}
		}
		lines[i] = runs
	}
	return lines
}

func colorAt(colors []gott.Color, i int) gott.Color {
	if i < 0 || i >= len(colors) {
		return gott.ColorText
	}
	return colors[i]
}

// File writes buffer b to path in the named format (pdf, docx, html).
func File(format string, path string, b gott.Buffer, theme *syntax.Theme) error {
	switch format {
	case "pdf":
		return PDF(path, b, theme)
	case "docx":
		return DOCX(path, b, theme)
	case "html":
		return HTML(path, b, theme)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// rgb splits a #rrggbb hex color into channels; anything else is black.
func rgb(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(r), int(g), int(b)
}
