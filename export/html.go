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
package export

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
)

// HTML writes the buffer as a standalone page with one span per
// colored run inside a pre block.
func HTML(path string, b gott.Buffer, theme *syntax.Theme) error {
	var s strings.Builder
	s.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&s, "<title>%s</title>\n", html.EscapeString(b.GetName()))
	s.WriteString("</head>\n<body>\n<pre style=\"font-family: monospace; font-size: 10pt;\">\n")
	for _, line := range Runs(b) {
		for _, run := range line {
			if run.Color == gott.ColorText {
				s.WriteString(html.EscapeString(run.Text))
				continue
			}
			fmt.Fprintf(&s, `<span style="color:%s">%s</span>`,
				theme.HexFor(run.Color), html.EscapeString(run.Text))
		}
		s.WriteByte('\n')
	}
	s.WriteString("</pre>\n</body>\n</html>\n")
	return os.WriteFile(path, []byte(s.String()), 0644)
}
