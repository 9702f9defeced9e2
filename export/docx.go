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
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>
`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

// DOCX writes the buffer as a minimal OOXML package: one paragraph
// per line in 10pt Consolas with single spacing, one colored run per
// color run.
func DOCX(path string, b gott.Buffer, theme *syntax.Theme) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := zip.NewWriter(f)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", docxDocument(b, theme)},
	}
	for _, part := range parts {
		entry, err := w.Create(part.name)
		if err != nil {
			w.Close()
			f.Close()
			return err
		}
		if _, err := entry.Write([]byte(part.body)); err != nil {
			w.Close()
			f.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func docxDocument(b gott.Buffer, theme *syntax.Theme) string {
	var s strings.Builder
	s.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	s.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n")
	s.WriteString("<w:body>\n")
	for _, line := range Runs(b) {
		s.WriteString(`<w:p><w:pPr><w:spacing w:before="0" w:after="0" w:line="240" w:lineRule="auto"/></w:pPr>`)
		for _, run := range line {
			s.WriteString(`<w:r><w:rPr><w:rFonts w:ascii="Consolas" w:hAnsi="Consolas"/><w:sz w:val="20"/>`)
			if run.Color != gott.ColorText {
				hex := theme.HexFor(run.Color)
				if len(hex) == 7 {
					fmt.Fprintf(&s, `<w:color w:val="%s"/>`, strings.ToUpper(hex[1:]))
				}
			}
			s.WriteString(`</w:rPr><w:t xml:space="preserve">`)
			s.WriteString(escapeXML(run.Text))
			s.WriteString(`</w:t></w:r>`)
		}
		s.WriteString("</w:p>\n")
	}
	s.WriteString("</w:body>\n</w:document>\n")
	return s.String()
}

func escapeXML(text string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(text))
	return buf.String()
}
