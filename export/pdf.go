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
	"github.com/go-pdf/fpdf"

	"github.com/jakelongenecker93/notpad/syntax"
	gott "github.com/jakelongenecker93/notpad/types"
)

const (
	pdfMargin     = 40.0
	pdfFontSize   = 10.0
	pdfLineHeight = 12.0
)

// PDF writes the buffer to a Letter-size PDF in 10pt Courier, one
// text line per buffer line, colored per run.
func PDF(path string, b gott.Buffer, theme *syntax.Theme) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()
	pdf.SetFont("Courier", "", pdfFontSize)
	_, pageHeight := pdf.GetPageSize()

	y := pdfMargin
	for _, line := range Runs(b) {
		if y > pageHeight-pdfMargin {
			pdf.AddPage()
			y = pdfMargin
		}
		x := pdfMargin
		for _, run := range line {
			r, g, bl := rgb(theme.HexFor(run.Color))
			pdf.SetTextColor(r, g, bl)
			pdf.Text(x, y, run.Text)
			x += pdf.GetStringWidth(run.Text)
		}
		y += pdfLineHeight
	}
	return pdf.OutputFileAndClose(path)
}
