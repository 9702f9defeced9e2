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
package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakelongenecker93/notpad/config"
	"github.com/jakelongenecker93/notpad/editor"
	"github.com/jakelongenecker93/notpad/export"
	"github.com/jakelongenecker93/notpad/syntax"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write a syntax-colored copy of a file to PDF, DOCX, or HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		syntax.SetFileTypes(cfg.Languages())
		theme := resolveTheme(cfg)

		e := editor.NewEditor()
		if err := e.ReadFile(args[0]); err != nil {
			return err
		}
		out := exportOutput
		if out == "" {
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "." + exportFormat
		}
		if err := export.File(exportFormat, out, e.GetBuffer(), theme); err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf, docx, or html")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (default: input with the format's extension)")
	rootCmd.AddCommand(exportCmd)
}
