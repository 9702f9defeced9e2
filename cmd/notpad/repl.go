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
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jakelongenecker93/notpad/commander"
	"github.com/jakelongenecker93/notpad/config"
	"github.com/jakelongenecker93/notpad/editor"
	"github.com/jakelongenecker93/notpad/syntax"
)

var replCmd = &cobra.Command{
	Use:   "repl [files]",
	Short: "Edit buffers from an interactive lisp session",
	Long: `repl opens the listed files and reads lisp expressions from the
terminal, one per line. The expressions run against the current buffer:
(text), (set-text "..."), (insert "..."), (goto n), (find "..."),
(replace-all "..." "..."), (indent n), (save), (open "path"),
(buffer-name), (line-count).`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		syntax.SetFileTypes(cfg.Languages())

		e := editor.NewEditor()
		c := commander.NewCommander(e, cfg, resolveTheme(cfg))
		for _, path := range args {
			c.OpenPath(path)
		}
		if len(args) > 1 {
			e.SelectBuffer(0)
		}

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		historyFile := ""
		if dir, err := config.Dir(); err == nil {
			historyFile = filepath.Join(dir, "repl_history")
			if f, err := os.Open(historyFile); err == nil {
				line.ReadHistory(f)
				f.Close()
			}
		}

		for {
			input, err := line.Prompt("> ")
			if err != nil {
				break
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			if input == "quit" || input == "exit" {
				break
			}
			line.AppendHistory(input)
			fmt.Println(c.ParseEval(input))
		}

		if historyFile != "" {
			if f, err := os.Create(historyFile); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
