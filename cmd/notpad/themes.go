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

	"github.com/spf13/cobra"

	"github.com/jakelongenecker93/notpad/config"
	"github.com/jakelongenecker93/notpad/syntax"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available color themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("notpad (built-in)")
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		for _, name := range syntax.ListThemes(filepath.Join(dir, "themes")) {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
