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
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jakelongenecker93/notpad/commander"
	"github.com/jakelongenecker93/notpad/config"
	"github.com/jakelongenecker93/notpad/editor"
	"github.com/jakelongenecker93/notpad/screen"
	"github.com/jakelongenecker93/notpad/state"
	"github.com/jakelongenecker93/notpad/syntax"
	"github.com/jakelongenecker93/notpad/watch"
)

var (
	configPath string
	themeName  string
	verbose    bool
	readOnly   bool
	evalScript string
)

var rootCmd = &cobra.Command{
	Use:   "notpad [files]",
	Short: "A lightweight text editor with Python syntax highlighting",
	Long: `notpad is a terminal text editor with Python syntax highlighting,
indentation helpers, search and replace, and colored exports to
PDF, DOCX, and HTML.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
	RunE: runEditor,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&readOnly, "readonly", false, "Open files read-only")
	rootCmd.Flags().StringVar(&evalScript, "eval", "", "Run a lisp script against the files and exit")
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	syntax.SetFileTypes(cfg.Languages())
	theme := resolveTheme(cfg)

	e := editor.NewEditor()
	c := commander.NewCommander(e, cfg, theme)

	if cfg.State.Enabled {
		if store := openStore(); store != nil {
			c.SetStore(store)
			defer store.Close()
		}
	}

	// a script runs against the loaded buffers without a screen
	if evalScript != "" {
		for _, path := range args {
			c.OpenPath(path)
		}
		if len(args) > 1 {
			e.SelectBuffer(0)
		}
		result, err := c.EvalFile(evalScript)
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", evalScript, err)
		}
		if result != "" {
			fmt.Println(result)
		}
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("notpad requires a terminal (use --eval or a subcommand for scripted use)")
	}

	// the terminal belongs to termbox from here on; logs go to a file
	closeLog := logToFile()
	defer closeLog()

	s := screen.NewScreen()
	if s == nil {
		return fmt.Errorf("unable to initialize the screen")
	}
	defer s.Close()

	if cfg.Watch.Enabled {
		debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		w, err := watch.New(debounce, s.Interrupt)
		if err != nil {
			slog.Warn("file watching disabled", "error", err)
		} else {
			c.SetWatcher(w)
		}
	}

	for _, path := range args {
		c.OpenPath(path)
	}
	if len(args) > 1 {
		e.SelectBuffer(0)
	}
	if readOnly {
		e.SetReadOnly(true)
	}

	if dir, err := config.Dir(); err == nil {
		if err := c.LoadInitFile(filepath.Join(dir, "init.lisp")); err != nil {
			slog.Warn("init script failed", "error", err)
		}
	}

	for c.IsRunning() {
		s.Render(e, c)
		event := s.GetNextEvent()
		if err := c.ProcessEvent(event); err != nil {
			slog.Error("event handling failed", "error", err)
		}
	}
	c.Shutdown()
	return nil
}

// resolveTheme picks the --theme flag over the configured theme and
// falls back to the built-in palette when the named theme is missing.
func resolveTheme(cfg *config.Config) *syntax.Theme {
	name := themeName
	if name == "" {
		name = cfg.Theme
	}
	if name == "" || name == "notpad" {
		return syntax.DefaultTheme()
	}
	dir, err := config.Dir()
	if err == nil {
		if theme, err := syntax.FindTheme(filepath.Join(dir, "themes"), name); err == nil {
			return theme
		}
	}
	slog.Warn("theme not found, using default", "theme", name)
	return syntax.DefaultTheme()
}

func openStore() *state.Store {
	dir, err := config.Dir()
	if err != nil {
		slog.Warn("session state disabled", "error", err)
		return nil
	}
	store, err := state.Open(filepath.Join(dir, "state.db"))
	if err != nil {
		slog.Warn("session state disabled", "error", err)
		return nil
	}
	return store
}

// logToFile sends slog and the standard logger to ~/.notpad/notpad.log
// and returns a cleanup function.
func logToFile() func() {
	dir, err := config.Dir()
	if err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "notpad.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return func() {}
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	})))
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}
