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

// Package syntax colors lines of source code for display and export.
// The native engine covers Python with hand-tuned patterns; everything
// else falls through to a chroma lexer when one exists.
package syntax

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	gott "github.com/jakelongenecker93/notpad/types"
)

// Highlight engine names, as they appear in configuration.
const (
	EngineAuto   = "auto"
	EngineNative = "native"
	EngineChroma = "chroma"
)

// A Highlighter colors lines of text. Row i of the result holds one
// color per rune of lines[i].
type Highlighter interface {
	Highlight(lines [][]rune) [][]gott.Color
}

// For returns a highlighter for a language, or nil when the language
// has no support under the selected engine.
func For(language string, engine string) Highlighter {
	if language == "" {
		return nil
	}
	switch engine {
	case EngineNative:
		if language == "python" {
			return NewPythonHighlighter()
		}
		return nil
	case EngineChroma:
		if h := NewChromaHighlighter(language); h != nil {
			return h
		}
		return nil
	default:
		if language == "python" {
			return NewPythonHighlighter()
		}
		if h := NewChromaHighlighter(language); h != nil {
			return h
		}
		return nil
	}
}

// ForFile returns a highlighter for a named file. A detected language
// picks its engine through For; anything else falls back to a chroma
// lexer matched on the file itself, except under the native engine,
// which only knows Python.
func ForFile(name string, language string, engine string) Highlighter {
	if language != "" {
		return For(language, engine)
	}
	if engine == EngineNative || name == "" {
		return nil
	}
	return NewChromaFileHighlighter(name)
}

var fileTypes = map[string][]string{
	"python": {"*.py", "*.pyw"},
	"go":     {"*.go"},
}

// SetFileTypes merges configured filename patterns into the language
// detection table.
func SetFileTypes(types map[string][]string) {
	for language, patterns := range types {
		fileTypes[language] = patterns
	}
}

// DetectLanguage returns the language for a file name, or "" when no
// pattern matches. Patterns containing a path separator match against
// the whole path; others match the base name.
func DetectLanguage(name string) string {
	if name == "" {
		return ""
	}
	base := filepath.Base(name)
	for language, patterns := range fileTypes {
		for _, pattern := range patterns {
			target := base
			if strings.Contains(pattern, "/") {
				target = filepath.ToSlash(name)
			}
			if ok, err := doublestar.Match(pattern, target); err == nil && ok {
				return language
			}
		}
	}
	return ""
}
