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
package commander

import (
	"errors"
	"os"
	"sync"

	"github.com/steelseries/golisp"

	"github.com/jakelongenecker93/notpad/operations"
	gott "github.com/jakelongenecker93/notpad/types"
)

// The lisp runtime is a single global interpreter, so the primitives
// route through a package variable naming the commander they act on.
var (
	lispCommander *Commander
	lispOnce      sync.Once
)

func bindLispPrimitives(c *Commander) {
	lispCommander = c
	golisp.Global.BindTo(
		golisp.SymbolWithName("indent-width"),
		golisp.IntegerWithValue(int64(c.config.IndentWidth)))
	lispOnce.Do(func() {
		golisp.MakePrimitiveFunction("text", "0", lispTextImpl)
		golisp.MakePrimitiveFunction("set-text", "1", lispSetTextImpl)
		golisp.MakePrimitiveFunction("insert", "1", lispInsertImpl)
		golisp.MakePrimitiveFunction("goto", "1", lispGotoImpl)
		golisp.MakePrimitiveFunction("find", "1", lispFindImpl)
		golisp.MakePrimitiveFunction("replace-all", "2", lispReplaceAllImpl)
		golisp.MakePrimitiveFunction("indent", "1", lispIndentImpl)
		golisp.MakePrimitiveFunction("save", "0", lispSaveImpl)
		golisp.MakePrimitiveFunction("open", "1", lispOpenImpl)
		golisp.MakePrimitiveFunction("buffer-name", "0", lispBufferNameImpl)
		golisp.MakePrimitiveFunction("line-count", "0", lispLineCountImpl)
	})
}

// ParseEval evaluates a lisp expression and describes its value.
func (c *Commander) ParseEval(command string) string {
	lispCommander = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return err.Error()
	}
	return golisp.String(value)
}

// LoadInitFile runs the startup script at path if one exists.
func (c *Commander) LoadInitFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	lispCommander = c
	_, err := golisp.ProcessFile(path)
	return err
}

// EvalFile runs a lisp script and describes its final value.
func (c *Commander) EvalFile(path string) (string, error) {
	lispCommander = c
	value, err := golisp.ProcessFile(path)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

func lispTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(string(lispCommander.editor.Bytes())), nil
}

func lispSetTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("set-text requires a string argument")
	}
	c := lispCommander
	c.endInsert()
	c.editor.Perform(&operations.RestoreBuffer{Text: golisp.StringValue(val)}, 1)
	return nil, nil
}

func lispInsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	c := lispCommander
	c.endInsert()
	c.editor.Perform(&operations.Insert{
		Position: gott.InsertAtCursor,
		Text:     golisp.StringValue(val),
	}, 1)
	return nil, nil
}

func lispGotoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("goto requires a line number")
	}
	c := lispCommander
	c.endInsert()
	c.editor.MoveToLine(int(golisp.IntegerValue(val)) - 1)
	return nil, nil
}

// lispFindImpl returns the 1-based line of the match, or 0.
func lispFindImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("find requires a string argument")
	}
	e := lispCommander.editor
	if !e.Find(golisp.StringValue(val)) {
		return golisp.IntegerWithValue(0), nil
	}
	return golisp.IntegerWithValue(int64(e.GetCursor().Row + 1)), nil
}

func lispReplaceAllImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	find := golisp.Car(args)
	replace := golisp.Cadr(args)
	if !golisp.StringP(find) || !golisp.StringP(replace) {
		return nil, errors.New("replace-all requires two string arguments")
	}
	c := lispCommander
	c.endInsert()
	n := c.editor.ReplaceAll(golisp.StringValue(find), golisp.StringValue(replace))
	return golisp.IntegerWithValue(int64(n)), nil
}

// lispIndentImpl shifts the selected lines, or the cursor line, right
// by the given number of spaces.
func lispIndentImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("indent requires a width")
	}
	c := lispCommander
	e := c.editor
	first := e.GetCursor().Row
	last := first
	if from, to, ok := e.GetSelection(); ok {
		first, last = from.Row, to.Row
	}
	c.endInsert()
	e.Perform(&operations.IndentLines{
		First: first,
		Last:  last,
		Width: int(golisp.IntegerValue(val)),
	}, 1)
	return nil, nil
}

func lispSaveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c := lispCommander
	name := c.editor.GetBuffer().GetFileName()
	if name == "" {
		return nil, errors.New("buffer has no file name")
	}
	c.writeFile(name)
	return nil, nil
}

func lispOpenImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("open requires a path")
	}
	lispCommander.OpenPath(golisp.StringValue(val))
	return nil, nil
}

func lispBufferNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(lispCommander.editor.GetBuffer().GetName()), nil
}

func lispLineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	n := lispCommander.editor.GetBuffer().GetRowCount()
	return golisp.IntegerWithValue(int64(n)), nil
}
