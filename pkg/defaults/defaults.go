// Package defaults evaluates dynamic default values of questions.
//
// A question flagged with defaultEval carries an expression instead of a literal
// default. Expressions use the expr language (github.com/expr-lang/expr) with a
// fixed set of functions; document values are referenced with #path# placeholders,
// which are rewritten to lookup("path") calls before compilation:
//
//	basename(cwd())
//	#project.name# + '-dev'
//	upper(env('USER'))
package defaults

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/aretw0/quickstart/pkg/document"
)

// Reader is the read-only document view available to expressions.
type Reader interface {
	Get(path string) any
	Has(path string) bool
}

// Evaluator compiles and runs default expressions.
type Evaluator struct {
	getenv  func(string) string
	workDir string
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithEnv replaces the environment lookup used by env().
func WithEnv(getenv func(string) string) Option {
	return func(e *Evaluator) {
		e.getenv = getenv
	}
}

// WithWorkDir sets the directory returned by cwd().
func WithWorkDir(dir string) Option {
	return func(e *Evaluator) {
		e.workDir = dir
	}
}

// New creates an evaluator reading the process environment and working directory.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{getenv: os.Getenv}
	for _, opt := range opts {
		opt(e)
	}
	if e.workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			e.workDir = wd
		}
	}
	return e
}

var placeholderRe = regexp.MustCompile(`#([^#\s]+)#`)

// Rewrite turns #path# placeholders into lookup("path") calls.
func Rewrite(expression string) string {
	return placeholderRe.ReplaceAllStringFunc(expression, func(m string) string {
		return "lookup(" + strconv.Quote(m[1:len(m)-1]) + ")"
	})
}

// Evaluate runs expression against doc and returns its value in document shape.
func (e *Evaluator) Evaluate(expression string, doc Reader) (any, error) {
	env := map[string]any{}
	program, err := expr.Compile(Rewrite(expression), append([]expr.Option{expr.Env(env)}, e.functions(doc)...)...)
	if err != nil {
		return nil, fmt.Errorf("compile default %q: %w", expression, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("evaluate default %q: %w", expression, err)
	}
	return document.Normalize(out), nil
}

func (e *Evaluator) functions(doc Reader) []expr.Option {
	return []expr.Option{
		expr.Function("lookup", func(params ...any) (any, error) {
			return doc.Get(params[0].(string)), nil
		},
			new(func(string) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			return doc.Has(params[0].(string)), nil
		},
			new(func(string) bool)),
		expr.Function("env", func(params ...any) (any, error) {
			return e.getenv(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("cwd", func(params ...any) (any, error) {
			return e.workDir, nil
		},
			new(func() string)),
		expr.Function("basename", func(params ...any) (any, error) {
			return filepath.Base(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
