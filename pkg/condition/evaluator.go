package condition

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Reader is the read-only view of a document a condition is evaluated against.
type Reader interface {
	Get(path string) any
}

var placeholderRe = regexp.MustCompile(`#([^#\s]+)#`)

// Evaluator evaluates conditions and caches parsed expressions.
// It is safe for concurrent use.
type Evaluator struct {
	mu    sync.Mutex
	cache map[string]Node
}

// NewEvaluator creates an evaluator with an empty parse cache.
func NewEvaluator() *Evaluator {
	return &Evaluator{cache: make(map[string]Node)}
}

// Evaluate substitutes the placeholders in cond with values from doc and
// reports the truthiness of the resulting expression.
func (e *Evaluator) Evaluate(cond string, doc Reader) (bool, error) {
	expr := Substitute(cond, doc)
	n, err := e.parse(expr)
	if err != nil {
		return false, fmt.Errorf("condition %q: %w", cond, err)
	}
	v, err := Eval(n)
	if err != nil {
		return false, fmt.Errorf("condition %q: %w", cond, err)
	}
	return Truthy(v), nil
}

func (e *Evaluator) parse(expr string) (Node, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n, ok := e.cache[expr]; ok {
		return n, nil
	}
	n, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	if e.cache == nil {
		e.cache = make(map[string]Node)
	}
	e.cache[expr] = n
	return n, nil
}

var defaultEvaluator = NewEvaluator()

// Evaluate uses a shared Evaluator.
func Evaluate(cond string, doc Reader) (bool, error) {
	return defaultEvaluator.Evaluate(cond, doc)
}

// Substitute replaces every #path# placeholder with the literal of doc.Get(path).
func Substitute(cond string, doc Reader) string {
	return placeholderRe.ReplaceAllStringFunc(cond, func(m string) string {
		return Quote(doc.Get(m[1 : len(m)-1]))
	})
}

// Placeholders lists the paths referenced by cond in order of appearance.
func Placeholders(cond string) []string {
	var paths []string
	for _, m := range placeholderRe.FindAllStringSubmatch(cond, -1) {
		paths = append(paths, m[1])
	}
	return paths
}

// Quote renders a document value as an expression literal.
func Quote(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
		return "'" + r.Replace(t) + "'"
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = Quote(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = Quote(k) + ": " + Quote(t[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return Quote(fmt.Sprint(v))
}
