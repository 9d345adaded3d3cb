package condition

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/quickstart/pkg/document"
)

// Eval computes the value of an expression tree.
func Eval(n Node) (any, error) {
	switch n := n.(type) {
	case Literal:
		return n.Value, nil
	case List:
		out := make([]any, 0, len(n.Items))
		for _, item := range n.Items {
			v, err := Eval(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case Map:
		out := make(map[string]any, len(n.Keys))
		for i := range n.Keys {
			k, err := Eval(n.Keys[i])
			if err != nil {
				return nil, err
			}
			v, err := Eval(n.Values[i])
			if err != nil {
				return nil, err
			}
			out[document.Text(k)] = v
		}
		return out, nil
	case Not:
		v, err := Eval(n.X)
		if err != nil {
			return nil, err
		}
		return !Truthy(v), nil
	case Binary:
		return evalBinary(n)
	case Call:
		return evalCall(n)
	}
	return nil, fmt.Errorf("%w: unsupported node %T", ErrTypeMismatch, n)
}

func evalBinary(n Binary) (any, error) {
	left, err := Eval(n.Left)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "&&":
		if !Truthy(left) {
			return false, nil
		}
		right, err := Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return Truthy(right), nil
	case "||":
		if Truthy(left) {
			return true, nil
		}
		right, err := Eval(n.Right)
		if err != nil {
			return nil, err
		}
		return Truthy(right), nil
	}

	right, err := Eval(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "===":
		return Identical(left, right), nil
	case "!==":
		return !Identical(left, right), nil
	case "==":
		return LooseEqual(left, right), nil
	case "!=":
		return !LooseEqual(left, right), nil
	}

	cmp, err := compare(left, right)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.Op, err)
	}
	switch n.Op {
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	}
	return nil, fmt.Errorf("%w: unknown operator %s", ErrTypeMismatch, n.Op)
}

func evalCall(n Call) (any, error) {
	args := make([]any, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := Eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch n.Name {
	case "in_array":
		if len(args) < 2 || len(args) > 3 {
			return nil, fmt.Errorf("%w: in_array expects 2 or 3 arguments, got %d", ErrTypeMismatch, len(args))
		}
		strict := len(args) == 3 && Truthy(args[2])
		return inArray(args[0], args[1], strict)
	case "empty":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: empty expects 1 argument, got %d", ErrTypeMismatch, len(args))
		}
		return !Truthy(args[0]), nil
	case "count":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: count expects 1 argument, got %d", ErrTypeMismatch, len(args))
		}
		switch v := args[0].(type) {
		case []any:
			return len(v), nil
		case map[string]any:
			return len(v), nil
		case nil:
			return 0, nil
		}
		return nil, fmt.Errorf("%w: count of %T", ErrTypeMismatch, args[0])
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, n.Name)
}

func inArray(needle, haystack any, strict bool) (bool, error) {
	eq := LooseEqual
	if strict {
		eq = Identical
	}
	switch h := haystack.(type) {
	case nil:
		return false, nil
	case []any:
		for _, v := range h {
			if eq(needle, v) {
				return true, nil
			}
		}
		return false, nil
	case map[string]any:
		for _, v := range h {
			if eq(needle, v) {
				return true, nil
			}
		}
		return false, nil
	}
	return false, fmt.Errorf("%w: in_array haystack is %T", ErrTypeMismatch, haystack)
}

// Truthy reports the boolean interpretation of a value: false, null, 0, "",
// "0" and empty lists or maps are false, everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != "" && t != "0"
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// Identical compares values of the same kind. Integers and floats compare numerically.
func Identical(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case int, float64:
		xf, _ := number(a)
		switch b.(type) {
		case int, float64:
			yf, _ := number(b)
			return xf == yf
		}
		return false
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Identical(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			w, ok := y[k]
			if !ok || !Identical(v, w) {
				return false
			}
		}
		return true
	}
	return false
}

// LooseEqual compares with type juggling: null and booleans compare by
// truthiness, numbers and numeric strings numerically, other scalars by text.
func LooseEqual(a, b any) bool {
	switch a.(type) {
	case nil, bool:
		return Truthy(a) == Truthy(b)
	}
	switch b.(type) {
	case nil, bool:
		return Truthy(a) == Truthy(b)
	}

	switch x := a.(type) {
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !LooseEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			w, ok := y[k]
			if !ok || !LooseEqual(v, w) {
				return false
			}
		}
		return true
	}
	switch b.(type) {
	case []any, map[string]any:
		return false
	}

	xf, xok := number(a)
	yf, yok := number(b)
	if xok && yok {
		return xf == yf
	}
	return document.Text(a) == document.Text(b)
}

func compare(a, b any) (int, error) {
	xf, xok := number(a)
	yf, yok := number(b)
	if xok && yok {
		switch {
		case xf < yf:
			return -1, nil
		case xf > yf:
			return 1, nil
		}
		return 0, nil
	}
	xs, xstr := a.(string)
	ys, ystr := b.(string)
	if xstr && ystr {
		return strings.Compare(xs, ys), nil
	}
	return 0, fmt.Errorf("%w: cannot order %T and %T", ErrTypeMismatch, a, b)
}

// number converts ints, floats and numeric strings.
func number(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
