package document

// DefaultVersion is injected as "version" into documents that lack one.
const DefaultVersion = 1

// VersionKey is the top-level key holding the document schema version.
const VersionKey = "version"

// Document is a path-addressed configuration tree.
// It is not safe for concurrent use.
type Document struct {
	root map[string]any
}

// New builds a document from content, injecting the default version if absent.
// content is copied; later changes to it do not affect the document.
func New(content map[string]any) *Document {
	d := &Document{}
	d.SetAll(content)
	return d
}

// SetAll replaces the whole tree and re-applies the version default.
func (d *Document) SetAll(content map[string]any) {
	root, _ := Normalize(content).(map[string]any)
	if root == nil {
		root = map[string]any{}
	}
	if _, ok := root[VersionKey]; !ok {
		root[VersionKey] = DefaultVersion
	}
	d.root = root
}

// All returns a deep copy of the whole tree.
func (d *Document) All() map[string]any {
	return Normalize(d.root).(map[string]any)
}

// Clone returns an independent copy of the document.
func (d *Document) Clone() *Document {
	return &Document{root: d.All()}
}

// Get returns a copy of the value at path, or nil when any segment is missing.
func (d *Document) Get(path string) any {
	v, _ := d.Lookup(path)
	return v
}

// Lookup is like Get but also reports whether the path exists.
func (d *Document) Lookup(path string) (any, bool) {
	segs, err := ParsePath(path)
	if err != nil {
		return nil, false
	}
	var node any = d.root
	for _, s := range segs {
		next, ok := child(node, s)
		if !ok {
			return nil, false
		}
		node = next
	}
	return Normalize(node), true
}

// Has reports whether path exists. A trailing "[value]" segment reports
// whether the container at that position holds an element equal to value.
func (d *Document) Has(path string) bool {
	segs, err := ParsePath(path)
	if err != nil {
		return false
	}
	var node any = d.root
	for i, s := range segs {
		next, ok := child(node, s)
		if !ok {
			if i == len(segs)-1 && s.Kind == SegmentSearch {
				return search(node, s.Needle)
			}
			return false
		}
		node = next
	}
	return true
}

// Set stores value at path, creating intermediate mappings as needed.
// A trailing "[]" appends to the sequence at the parent position: a sequence
// value is merged in as an order-preserving union, a scalar is appended, and
// the result never holds the same value twice.
func (d *Document) Set(path string, value any) error {
	c := cursor{op: "set", path: path}
	segs, err := ParsePath(path)
	if err != nil {
		return &PathError{Op: c.op, Path: path, Err: err}
	}
	for i, s := range segs {
		if s.Kind == SegmentAppend && i != len(segs)-1 {
			return c.fail(s, ErrAppendNotLast)
		}
		if s.Kind == SegmentSearch {
			return c.fail(s, ErrSearchNotAllowed)
		}
	}
	root, err := c.set(d.root, segs, Normalize(value))
	if err != nil {
		return err
	}
	return d.replaceRoot(c, segs[0], root)
}

// Unset removes the entry at path. Sequence elements are spliced out so the
// sequence stays contiguous. A trailing "[value]" segment removes the element
// equal to value. Missing entries yield a *PathError wrapping ErrNotFound.
func (d *Document) Unset(path string) error {
	c := cursor{op: "unset", path: path}
	segs, err := ParsePath(path)
	if err != nil {
		return &PathError{Op: c.op, Path: path, Err: err}
	}
	root, err := c.unset(d.root, segs)
	if err != nil {
		return err
	}
	return d.replaceRoot(c, segs[0], root)
}

// replaceRoot installs a rewritten root. The root stays a mapping: an append
// at the top level would turn it into a sequence.
func (d *Document) replaceRoot(c cursor, first Segment, root any) error {
	m, ok := root.(map[string]any)
	if !ok {
		return c.fail(first, ErrNotSequence)
	}
	d.root = m
	return nil
}

func child(node any, s Segment) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[s.Raw]
		return v, ok
	case []any:
		if s.IsIndex() && s.Index < len(n) {
			return n[s.Index], true
		}
	}
	return nil, false
}

func search(node any, needle string) bool {
	switch n := node.(type) {
	case []any:
		return indexOf(n, needle) >= 0
	case map[string]any:
		_, ok := keyOf(n, needle)
		return ok
	}
	return false
}

// cursor carries the operation context while walking the tree. Each step
// receives the container at its position and returns the rewritten container.
type cursor struct {
	op   string
	path string
}

func (c cursor) fail(s Segment, err error) error {
	return &PathError{Op: c.op, Path: c.path, Segment: s.Raw, Err: err}
}

func (c cursor) set(node any, segs []Segment, value any) (any, error) {
	s := segs[0]
	if s.Kind == SegmentAppend {
		seq, err := c.sequence(node, s)
		if err != nil {
			return nil, err
		}
		if items, ok := value.([]any); ok {
			return Unique(append(seq, items...)), nil
		}
		return Unique(append(seq, value)), nil
	}

	switch n := node.(type) {
	case nil:
		if s.Index == 0 {
			return c.set([]any{}, segs, value)
		}
		return c.set(map[string]any{}, segs, value)
	case map[string]any:
		next := value
		if len(segs) > 1 {
			var err error
			if next, err = c.set(n[s.Raw], segs[1:], value); err != nil {
				return nil, err
			}
		}
		n[s.Raw] = next
		return n, nil
	case []any:
		if !s.IsIndex() {
			return nil, c.fail(s, ErrNotIndex)
		}
		if s.Index > len(n) {
			return nil, c.fail(s, ErrIndexOutOfRange)
		}
		var current any
		if s.Index < len(n) {
			current = n[s.Index]
		}
		next := value
		if len(segs) > 1 {
			var err error
			if next, err = c.set(current, segs[1:], value); err != nil {
				return nil, err
			}
		}
		if s.Index == len(n) {
			return append(n, next), nil
		}
		n[s.Index] = next
		return n, nil
	}
	return nil, c.fail(s, ErrNotContainer)
}

func (c cursor) sequence(node any, s Segment) ([]any, error) {
	switch n := node.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return n, nil
	case map[string]any:
		if len(n) == 0 {
			return []any{}, nil
		}
		return nil, c.fail(s, ErrNotSequence)
	}
	return nil, c.fail(s, ErrNotContainer)
}

func (c cursor) unset(node any, segs []Segment) (any, error) {
	s := segs[0]
	last := len(segs) == 1

	switch n := node.(type) {
	case map[string]any:
		current, ok := n[s.Raw]
		if last {
			if ok {
				delete(n, s.Raw)
				return n, nil
			}
			if s.Kind == SegmentSearch {
				if k, found := keyOf(n, s.Needle); found {
					delete(n, k)
					return n, nil
				}
			}
			return nil, c.fail(s, ErrNotFound)
		}
		if !ok {
			return nil, c.fail(s, ErrNotFound)
		}
		next, err := c.unset(current, segs[1:])
		if err != nil {
			return nil, err
		}
		n[s.Raw] = next
		return n, nil
	case []any:
		if s.IsIndex() && s.Index < len(n) {
			if last {
				return splice(n, s.Index), nil
			}
			next, err := c.unset(n[s.Index], segs[1:])
			if err != nil {
				return nil, err
			}
			n[s.Index] = next
			return n, nil
		}
		if last && s.Kind == SegmentSearch {
			if i := indexOf(n, s.Needle); i >= 0 {
				return splice(n, i), nil
			}
		}
		return nil, c.fail(s, ErrNotFound)
	case nil:
		return nil, c.fail(s, ErrNotFound)
	}
	return nil, c.fail(s, ErrNotContainer)
}
