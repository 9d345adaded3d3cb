package document

import (
	"strconv"
	"strings"
)

// SegmentKind classifies a single path segment.
type SegmentKind int

const (
	// SegmentKey is a mapping key, or a sequence index when numeric.
	SegmentKey SegmentKind = iota
	// SegmentAppend is the "[]" marker.
	SegmentAppend
	// SegmentSearch is the "[value]" marker.
	SegmentSearch
)

// Segment is one parsed element of a path.
type Segment struct {
	Kind SegmentKind
	// Raw is the segment as written. Mapping lookups always use it.
	Raw string
	// Index is the sequence index for numeric key segments, -1 otherwise.
	Index int
	// Needle is the value between the brackets of a search segment.
	Needle string
}

// IsIndex reports whether the segment can address a sequence element.
func (s Segment) IsIndex() bool {
	return s.Kind == SegmentKey && s.Index >= 0
}

// ParsePath splits a dotted path into segments.
func ParsePath(path string) ([]Segment, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	parts := strings.Split(path, ".")
	segs := make([]Segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, ErrInvalidPath
		}
		segs = append(segs, parseSegment(p))
	}
	return segs, nil
}

func parseSegment(p string) Segment {
	if p == "[]" {
		return Segment{Kind: SegmentAppend, Raw: p, Index: -1}
	}
	if len(p) > 2 && strings.HasPrefix(p, "[") && strings.HasSuffix(p, "]") {
		return Segment{Kind: SegmentSearch, Raw: p, Index: -1, Needle: p[1 : len(p)-1]}
	}
	if n, err := strconv.Atoi(p); err == nil && n >= 0 && strconv.Itoa(n) == p {
		return Segment{Kind: SegmentKey, Raw: p, Index: n}
	}
	return Segment{Kind: SegmentKey, Raw: p, Index: -1}
}
