package document

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	got := Normalize(map[any]any{
		"ints":    []int{1, 2},
		"nested":  map[string]string{"k": "v"},
		"int64":   int64(7),
		"float32": float32(1.5),
		3:         "numeric key",
	})

	assert.Equal(t, map[string]any{
		"ints":    []any{1, 2},
		"nested":  map[string]any{"k": "v"},
		"int64":   7,
		"float32": 1.5,
		"3":       "numeric key",
	}, got)
}

func TestNormalize_UnsignedOverflow(t *testing.T) {
	assert.Equal(t, 42, Normalize(uint64(42)))
	assert.Equal(t, math.MaxInt, Normalize(uint64(math.MaxInt)))
	assert.Equal(t, float64(math.MaxUint64), Normalize(uint64(math.MaxUint64)))
	assert.Equal(t, []any{float64(uint64(math.MaxInt) + 1)}, Normalize([]uint{uint(math.MaxInt) + 1}))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("1", 1))
	assert.True(t, Equal(1.0, 1))
	assert.True(t, Equal(true, "1"))
	assert.True(t, Equal([]string{"a"}, []any{"a"}))
	assert.True(t, Equal(map[string]any{"a": 1}, map[string]int{"a": 1}))

	assert.False(t, Equal("a", "b"))
	assert.False(t, Equal([]any{"a"}, "a"))
	assert.False(t, Equal([]any{"a"}, []any{"a", "b"}))
	assert.False(t, Equal(map[string]any{"a": 1}, map[string]any{"b": 1}))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []any{"a", "b", 3}, Unique([]any{"a", "b", "a", 3, "3"}))
	assert.Equal(t, []any{}, Unique(nil))
}

func TestParsePath(t *testing.T) {
	segs, err := ParsePath("a.0.[].[x].01")
	assert.NoError(t, err)
	assert.Equal(t, []Segment{
		{Kind: SegmentKey, Raw: "a", Index: -1},
		{Kind: SegmentKey, Raw: "0", Index: 0},
		{Kind: SegmentAppend, Raw: "[]", Index: -1},
		{Kind: SegmentSearch, Raw: "[x]", Index: -1, Needle: "x"},
		{Kind: SegmentKey, Raw: "01", Index: -1},
	}, segs)
}
