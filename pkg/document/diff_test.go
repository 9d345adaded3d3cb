package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		old  *Document
		new  *Document
		want []Change
	}{
		{
			name: "initial load",
			old:  nil,
			new:  New(map[string]any{"foo": "bar"}),
			want: []Change{
				{Path: "foo", Kind: ChangeAdded, New: "bar"},
				{Path: "version", Kind: ChangeAdded, New: 1},
			},
		},
		{
			name: "no changes",
			old:  New(map[string]any{"foo": "bar", "list": []any{"a"}}),
			new:  New(map[string]any{"foo": "bar", "list": []any{"a"}}),
			want: nil,
		},
		{
			name: "nested modification and removal",
			old: New(map[string]any{
				"php":  map[string]any{"version": "8.1", "enabled": true},
				"gone": 1,
			}),
			new: New(map[string]any{
				"php":  map[string]any{"version": "8.2", "enabled": true},
				"list": []any{"x"},
			}),
			want: []Change{
				{Path: "gone", Kind: ChangeRemoved, Old: 1},
				{Path: "list", Kind: ChangeAdded, New: []any{"x"}},
				{Path: "php.version", Kind: ChangeModified, Old: "8.1", New: "8.2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Diff(tt.old, tt.new)); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
