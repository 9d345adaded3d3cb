package document

import (
	"sort"
)

// ChangeKind classifies an entry of a Diff.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// Change is one leaf-level difference between two documents.
// Mappings are descended into; sequences and scalars compare as whole values.
type Change struct {
	Path string     `json:"path"`
	Kind ChangeKind `json:"kind"`
	Old  any        `json:"old,omitempty"`
	New  any        `json:"new,omitempty"`
}

// Diff lists the changes that turn old into new, sorted by path.
// A nil old document yields every leaf of new as added.
func Diff(old, new *Document) []Change {
	var before, after map[string]any
	if old != nil {
		before = old.root
	}
	if new != nil {
		after = new.root
	}
	changes := diffMaps("", before, after)
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes
}

func diffMaps(prefix string, old, new map[string]any) []Change {
	var changes []Change

	// Added or modified
	for k, newVal := range new {
		path := join(prefix, k)
		oldVal, exists := old[k]
		if !exists {
			changes = append(changes, Change{Path: path, Kind: ChangeAdded, New: Normalize(newVal)})
			continue
		}
		oldMap, oldIsMap := oldVal.(map[string]any)
		newMap, newIsMap := newVal.(map[string]any)
		if oldIsMap && newIsMap {
			changes = append(changes, diffMaps(path, oldMap, newMap)...)
			continue
		}
		if !equal(oldVal, newVal) {
			changes = append(changes, Change{Path: path, Kind: ChangeModified, Old: Normalize(oldVal), New: Normalize(newVal)})
		}
	}

	// Removed
	for k, oldVal := range old {
		if _, exists := new[k]; !exists {
			changes = append(changes, Change{Path: join(prefix, k), Kind: ChangeRemoved, Old: Normalize(oldVal)})
		}
	}
	return changes
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
