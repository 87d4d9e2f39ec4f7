// Package selection holds the set of book ids marked for batch actions.
// Selection is a global concept: it survives page, view, and filter changes
// and is only emptied by an explicit deselect, a completed deletion, or a
// full reset.
package selection

import (
	"sort"
	"strings"
)

// Set is a set of trimmed book ids. The zero value is not usable; call New.
type Set struct {
	ids map[string]struct{}
}

// New returns an empty selection.
func New() *Set {
	return &Set{ids: make(map[string]struct{})}
}

// Add inserts id after trimming. Blank ids are ignored.
func (s *Set) Add(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	s.ids[id] = struct{}{}
}

// Remove deletes id (trimmed) from the set.
func (s *Set) Remove(id string) {
	delete(s.ids, strings.TrimSpace(id))
}

// Toggle adds or removes id depending on checked.
func (s *Set) Toggle(id string, checked bool) {
	if checked {
		s.Add(id)
	} else {
		s.Remove(id)
	}
}

// SetAll applies checked to every given id. This is the select-all semantics:
// it touches only the ids passed in (the currently rendered rows), never the
// whole result set.
func (s *Set) SetAll(ids []string, checked bool) {
	for _, id := range ids {
		s.Toggle(id, checked)
	}
}

// RemoveAll removes exactly the given ids, leaving everything else selected.
func (s *Set) RemoveAll(ids []string) {
	for _, id := range ids {
		s.Remove(id)
	}
}

// Clear empties the set.
func (s *Set) Clear() {
	s.ids = make(map[string]struct{})
}

// Has reports whether id (trimmed) is selected.
func (s *Set) Has(id string) bool {
	_, ok := s.ids[strings.TrimSpace(id)]
	return ok
}

// Len returns the number of selected ids.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in sorted order.
func (s *Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
