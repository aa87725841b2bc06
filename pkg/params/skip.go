package params

import "sort"

// SkipSet lists leaf names excluded from generation.
type SkipSet map[string]struct{}

// NewSkipSet builds a set from names.
func NewSkipSet(names ...string) SkipSet {
	set := make(SkipSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// ResourceSkipSet is the skip set used when generating entity modules.
// Taxonomy references are handled by the base class.
func ResourceSkipSet() SkipSet {
	return NewSkipSet("location_id", "organization_id", "location_ids", "organization_ids")
}

// InfoSkipSet is the skip set used when generating info modules. Search and
// paging options come from the base class.
func InfoSkipSet() SkipSet {
	return NewSkipSet("location_id", "organization_id", "search", "order", "page", "per_page")
}

// Has reports whether name is skipped. A nil set skips nothing.
func (s SkipSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the sorted member names.
func (s SkipSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
