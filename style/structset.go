package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// StructSet records which style-struct categories (property groups) of a
// computed style have been materialized by the resolution engine.
//
// The set is deliberately opaque: clients mark and test single categories,
// or copy a set wholesale from a style resolved against an equivalent rule
// set (see styctx.Context.ResolveSameStructsAs). The zero value is an empty
// set and ready to use.
type StructSet struct {
	resolved map[string]bool
}

// Mark records a style-struct category as resolved. Category names are the
// property group names listed in Groups; unknown names panic, since they
// indicate a category added without updating the group list.
func (s *StructSet) Mark(category string) {
	if !isGroupName(category) {
		panic("stycache: unknown style-struct category: " + category)
	}
	if s.resolved == nil {
		s.resolved = make(map[string]bool, len(Groups))
	}
	s.resolved[category] = true
}

// Has tests wether a style-struct category has been resolved.
func (s StructSet) Has(category string) bool {
	return s.resolved[category]
}

// Count returns the number of resolved categories.
func (s StructSet) Count() int {
	return len(s.resolved)
}

// Clone returns an independent copy of the set. StructSets are always copied
// wholesale; there is no per-category merge.
func (s StructSet) Clone() StructSet {
	if s.resolved == nil {
		return StructSet{}
	}
	m := make(map[string]bool, len(s.resolved))
	for k, v := range s.resolved {
		m[k] = v
	}
	return StructSet{resolved: m}
}

func isGroupName(category string) bool {
	for _, g := range Groups {
		if g == category {
			return true
		}
	}
	return false
}
