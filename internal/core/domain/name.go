// Package domain contains the core domain models and decision logic for
// package resolution, partitioning and privilege handling.
package domain

import (
	"slices"
	"unique"
)

// PkgName is an interned, case-sensitive package name. It is the unique key
// for a package across both the prebuilt and buildable universes.
type PkgName struct {
	h unique.Handle[string]
}

// NewPkgName creates a new PkgName from a string.
// It uses the unique package to intern the string.
func NewPkgName(s string) PkgName {
	return PkgName{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (n PkgName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (n PkgName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *PkgName) UnmarshalText(text []byte) error {
	n.h = unique.Make(string(text))
	return nil
}

// NameSet is an unordered set of package names.
type NameSet map[PkgName]struct{}

// NewNameSet creates a NameSet from the given names.
func NewNameSet(names ...PkgName) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts a name into the set.
func (s NameSet) Add(n PkgName) {
	s[n] = struct{}{}
}

// Has reports whether the set contains the given name.
func (s NameSet) Has(n PkgName) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the members of the set as a lexically sorted slice.
func (s NameSet) Sorted() []PkgName {
	strs := make([]string, 0, len(s))
	for n := range s {
		strs = append(strs, n.String())
	}
	slices.Sort(strs)

	res := make([]PkgName, len(strs))
	for i, str := range strs {
		res[i] = NewPkgName(str)
	}
	return res
}
