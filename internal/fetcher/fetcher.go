// Package fetcher describes which properties and nested associations of an
// entity graph are loaded by a query.
//
// A Fetcher is built once with a Builder and is read-only afterwards, so the
// same value can be shared by concurrent requests.
package fetcher

import (
	"strings"
)

type child struct {
	assoc   Association
	fetcher *Fetcher
}

// Fetcher is an immutable field selection rooted at one entity type.
// The id property is always selected.
type Fetcher struct {
	typ      *Type
	scalars  []Prop
	computed []string
	children []child
	disabled map[string]struct{}
}

func (f *Fetcher) Type() *Type {
	return f.typ
}

// Has reports whether the named property, computed property or association
// is part of the selection.
func (f *Fetcher) Has(name string) bool {
	if name == f.typ.ID.Name {
		return true
	}
	for _, p := range f.scalars {
		if p.Name == name {
			return true
		}
	}
	for _, c := range f.computed {
		if c == name {
			return true
		}
	}
	return f.Child(name) != nil
}

// Child returns the fetcher of a selected association, or nil.
func (f *Fetcher) Child(name string) *Fetcher {
	for _, c := range f.children {
		if c.assoc.Name == name {
			return c.fetcher
		}
	}
	return nil
}

// Props lists the selected property names in selection order, id first.
func (f *Fetcher) Props() []string {
	props := make([]string, 0, 1+len(f.scalars)+len(f.computed)+len(f.children))
	props = append(props, f.typ.ID.Name)
	for _, p := range f.scalars {
		props = append(props, p.Name)
	}
	props = append(props, f.computed...)
	for _, c := range f.children {
		props = append(props, c.assoc.Name)
	}
	return props
}

// Columns lists the columns that must be read from the root table: the id,
// the selected scalars and the foreign keys of selected to-one associations.
func (f *Fetcher) Columns() []string {
	seen := make(map[string]struct{}, 1+len(f.scalars)+len(f.children))
	cols := make([]string, 0, 1+len(f.scalars)+len(f.children))

	add := func(col string) {
		if col == "" {
			return
		}
		if _, ok := seen[col]; ok {
			return
		}
		seen[col] = struct{}{}
		cols = append(cols, col)
	}

	add(f.typ.ID.Column)
	for _, p := range f.scalars {
		add(p.Column)
	}
	for _, c := range f.children {
		add(c.assoc.ForeignKey)
	}
	return cols
}

// FilterEnabled reports whether the named global filter applies to queries
// shaped by this fetcher.
func (f *Fetcher) FilterEnabled(name string) bool {
	_, off := f.disabled[name]
	return !off
}

func (f *Fetcher) String() string {
	var sb strings.Builder
	f.write(&sb)
	return sb.String()
}

func (f *Fetcher) write(sb *strings.Builder) {
	sb.WriteString(f.typ.Name)
	sb.WriteString(" { ")
	sb.WriteString(f.typ.ID.Name)
	for _, p := range f.scalars {
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	for _, c := range f.computed {
		sb.WriteString(" ")
		sb.WriteString(c)
	}
	for _, c := range f.children {
		sb.WriteString(" ")
		sb.WriteString(c.assoc.Name)
		sb.WriteString(": ")
		c.fetcher.write(sb)
	}
	sb.WriteString(" }")
}
