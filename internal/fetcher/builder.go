package fetcher

import (
	"fmt"
	"slices"
)

// Builder assembles a Fetcher. Builder methods panic on unknown properties
// or mismatched association targets; fetchers are declared at package level
// so such mistakes surface at start-up.
type Builder struct {
	typ      *Type
	scalars  []Prop
	computed []string
	children []child
	disabled map[string]struct{}
}

func New(t *Type) *Builder {
	return &Builder{
		typ:      t,
		disabled: make(map[string]struct{}),
	}
}

// Fields selects scalar properties by name.
func (b *Builder) Fields(names ...string) *Builder {
	for _, name := range names {
		p, ok := b.typ.Prop(name)
		if !ok {
			panic(fmt.Sprintf("fetcher: %s has no scalar property %q", b.typ.Name, name))
		}
		if p.Name == b.typ.ID.Name {
			continue
		}
		b.addScalar(p)
	}
	return b
}

func (b *Builder) AllScalarFields() *Builder {
	for _, p := range b.typ.Scalars {
		b.addScalar(p)
	}
	return b
}

// Computed selects properties that are resolved after loading rather than
// read from a column.
func (b *Builder) Computed(names ...string) *Builder {
	for _, name := range names {
		if !b.typ.hasComputed(name) {
			panic(fmt.Sprintf("fetcher: %s has no computed property %q", b.typ.Name, name))
		}
		if !slices.Contains(b.computed, name) {
			b.computed = append(b.computed, name)
		}
	}
	return b
}

// Association selects a related entity shaped by child.
func (b *Builder) Association(name string, child *Fetcher) *Builder {
	assoc, ok := b.typ.Association(name)
	if !ok {
		panic(fmt.Sprintf("fetcher: %s has no association %q", b.typ.Name, name))
	}
	if child.typ.Name != assoc.Target {
		panic(fmt.Sprintf("fetcher: %s.%s targets %s, got fetcher for %s",
			b.typ.Name, name, assoc.Target, child.typ.Name))
	}

	for i := range b.children {
		if b.children[i].assoc.Name == name {
			b.children[i].fetcher = child
			return b
		}
	}
	b.children = append(b.children, childOf(assoc, child))
	return b
}

// Filter enables or disables a global filter for this level of the graph.
func (b *Builder) Filter(name string, enabled bool) *Builder {
	if enabled {
		delete(b.disabled, name)
	} else {
		b.disabled[name] = struct{}{}
	}
	return b
}

// Build returns an immutable Fetcher. The builder may keep being used; later
// calls do not affect fetchers already built.
func (b *Builder) Build() *Fetcher {
	disabled := make(map[string]struct{}, len(b.disabled))
	for k := range b.disabled {
		disabled[k] = struct{}{}
	}

	return &Fetcher{
		typ:      b.typ,
		scalars:  slices.Clone(b.scalars),
		computed: slices.Clone(b.computed),
		children: slices.Clone(b.children),
		disabled: disabled,
	}
}

func (b *Builder) addScalar(p Prop) {
	for _, s := range b.scalars {
		if s.Name == p.Name {
			return
		}
	}
	b.scalars = append(b.scalars, p)
}

func childOf(assoc Association, f *Fetcher) child {
	return child{assoc: assoc, fetcher: f}
}
