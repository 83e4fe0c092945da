package fetcher

// Prop maps a property name to the column that stores it.
type Prop struct {
	Name   string
	Column string
}

// Association describes a relationship from one entity type to another.
//
// ForeignKey is set for to-one associations whose key lives on the owning
// table. MappedBy is set for one-to-many associations whose key lives on the
// target table. Many-to-many associations set neither; gorm resolves them
// through the join table.
type Association struct {
	Name       string
	Field      string
	Target     string
	ForeignKey string
	MappedBy   string
}

// Type describes the fetchable shape of an entity.
type Type struct {
	Name         string
	ID           Prop
	Scalars      []Prop
	Computed     []string
	Associations []Association
}

// Prop looks up the id or a scalar property by name.
func (t *Type) Prop(name string) (Prop, bool) {
	if name == t.ID.Name {
		return t.ID, true
	}
	for _, p := range t.Scalars {
		if p.Name == name {
			return p, true
		}
	}
	return Prop{}, false
}

func (t *Type) Association(name string) (Association, bool) {
	for _, a := range t.Associations {
		if a.Name == name {
			return a, true
		}
	}
	return Association{}, false
}

func (t *Type) hasComputed(name string) bool {
	for _, c := range t.Computed {
		if c == name {
			return true
		}
	}
	return false
}
