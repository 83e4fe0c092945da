package fetcher

import (
	"gorm.io/gorm"
)

// Filter is a global query filter bound to one entity type. It is applied to
// every query for that type, at any depth of the graph, unless the fetcher
// at that level disables it by name.
type Filter interface {
	Name() string
	Type() string
	Scope(tx *gorm.DB) *gorm.DB
}

// Apply narrows the root query to the fetcher's columns and registers one
// preload per selected association, recursively.
func (f *Fetcher) Apply(db *gorm.DB, filters ...Filter) *gorm.DB {
	db = f.scope(db.Select(f.Columns()), filters)
	return f.preload(db, "", filters)
}

func (f *Fetcher) preload(db *gorm.DB, prefix string, filters []Filter) *gorm.DB {
	for _, c := range f.children {
		path := c.assoc.Field
		if prefix != "" {
			path = prefix + "." + path
		}

		cf := c.fetcher
		cols := cf.Columns()
		if c.assoc.MappedBy != "" {
			cols = append(cols, c.assoc.MappedBy)
		}

		db = db.Preload(path, func(tx *gorm.DB) *gorm.DB {
			return cf.scope(tx.Select(cols), filters)
		})
		db = cf.preload(db, path, filters)
	}
	return db
}

func (f *Fetcher) scope(tx *gorm.DB, filters []Filter) *gorm.DB {
	for _, flt := range filters {
		if flt.Type() == f.typ.Name && f.FilterEnabled(flt.Name()) {
			tx = flt.Scope(tx)
		}
	}
	return tx
}
