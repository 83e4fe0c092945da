package model

import "github.com/snnyvrz/shelfshare/apps/authors-api/internal/fetcher"

var AuthorType = &fetcher.Type{
	Name: "Author",
	ID:   fetcher.Prop{Name: "id", Column: "id"},
	Scalars: []fetcher.Prop{
		{Name: "firstName", Column: "first_name"},
		{Name: "lastName", Column: "last_name"},
		{Name: "gender", Column: "gender"},
		{Name: "createdAt", Column: "created_at"},
		{Name: "updatedAt", Column: "updated_at"},
	},
	Associations: []fetcher.Association{
		{Name: "books", Field: "Books", Target: "Book"},
	},
}

var BookType = &fetcher.Type{
	Name: "Book",
	ID:   fetcher.Prop{Name: "id", Column: "id"},
	Scalars: []fetcher.Prop{
		{Name: "name", Column: "name"},
		{Name: "edition", Column: "edition"},
		{Name: "price", Column: "price"},
		{Name: "tenant", Column: "tenant"},
		{Name: "createdAt", Column: "created_at"},
		{Name: "updatedAt", Column: "updated_at"},
	},
	Associations: []fetcher.Association{
		{Name: "store", Field: "Store", Target: "BookStore", ForeignKey: "store_id"},
		{Name: "authors", Field: "Authors", Target: "Author"},
	},
}

var BookStoreType = &fetcher.Type{
	Name: "BookStore",
	ID:   fetcher.Prop{Name: "id", Column: "id"},
	Scalars: []fetcher.Prop{
		{Name: "name", Column: "name"},
		{Name: "website", Column: "website"},
		{Name: "createdAt", Column: "created_at"},
		{Name: "updatedAt", Column: "updated_at"},
	},
	Computed: []string{"avgPrice"},
	Associations: []fetcher.Association{
		{Name: "books", Field: "Books", Target: "Book", MappedBy: "store_id"},
	},
}
