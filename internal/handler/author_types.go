package handler

import (
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/fetcher"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
)

// Author is an author shaped by a fetcher: properties outside the fetcher
// are nil and omitted from the JSON.
type Author struct {
	ID        uuid.UUID        `json:"id"`
	FirstName *string          `json:"firstName,omitempty"`
	LastName  *string          `json:"lastName,omitempty"`
	Gender    *model.Gender    `json:"gender,omitempty" swaggertype:"string" enums:"MALE,FEMALE"`
	CreatedAt *model.Timestamp `json:"createdAt,omitempty" swaggertype:"string" example:"2025-11-24T12:30:00Z"`
	UpdatedAt *model.Timestamp `json:"updatedAt,omitempty" swaggertype:"string" example:"2025-11-24T12:30:00Z"`
	Books     []Book           `json:"books,omitempty"`
}

type Book struct {
	ID        uuid.UUID        `json:"id"`
	Name      *string          `json:"name,omitempty"`
	Edition   *int             `json:"edition,omitempty"`
	Price     *float64         `json:"price,omitempty"`
	Tenant    *string          `json:"tenant,omitempty"`
	CreatedAt *model.Timestamp `json:"createdAt,omitempty" swaggertype:"string" example:"2025-11-24T12:30:00Z"`
	UpdatedAt *model.Timestamp `json:"updatedAt,omitempty" swaggertype:"string" example:"2025-11-24T12:30:00Z"`
	Store     *BookStore       `json:"store,omitempty"`
}

type BookStore struct {
	ID        uuid.UUID        `json:"id"`
	Name      *string          `json:"name,omitempty"`
	Website   *string          `json:"website,omitempty"`
	CreatedAt *model.Timestamp `json:"createdAt,omitempty" swaggertype:"string" example:"2025-11-24T12:30:00Z"`
	UpdatedAt *model.Timestamp `json:"updatedAt,omitempty" swaggertype:"string" example:"2025-11-24T12:30:00Z"`
	AvgPrice  *float64         `json:"avgPrice,omitempty"`
}

type AuthorResponse struct {
	Data *Author `json:"data"`
}

type ListAuthorsResponse struct {
	Data []Author `json:"data"`
}

// pick returns &v when the fetcher selects prop.
func pick[T any](f *fetcher.Fetcher, prop string, v T) *T {
	if !f.Has(prop) {
		return nil
	}
	return &v
}

func toAuthor(a model.Author, f *fetcher.Fetcher) Author {
	out := Author{
		ID:        a.ID,
		FirstName: pick(f, "firstName", a.FirstName),
		LastName:  pick(f, "lastName", a.LastName),
		Gender:    pick(f, "gender", a.Gender),
		CreatedAt: pick(f, "createdAt", model.Timestamp{Time: a.CreatedAt}),
		UpdatedAt: pick(f, "updatedAt", model.Timestamp{Time: a.UpdatedAt}),
	}

	if bf := f.Child("books"); bf != nil {
		out.Books = make([]Book, 0, len(a.Books))
		for _, b := range a.Books {
			out.Books = append(out.Books, toBook(b, bf))
		}
	}
	return out
}

func toBook(b model.Book, f *fetcher.Fetcher) Book {
	out := Book{
		ID:        b.ID,
		Name:      pick(f, "name", b.Name),
		Edition:   pick(f, "edition", b.Edition),
		Price:     pick(f, "price", b.Price),
		Tenant:    pick(f, "tenant", b.Tenant),
		CreatedAt: pick(f, "createdAt", model.Timestamp{Time: b.CreatedAt}),
		UpdatedAt: pick(f, "updatedAt", model.Timestamp{Time: b.UpdatedAt}),
	}

	if sf := f.Child("store"); sf != nil && b.Store != nil {
		store := toBookStore(*b.Store, sf)
		out.Store = &store
	}
	return out
}

func toBookStore(s model.BookStore, f *fetcher.Fetcher) BookStore {
	out := BookStore{
		ID:        s.ID,
		Name:      pick(f, "name", s.Name),
		Website:   pick(f, "website", s.Website),
		CreatedAt: pick(f, "createdAt", model.Timestamp{Time: s.CreatedAt}),
		UpdatedAt: pick(f, "updatedAt", model.Timestamp{Time: s.UpdatedAt}),
	}
	if f.Has("avgPrice") {
		out.AvgPrice = s.AvgPrice
	}
	return out
}

func toAuthors(authors []model.Author, f *fetcher.Fetcher) []Author {
	out := make([]Author, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthor(a, f))
	}
	return out
}
