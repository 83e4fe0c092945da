// Package seed loads a small demo catalogue of stores, books and authors.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	"gorm.io/gorm"
)

type Summary struct {
	Stores  int
	Books   int
	Authors int
	Skipped bool
}

type book struct {
	name    string
	store   string
	tenant  string
	edition int
	price   float64
}

type author struct {
	firstName string
	lastName  string
	gender    model.Gender
	books     []string
}

var (
	stores = []model.BookStore{
		{Name: "MANNING", Website: "https://www.manning.com"},
		{Name: "O'REILLY", Website: "https://www.oreilly.com"},
	}

	books = []book{
		{name: "Learning GraphQL", store: "O'REILLY", tenant: "a", edition: 3, price: 51},
		{name: "Effective TypeScript", store: "O'REILLY", tenant: "b", edition: 2, price: 88},
		{name: "Programming TypeScript", store: "O'REILLY", tenant: "a", edition: 1, price: 47.5},
		{name: "GraphQL in Action", store: "MANNING", tenant: "b", edition: 2, price: 80},
	}

	authors = []author{
		{"Eve", "Porcello", model.GenderFemale, []string{"Learning GraphQL"}},
		{"Alex", "Banks", model.GenderMale, []string{"Learning GraphQL"}},
		{"Dan", "Vanderkam", model.GenderMale, []string{"Effective TypeScript"}},
		{"Boris", "Cherny", model.GenderMale, []string{"Programming TypeScript"}},
		{"Samer", "Buna", model.GenderMale, []string{"GraphQL in Action"}},
	}
)

// Run inserts the demo catalogue in one transaction. A database that already
// holds a store is left alone.
func Run(ctx context.Context, db *gorm.DB) (Summary, error) {
	var sum Summary

	var count int64
	if err := db.WithContext(ctx).Model(&model.BookStore{}).Count(&count).Error; err != nil {
		return sum, fmt.Errorf("count stores: %w", err)
	}
	if count > 0 {
		sum.Skipped = true
		return sum, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookRepo := repository.NewGormBookRepository(tx)
		authorRepo := repository.NewAuthorRepository(tx)

		storeIDs := make(map[string]uuid.UUID, len(stores))
		for _, s := range stores {
			if err := bookRepo.CreateStore(ctx, &s); err != nil {
				return fmt.Errorf("create store %q: %w", s.Name, err)
			}
			storeIDs[s.Name] = s.ID
			sum.Stores++
		}

		bookIDs := make(map[string]uuid.UUID, len(books))
		for _, b := range books {
			storeID := storeIDs[b.store]
			m := model.Book{
				Name:    b.name,
				Edition: b.edition,
				Price:   b.price,
				Tenant:  b.tenant,
				StoreID: &storeID,
			}
			if err := bookRepo.Create(ctx, &m); err != nil {
				return fmt.Errorf("create book %q: %w", b.name, err)
			}
			bookIDs[b.name] = m.ID
			sum.Books++
		}

		for _, a := range authors {
			ids := make([]uuid.UUID, 0, len(a.books))
			for _, name := range a.books {
				ids = append(ids, bookIDs[name])
			}

			_, err := authorRepo.Save(ctx, model.AuthorInput{
				FirstName: a.firstName,
				LastName:  a.lastName,
				Gender:    a.gender,
				BookIDs:   ids,
			}, repository.SaveModeInsertOnly)
			if err != nil {
				return fmt.Errorf("create author %s %s: %w", a.firstName, a.lastName, err)
			}
			sum.Authors++
		}

		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	return sum, nil
}
