// Package service exposes the author operations. Each call runs in its own
// transaction and reads through one of the fixed fetchers below.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/fetcher"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/sortcode"
)

const DefaultSortCode = "firstName asc, lastName asc"

var (
	SimpleFetcher = fetcher.New(model.AuthorType).
			Fields("firstName", "lastName").
			Build()

	DefaultFetcher = fetcher.New(model.AuthorType).
			AllScalarFields().
			Build()

	ComplexFetcher = fetcher.New(model.AuthorType).
			AllScalarFields().
			Association("books", fetcher.New(model.BookType).
				AllScalarFields().
				Filter(repository.TenantFilter{}.Name(), false).
				Association("store", fetcher.New(model.BookStoreType).
					AllScalarFields().
					Computed("avgPrice").
					Build(),
			).
			Build(),
		).
		Build()

	simpleSort = sortcode.MustParse(DefaultSortCode, model.AuthorType)
)

// ListQuery holds the optional exact-match filters of List. Nil fields are
// not constrained.
type ListQuery struct {
	SortCode  string
	FirstName *string
	LastName  *string
	Gender    *model.Gender
}

type AuthorService struct {
	repo repository.AuthorRepository
}

func NewAuthorService(repo repository.AuthorRepository) *AuthorService {
	return &AuthorService{repo: repo}
}

func (s *AuthorService) ListSimple(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	err := s.repo.Transaction(ctx, func(repo repository.AuthorRepository) error {
		var err error
		authors, err = repo.FindAll(ctx, SimpleFetcher, simpleSort)
		return err
	})
	return authors, err
}

// List fails with a *sortcode.ParseError before touching the database when
// the sort code is invalid. A blank sort code means DefaultSortCode.
func (s *AuthorService) List(ctx context.Context, q ListQuery) ([]model.Author, error) {
	code := q.SortCode
	if strings.TrimSpace(code) == "" {
		code = DefaultSortCode
	}

	sort, err := sortcode.Parse(code, model.AuthorType)
	if err != nil {
		return nil, err
	}

	var authors []model.Author
	err = s.repo.Transaction(ctx, func(repo repository.AuthorRepository) error {
		var err error
		authors, err = repo.FindByFirstNameAndLastNameAndGender(
			ctx,
			sort,
			q.FirstName,
			q.LastName,
			q.Gender,
			DefaultFetcher,
		)
		return err
	})
	return authors, err
}

// GetComplex returns nil, nil when the author does not exist.
func (s *AuthorService) GetComplex(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var author *model.Author
	err := s.repo.Transaction(ctx, func(repo repository.AuthorRepository) error {
		var err error
		author, err = repo.FindNullable(ctx, id, ComplexFetcher)
		return err
	})
	return author, err
}

func (s *AuthorService) Save(ctx context.Context, input model.AuthorInput, mode repository.SaveMode) (*model.Author, error) {
	var author *model.Author
	err := s.repo.Transaction(ctx, func(repo repository.AuthorRepository) error {
		var err error
		author, err = repo.Save(ctx, input, mode)
		return err
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

func (s *AuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Transaction(ctx, func(repo repository.AuthorRepository) error {
		return repo.DeleteByID(ctx, id)
	})
}
