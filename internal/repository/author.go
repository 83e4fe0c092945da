package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/fetcher"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/sortcode"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthorRepository interface {
	FindAll(ctx context.Context, f *fetcher.Fetcher, sort []sortcode.Order) ([]model.Author, error)
	FindByFirstNameAndLastNameAndGender(
		ctx context.Context,
		sort []sortcode.Order,
		firstName, lastName *string,
		gender *model.Gender,
		f *fetcher.Fetcher,
	) ([]model.Author, error)
	FindNullable(ctx context.Context, id uuid.UUID, f *fetcher.Fetcher) (*model.Author, error)
	Save(ctx context.Context, input model.AuthorInput, mode SaveMode) (*model.Author, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// Transaction runs fn against a repository bound to a single database
	// transaction. fn returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(repo AuthorRepository) error) error
}

type GormAuthorRepository struct {
	db      *gorm.DB
	books   *GormBookRepository
	filters []fetcher.Filter
}

func NewAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{
		db:      db,
		books:   NewGormBookRepository(db),
		filters: []fetcher.Filter{TenantFilter{}},
	}
}

func (r *GormAuthorRepository) Transaction(ctx context.Context, fn func(repo AuthorRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormAuthorRepository{
			db:      tx,
			books:   NewGormBookRepository(tx),
			filters: r.filters,
		})
	})
}

func (r *GormAuthorRepository) query(ctx context.Context, f *fetcher.Fetcher) *gorm.DB {
	return f.Apply(r.db.WithContext(ctx).Model(&model.Author{}), r.filters...)
}

func (r *GormAuthorRepository) FindAll(ctx context.Context, f *fetcher.Fetcher, sort []sortcode.Order) ([]model.Author, error) {
	return r.find(ctx, sortcode.Apply(r.query(ctx, f), sort), f)
}

// FindByFirstNameAndLastNameAndGender matches exactly on every non-nil
// argument; nil arguments leave that column unconstrained.
func (r *GormAuthorRepository) FindByFirstNameAndLastNameAndGender(
	ctx context.Context,
	sort []sortcode.Order,
	firstName, lastName *string,
	gender *model.Gender,
	f *fetcher.Fetcher,
) ([]model.Author, error) {
	tx := r.query(ctx, f)

	if firstName != nil {
		tx = tx.Where("first_name = ?", *firstName)
	}
	if lastName != nil {
		tx = tx.Where("last_name = ?", *lastName)
	}
	if gender != nil {
		tx = tx.Where("gender = ?", *gender)
	}

	return r.find(ctx, sortcode.Apply(tx, sort), f)
}

// FindNullable returns nil, nil when no author has the id.
func (r *GormAuthorRepository) FindNullable(ctx context.Context, id uuid.UUID, f *fetcher.Fetcher) (*model.Author, error) {
	authors, err := r.find(ctx, r.query(ctx, f).Where("id = ?", id).Limit(1), f)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, nil
	}
	return &authors[0], nil
}

func (r *GormAuthorRepository) find(ctx context.Context, tx *gorm.DB, f *fetcher.Fetcher) ([]model.Author, error) {
	var authors []model.Author
	if err := tx.Find(&authors).Error; err != nil {
		return nil, err
	}

	if err := r.resolveStoreAvgPrice(ctx, f, authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// Save inserts or updates an author according to mode. An input with an id
// is matched by id, otherwise by first and last name. When BookIDs is set
// the author's books are replaced.
func (r *GormAuthorRepository) Save(ctx context.Context, input model.AuthorInput, mode SaveMode) (*model.Author, error) {
	db := r.db.WithContext(ctx)

	existing, err := r.lookup(db, input)
	if err != nil {
		return nil, err
	}

	switch {
	case existing != nil && mode == SaveModeInsertOnly:
		return nil, &SaveError{
			Code:    SaveErrorNotUnique,
			Message: fmt.Sprintf("author %s %s already exists", input.FirstName, input.LastName),
		}
	case existing == nil && mode == SaveModeUpdateOnly:
		return nil, &SaveError{
			Code:    SaveErrorNoSuchEntity,
			Message: "author does not exist",
		}
	}

	author := input.ToEntity()

	if existing != nil {
		author.ID = existing.ID
		err = db.Model(&model.Author{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"first_name": author.FirstName,
				"last_name":  author.LastName,
				"gender":     author.Gender,
			}).Error
	} else {
		err = db.Omit(clause.Associations).Create(&author).Error
	}
	if err != nil {
		return nil, classifySaveError(err)
	}

	if input.BookIDs != nil {
		if err := r.replaceBooks(ctx, author.ID, input.BookIDs); err != nil {
			return nil, err
		}
	}

	var saved model.Author
	if err := db.First(&saved, "id = ?", author.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *GormAuthorRepository) lookup(db *gorm.DB, input model.AuthorInput) (*model.Author, error) {
	var found model.Author

	tx := db.Select("id")
	if input.ID != nil {
		tx = tx.Where("id = ?", *input.ID)
	} else {
		tx = tx.Where("first_name = ? AND last_name = ?", input.FirstName, input.LastName)
	}

	err := tx.Take(&found).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *GormAuthorRepository) replaceBooks(ctx context.Context, authorID uuid.UUID, bookIDs []uuid.UUID) error {
	ids := uniqueIDs(bookIDs)

	missing, err := r.books.MissingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &SaveError{
			Code:    SaveErrorIllegalTargetID,
			Message: fmt.Sprintf("books do not exist: %v", missing),
		}
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("author_id = ?", authorID).Delete(&model.BookAuthor{}).Error; err != nil {
		return classifySaveError(err)
	}
	if len(ids) == 0 {
		return nil
	}

	links := make([]model.BookAuthor, 0, len(ids))
	for _, id := range ids {
		links = append(links, model.BookAuthor{BookID: id, AuthorID: authorID})
	}
	if err := db.Create(&links).Error; err != nil {
		return classifySaveError(err)
	}
	return nil
}

// DeleteByID removes the author and its book links. Deleting an unknown id
// succeeds.
func (r *GormAuthorRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("author_id = ?", id).Delete(&model.BookAuthor{}).Error; err != nil {
		return classifyDeleteError(err)
	}
	if err := db.Delete(&model.Author{}, "id = ?", id).Error; err != nil {
		return classifyDeleteError(err)
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
