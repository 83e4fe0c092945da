package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	CreateStore(ctx context.Context, store *model.BookStore) error
	Create(ctx context.Context, book *model.Book) error
	MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) CreateStore(ctx context.Context, store *model.BookStore) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(store).Error
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(book).Error
}

// MissingIDs returns the ids that name no book, in input order.
func (r *GormBookRepository) MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {

		return nil, err
	}

	exists := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		exists[id] = struct{}{}
	}

	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
