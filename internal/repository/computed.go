package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/fetcher"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
)

type storeAvgPrice struct {
	StoreID  uuid.UUID
	AvgPrice float64
}

// resolveStoreAvgPrice fills BookStore.AvgPrice for stores reached through
// authors.books.store when the fetcher selects it. The average covers every
// book of the store regardless of tenant.
func (r *GormAuthorRepository) resolveStoreAvgPrice(ctx context.Context, f *fetcher.Fetcher, authors []model.Author) error {
	bf := f.Child("books")
	if bf == nil {
		return nil
	}
	sf := bf.Child("store")
	if sf == nil || !sf.Has("avgPrice") {
		return nil
	}

	var stores []*model.BookStore
	ids := make(map[uuid.UUID]struct{})
	for i := range authors {
		for j := range authors[i].Books {
			if s := authors[i].Books[j].Store; s != nil {
				stores = append(stores, s)
				ids[s.ID] = struct{}{}
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	storeIDs := make([]uuid.UUID, 0, len(ids))
	for id := range ids {
		storeIDs = append(storeIDs, id)
	}

	var rows []storeAvgPrice
	if err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Select("store_id, AVG(price) AS avg_price").
		Where("store_id IN ?", storeIDs).
		Group("store_id").
		Scan(&rows).Error; err != nil {

		return err
	}

	avg := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		avg[row.StoreID] = row.AvgPrice
	}

	for _, s := range stores {
		if v, ok := avg[s.ID]; ok {
			s.AvgPrice = &v
		}
	}
	return nil
}
