package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookStore struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null;uniqueIndex"`
	Website string
	Books   []Book `gorm:"foreignKey:StoreID"`

	// AvgPrice is the average price of the store's books. It is not stored
	// and stays nil unless a fetcher selects it.
	AvgPrice *float64 `gorm:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *BookStore) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
