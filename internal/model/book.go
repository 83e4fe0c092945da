package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"not null;index"`
	Edition   int        `gorm:"not null;default:1"`
	Price     float64    `gorm:"type:numeric(10,2);not null"`
	Tenant    string     `gorm:"not null;index"`
	StoreID   *uuid.UUID `gorm:"type:uuid;index"`
	Store     *BookStore `gorm:"foreignKey:StoreID"`
	Authors   []Author   `gorm:"many2many:book_authors;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
