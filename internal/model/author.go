package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"not null;uniqueIndex:ux_authors_name"`
	LastName  string    `gorm:"not null;uniqueIndex:ux_authors_name"`
	Gender    Gender    `gorm:"type:varchar(16);not null"`
	Books     []Book    `gorm:"many2many:book_authors;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// BookAuthor is a row of the author/book join table.
type BookAuthor struct {
	BookID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (BookAuthor) TableName() string {
	return "book_authors"
}
