package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/migrations"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory sqlite database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := open(t, "testdb_")

	if err := db.AutoMigrate(&model.BookStore{}, &model.Book{}, &model.Author{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// NewMigratedDB opens an in-memory sqlite database whose schema comes from
// the goose migrations rather than AutoMigrate.
func NewMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := open(t, "migrateddb_")

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	if _, err := migrations.Up(context.Background(), sqlDB, config.DriverSQLite); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return db
}

// NewEmptyDB opens an in-memory sqlite database without any tables, so every
// query against it fails.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()
	return open(t, "errdb_")
}

func open(t *testing.T, prefix string) *gorm.DB {
	t.Helper()

	dsn := "file:" + prefix + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func SeedStore(t *testing.T, db *gorm.DB, name string) model.BookStore {
	t.Helper()

	store := model.BookStore{Name: name, Website: "https://" + name + ".example"}
	if err := db.Create(&store).Error; err != nil {
		t.Fatalf("failed to seed store %q: %v", name, err)
	}
	return store
}

func SeedBook(t *testing.T, db *gorm.DB, store *model.BookStore, name, tenant string, price float64) model.Book {
	t.Helper()

	book := model.Book{
		Name:    name,
		Edition: 1,
		Price:   price,
		Tenant:  tenant,
	}
	if store != nil {
		book.StoreID = &store.ID
	}

	if err := db.Omit("Store").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", name, err)
	}
	return book
}

func SeedAuthor(t *testing.T, db *gorm.DB, firstName, lastName string, gender model.Gender, books ...model.Book) model.Author {
	t.Helper()

	author := model.Author{
		FirstName: firstName,
		LastName:  lastName,
		Gender:    gender,
	}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %s %s: %v", firstName, lastName, err)
	}

	for _, b := range books {
		link := model.BookAuthor{BookID: b.ID, AuthorID: author.ID}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("failed to link author %s to book %s: %v", author.ID, b.ID, err)
		}
	}

	return author
}
