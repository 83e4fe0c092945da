package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/fetcher"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/service"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/sortcode"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/tenant"
	"gorm.io/gorm"
)

type fakeAuthorRepo struct {
	FindAllFn      func(ctx context.Context, f *fetcher.Fetcher, sort []sortcode.Order) ([]model.Author, error)
	FindByFn       func(ctx context.Context, sort []sortcode.Order, firstName, lastName *string, gender *model.Gender, f *fetcher.Fetcher) ([]model.Author, error)
	FindNullableFn func(ctx context.Context, id uuid.UUID, f *fetcher.Fetcher) (*model.Author, error)
	SaveFn         func(ctx context.Context, input model.AuthorInput, mode repository.SaveMode) (*model.Author, error)
	DeleteByIDFn   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeAuthorRepo) FindAll(ctx context.Context, fe *fetcher.Fetcher, sort []sortcode.Order) ([]model.Author, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, fe, sort)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) FindByFirstNameAndLastNameAndGender(
	ctx context.Context,
	sort []sortcode.Order,
	firstName, lastName *string,
	gender *model.Gender,
	fe *fetcher.Fetcher,
) ([]model.Author, error) {
	if f.FindByFn != nil {
		return f.FindByFn(ctx, sort, firstName, lastName, gender, fe)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) FindNullable(ctx context.Context, id uuid.UUID, fe *fetcher.Fetcher) (*model.Author, error) {
	if f.FindNullableFn != nil {
		return f.FindNullableFn(ctx, id, fe)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) Save(ctx context.Context, input model.AuthorInput, mode repository.SaveMode) (*model.Author, error) {
	if f.SaveFn != nil {
		return f.SaveFn(ctx, input, mode)
	}
	a := input.ToEntity()
	return &a, nil
}

func (f *fakeAuthorRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if f.DeleteByIDFn != nil {
		return f.DeleteByIDFn(ctx, id)
	}
	return nil
}

func (f *fakeAuthorRepo) Transaction(ctx context.Context, fn func(repo repository.AuthorRepository) error) error {
	return fn(f)
}

func setupTestRouterWithRepo(repo repository.AuthorRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// mirrors the tenant middleware without importing it
	r.Use(func(c *gin.Context) {
		if t := c.GetHeader(tenant.Header); t != "" {
			c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), t))
		}
		c.Next()
	})

	h := NewAuthorHandler(service.NewAuthorService(repo))
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	return setupTestRouterWithRepo(repository.NewAuthorRepository(db))
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}
