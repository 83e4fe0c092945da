package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/testutil"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/validation"
)

func TestListSimpleAuthors_OnlyNames(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	testutil.SeedAuthor(t, db, "Boris", "Cherny", model.GenderMale)
	testutil.SeedAuthor(t, db, "Alex", "Banks", model.GenderMale)

	w := doRequest(t, router, http.MethodGet, "/author/simpleList", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[struct {
		Data []map[string]any `json:"data"`
	}](t, w)

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(resp.Data))
	}
	if resp.Data[0]["firstName"] != "Alex" || resp.Data[1]["firstName"] != "Boris" {
		t.Fatalf("unexpected order: %v", resp.Data)
	}

	for _, a := range resp.Data {
		keys := make([]string, 0, len(a))
		for k := range a {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if fmt.Sprint(keys) != "[firstName id lastName]" {
			t.Errorf("expected only id, firstName and lastName, got %v", keys)
		}
	}
}

func TestListAuthors_FilterByGenderSortedByLastName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	testutil.SeedAuthor(t, db, "Dan", "Vanderkam", model.GenderMale)
	testutil.SeedAuthor(t, db, "Eve", "Porcello", model.GenderFemale)
	testutil.SeedAuthor(t, db, "Alex", "Banks", model.GenderMale)

	w := doRequest(t, router, http.MethodGet, "/author/list?sortCode=lastName+asc&gender=MALE", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[ListAuthorsResponse](t, w)

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 male authors, got %d", len(resp.Data))
	}
	if *resp.Data[0].LastName != "Banks" || *resp.Data[1].LastName != "Vanderkam" {
		t.Fatalf("unexpected order: %s, %s", *resp.Data[0].LastName, *resp.Data[1].LastName)
	}
	for _, a := range resp.Data {
		if a.Gender == nil || *a.Gender != model.GenderMale {
			t.Errorf("expected gender MALE, got %v", a.Gender)
		}
		if a.CreatedAt == nil {
			t.Errorf("expected createdAt in default shape")
		}
		if a.Books != nil {
			t.Errorf("expected no books in default shape")
		}
	}
}

func TestListAuthors_DefaultSortAndNameFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	testutil.SeedAuthor(t, db, "Eve", "Porcello", model.GenderFemale)
	testutil.SeedAuthor(t, db, "Alex", "Porcello", model.GenderMale)
	testutil.SeedAuthor(t, db, "Alex", "Banks", model.GenderMale)

	w := doRequest(t, router, http.MethodGet, "/author/list?lastName=Porcello", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[ListAuthorsResponse](t, w)

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(resp.Data))
	}
	if *resp.Data[0].FirstName != "Alex" || *resp.Data[1].FirstName != "Eve" {
		t.Fatalf("unexpected order: %s, %s", *resp.Data[0].FirstName, *resp.Data[1].FirstName)
	}
}

func TestListAuthors_EmptySortCodeUsesDefaultOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	testutil.SeedAuthor(t, db, "Eve", "Porcello", model.GenderFemale)
	testutil.SeedAuthor(t, db, "Dan", "Vanderkam", model.GenderMale)
	testutil.SeedAuthor(t, db, "Alex", "Banks", model.GenderMale)

	for _, path := range []string{"/author/list?sortCode=", "/author/list?sortCode=+++"} {
		w := doRequest(t, router, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d, body=%s", path, w.Code, w.Body.String())
		}

		resp := decode[ListAuthorsResponse](t, w)

		var got []string
		for _, a := range resp.Data {
			got = append(got, *a.FirstName)
		}
		if strings.Join(got, ",") != "Alex,Dan,Eve" {
			t.Fatalf("%s: expected Alex,Dan,Eve, got %v", path, got)
		}
	}
}

func TestListAuthors_BadQuery(t *testing.T) {
	router := setupTestRouterWithRepo(&fakeAuthorRepo{})

	tests := []struct {
		path string
		code string
	}{
		{path: "/author/list?sortCode=age+desc", code: "INVALID_SORT_CODE"},
		{path: "/author/list?sortCode=lastName+sideways", code: "INVALID_SORT_CODE"},
		{path: "/author/list?gender=ROBOT", code: "INVALID_GENDER"},
	}

	for _, tt := range tests {
		w := doRequest(t, router, http.MethodGet, tt.path, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", tt.path, w.Code)
		}

		resp := decode[validation.ErrorResponse](t, w)
		if resp.Code != tt.code {
			t.Errorf("%s: expected code %s, got %s", tt.path, tt.code, resp.Code)
		}
	}
}

func TestListAuthors_InternalError_Returns500(t *testing.T) {
	db := testutil.NewEmptyDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodGet, "/author/list", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "AUTHOR_LIST_FAILED" {
		t.Errorf("expected error code AUTHOR_LIST_FAILED, got %q", resp.Code)
	}
}

func TestGetComplexAuthor_LoadsBooksOfAllTenants(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	store := testutil.SeedStore(t, db, "oreilly")
	b1 := testutil.SeedBook(t, db, &store, "Learning GraphQL", "a", 40)
	b2 := testutil.SeedBook(t, db, &store, "Effective TypeScript", "b", 60)
	author := testutil.SeedAuthor(t, db, "Eve", "Porcello", model.GenderFemale, b1, b2)

	w := doRequest(t, router, http.MethodGet, "/author/"+author.ID.String(), nil, "tenant", "a")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[AuthorResponse](t, w)
	if resp.Data == nil {
		t.Fatalf("expected author data")
	}
	if resp.Data.ID != author.ID {
		t.Errorf("expected id %s, got %s", author.ID, resp.Data.ID)
	}
	if len(resp.Data.Books) != 2 {
		t.Fatalf("expected 2 books regardless of tenant, got %d", len(resp.Data.Books))
	}

	for _, b := range resp.Data.Books {
		if b.Name == nil || b.Price == nil || b.Tenant == nil {
			t.Errorf("expected book scalars, got %+v", b)
		}
		if b.Store == nil || b.Store.Name == nil || *b.Store.Name != "oreilly" {
			t.Fatalf("expected store oreilly, got %+v", b.Store)
		}
		if b.Store.AvgPrice == nil || math.Abs(*b.Store.AvgPrice-50) > 1e-9 {
			t.Errorf("expected avgPrice 50, got %v", b.Store.AvgPrice)
		}
	}
}

func TestGetComplexAuthor_NotFoundIsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	w := doRequest(t, router, http.MethodGet, "/author/"+uuid.New().String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"data":null}` {
		t.Fatalf("expected null data, got %s", w.Body.String())
	}
}

func TestGetComplexAuthor_InvalidID(t *testing.T) {
	router := setupTestRouterWithRepo(&fakeAuthorRepo{})

	w := doRequest(t, router, http.MethodGet, "/author/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != "AUTHOR_INVALID_ID" {
		t.Errorf("expected error code AUTHOR_INVALID_ID, got %q", resp.Code)
	}
}

func TestSaveAuthor_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	book := testutil.SeedBook(t, db, nil, "Programming TypeScript", "a", 35)

	input := model.AuthorInput{
		FirstName: "Boris",
		LastName:  "Cherny",
		Gender:    model.GenderMale,
		BookIDs:   []uuid.UUID{book.ID},
	}

	w := doRequest(t, router, http.MethodPut, "/author", input)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	saved := decode[AuthorResponse](t, w)
	if saved.Data == nil || saved.Data.ID == uuid.Nil {
		t.Fatalf("expected saved author with id, got %s", w.Body.String())
	}

	w = doRequest(t, router, http.MethodGet, "/author/"+saved.Data.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	got := decode[AuthorResponse](t, w)
	if got.Data == nil {
		t.Fatalf("expected author after save")
	}
	if *got.Data.FirstName != input.FirstName || *got.Data.LastName != input.LastName || *got.Data.Gender != input.Gender {
		t.Errorf("scalar mismatch: got %+v", got.Data)
	}
	if len(got.Data.Books) != 1 || got.Data.Books[0].ID != book.ID {
		t.Errorf("expected linked book %s, got %+v", book.ID, got.Data.Books)
	}
}

func TestSaveAuthor_TrailingSlash(t *testing.T) {
	router := setupTestRouterWithRepo(&fakeAuthorRepo{})

	input := model.AuthorInput{FirstName: "Alex", LastName: "Banks", Gender: model.GenderMale}

	w := doRequest(t, router, http.MethodPut, "/author/", input)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestSaveAuthor_ValidationError(t *testing.T) {
	router := setupTestRouterWithRepo(&fakeAuthorRepo{})

	w := doRequest(t, router, http.MethodPut, "/author", map[string]any{
		"firstName": "Alex",
		"gender":    "UNKNOWN",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != validation.CodeValidationFailed {
		t.Errorf("expected code %s, got %s", validation.CodeValidationFailed, resp.Code)
	}
}

func TestSaveAuthor_SaveErrors(t *testing.T) {
	tests := []struct {
		code   repository.SaveErrorCode
		status int
	}{
		{code: repository.SaveErrorNotUnique, status: http.StatusConflict},
		{code: repository.SaveErrorIllegalTargetID, status: http.StatusUnprocessableEntity},
		{code: repository.SaveErrorNoSuchEntity, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			repo := &fakeAuthorRepo{
				SaveFn: func(ctx context.Context, input model.AuthorInput, mode repository.SaveMode) (*model.Author, error) {
					return nil, &repository.SaveError{Code: tt.code, Message: "forced"}
				},
			}
			router := setupTestRouterWithRepo(repo)

			w := doRequest(t, router, http.MethodPut, "/author", model.AuthorInput{
				FirstName: "Alex",
				LastName:  "Banks",
				Gender:    model.GenderMale,
			})
			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d, body=%s", tt.status, w.Code, w.Body.String())
			}

			resp := decode[validation.ErrorResponse](t, w)
			if resp.Code != string(tt.code) {
				t.Errorf("expected code %s, got %s", tt.code, resp.Code)
			}
		})
	}
}

func TestSaveAuthor_ModeIsPassedThrough(t *testing.T) {
	var got repository.SaveMode
	repo := &fakeAuthorRepo{
		SaveFn: func(ctx context.Context, input model.AuthorInput, mode repository.SaveMode) (*model.Author, error) {
			got = mode
			a := input.ToEntity()
			return &a, nil
		},
	}
	router := setupTestRouterWithRepo(repo)

	input := model.AuthorInput{FirstName: "Alex", LastName: "Banks", Gender: model.GenderMale}

	w := doRequest(t, router, http.MethodPut, "/author?mode=INSERT_ONLY", input)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if got != repository.SaveModeInsertOnly {
		t.Errorf("expected INSERT_ONLY, got %q", got)
	}

	w = doRequest(t, router, http.MethodPut, "/author?mode=MERGE", input)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown mode, got %d", w.Code)
	}
}

func TestDeleteAuthor_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Dan", "Vanderkam", model.GenderMale)

	for i := 0; i < 2; i++ {
		w := doRequest(t, router, http.MethodDelete, "/author/"+author.ID.String(), nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("attempt %d: expected status 204, got %d, body=%s", i+1, w.Code, w.Body.String())
		}
	}

	var count int64
	db.Model(&model.Author{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no authors left, got %d", count)
	}
}

func TestDeleteAuthor_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "constraint violation",
			err:    fmt.Errorf("%w: fk", repository.ErrConstraintViolation),
			status: http.StatusConflict,
			code:   "CONSTRAINT_VIOLATION",
		},
		{
			name:   "database failure",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			code:   "AUTHOR_DELETE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAuthorRepo{
				DeleteByIDFn: func(ctx context.Context, id uuid.UUID) error {
					return tt.err
				},
			}
			router := setupTestRouterWithRepo(repo)

			w := doRequest(t, router, http.MethodDelete, "/author/"+uuid.New().String(), nil)
			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}

			resp := decode[validation.ErrorResponse](t, w)
			if resp.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, resp.Code)
			}
		})
	}
}
