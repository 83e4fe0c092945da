package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/service"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/sortcode"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/validation"
)

type AuthorHandler struct {
	svc *service.AuthorService
}

func NewAuthorHandler(svc *service.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/author")
	{
		authors.GET("/simpleList", h.ListSimpleAuthors)
		authors.GET("/list", h.ListAuthors)
		authors.GET("/:id", h.GetComplexAuthor)
		authors.PUT("", h.SaveAuthor)
		authors.PUT("/", h.SaveAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// ListSimpleAuthors godoc
// @Summary      List authors (names only)
// @Description  All authors ordered by first and last name, with id, firstName and lastName only
// @Tags         author
// @Produce      json
// @Success      200  {object}  ListAuthorsResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /author/simpleList [get]
func (h *AuthorHandler) ListSimpleAuthors(c *gin.Context) {
	authors, err := h.svc.ListSimple(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_LIST_FAILED",
			"failed to list authors",
		)
		return
	}

	c.JSON(http.StatusOK, ListAuthorsResponse{
		Data: toAuthors(authors, service.SimpleFetcher),
	})
}

// ListAuthors godoc
// @Summary      List authors
// @Description  Authors with all scalar fields, filtered by exact match and sorted by sortCode
// @Tags         author
// @Produce      json
// @Param        sortCode   query     string  false  "Comma separated 'property [asc|desc]' pairs"  default(firstName asc, lastName asc)
// @Param        firstName  query     string  false  "Exact first name"
// @Param        lastName   query     string  false  "Exact last name"
// @Param        gender     query     string  false  "Gender"  Enums(MALE,FEMALE)
// @Success      200  {object}  ListAuthorsResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid sort code or gender"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /author/list [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	q := service.ListQuery{
		SortCode:  c.DefaultQuery("sortCode", service.DefaultSortCode),
		FirstName: optionalQuery(c, "firstName"),
		LastName:  optionalQuery(c, "lastName"),
	}

	if s := optionalQuery(c, "gender"); s != nil {
		g, err := model.ParseGender(*s)
		if err != nil {
			writeError(c, http.StatusBadRequest,
				"INVALID_GENDER",
				"gender must be MALE or FEMALE",
			)
			return
		}
		q.Gender = &g
	}

	authors, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		var perr *sortcode.ParseError
		if errors.As(err, &perr) {
			writeError(c, http.StatusBadRequest,
				"INVALID_SORT_CODE",
				perr.Error(),
			)
			return
		}

		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_LIST_FAILED",
			"failed to list authors",
		)
		return
	}

	c.JSON(http.StatusOK, ListAuthorsResponse{
		Data: toAuthors(authors, service.DefaultFetcher),
	})
}

// GetComplexAuthor godoc
// @Summary      Get author with books and stores
// @Description  Author with its books (all tenants) and each book's store including avgPrice. data is null when the author does not exist.
// @Tags         author
// @Produce      json
// @Param        id   path      string  true  "Author ID (UUID)"
// @Success      200  {object}  AuthorResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /author/{id} [get]
func (h *AuthorHandler) GetComplexAuthor(c *gin.Context) {
	id, ok := parseAuthorID(c)
	if !ok {
		return
	}

	author, err := h.svc.GetComplex(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_FETCH_FAILED",
			"failed to fetch author",
		)
		return
	}

	if author == nil {
		c.JSON(http.StatusOK, AuthorResponse{Data: nil})
		return
	}

	res := toAuthor(*author, service.ComplexFetcher)
	c.JSON(http.StatusOK, AuthorResponse{Data: &res})
}

// SaveAuthor godoc
// @Summary      Create or update an author
// @Description  Upserts by id when given, otherwise by first and last name. bookIds, when present, replaces the author's books.
// @Tags         author
// @Accept       json
// @Produce      json
// @Param        mode     query     string             false  "Save mode"  Enums(UPSERT,INSERT_ONLY,UPDATE_ONLY)  default(UPSERT)
// @Param        payload  body      model.AuthorInput  true   "Author to save"
// @Success      200      {object}  AuthorResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      404      {object}  validation.ErrorResponse  "NO_SUCH_ENTITY"
// @Failure      409      {object}  validation.ErrorResponse  "NOT_UNIQUE"
// @Failure      422      {object}  validation.ErrorResponse  "ILLEGAL_TARGET_ID"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /author [put]
func (h *AuthorHandler) SaveAuthor(c *gin.Context) {
	mode, err := repository.ParseSaveMode(c.Query("mode"))
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_SAVE_MODE",
			"mode must be UPSERT, INSERT_ONLY or UPDATE_ONLY",
		)
		return
	}

	var input model.AuthorInput
	if !validation.BindAndValidateJSON(c, &input) {
		return
	}

	author, err := h.svc.Save(c.Request.Context(), input, mode)
	if err != nil {
		var saveErr *repository.SaveError
		if errors.As(err, &saveErr) {
			writeError(c, saveErrorStatus(saveErr.Code), string(saveErr.Code), saveErr.Message)
			return
		}

		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_SAVE_FAILED",
			"failed to save author",
		)
		return
	}

	res := toAuthor(*author, service.DefaultFetcher)
	c.JSON(http.StatusOK, AuthorResponse{Data: &res})
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Deletes the author and its book links. Deleting an unknown id succeeds.
// @Tags         author
// @Produce      json
// @Param        id   path      string  true  "Author ID (UUID)"
// @Success      204  "No Content"
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      409  {object}  validation.ErrorResponse  "Constraint violation"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /author/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseAuthorID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrConstraintViolation) {
			writeError(c, http.StatusConflict,
				"CONSTRAINT_VIOLATION",
				"author is still referenced",
			)
			return
		}

		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_DELETE_FAILED",
			"failed to delete author",
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseAuthorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"AUTHOR_INVALID_ID",
			"invalid author id",
		)
		return uuid.Nil, false
	}
	return id, true
}

// optionalQuery returns nil for absent or empty query parameters.
func optionalQuery(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}

func saveErrorStatus(code repository.SaveErrorCode) int {
	switch code {
	case repository.SaveErrorNotUnique:
		return http.StatusConflict
	case repository.SaveErrorIllegalTargetID:
		return http.StatusUnprocessableEntity
	case repository.SaveErrorNoSuchEntity:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
