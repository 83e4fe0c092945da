package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type SaveMode string

const (
	SaveModeUpsert     SaveMode = "UPSERT"
	SaveModeInsertOnly SaveMode = "INSERT_ONLY"
	SaveModeUpdateOnly SaveMode = "UPDATE_ONLY"
)

// ParseSaveMode maps "" to SaveModeUpsert.
func ParseSaveMode(s string) (SaveMode, error) {
	switch m := SaveMode(s); m {
	case "":
		return SaveModeUpsert, nil
	case SaveModeUpsert, SaveModeInsertOnly, SaveModeUpdateOnly:
		return m, nil
	default:
		return "", fmt.Errorf("unknown save mode %q", s)
	}
}

type SaveErrorCode string

const (
	SaveErrorNotUnique       SaveErrorCode = "NOT_UNIQUE"
	SaveErrorIllegalTargetID SaveErrorCode = "ILLEGAL_TARGET_ID"
	SaveErrorNoSuchEntity    SaveErrorCode = "NO_SUCH_ENTITY"
)

// SaveError is a save failure the caller can act on.
type SaveError struct {
	Code    SaveErrorCode
	Message string
	Err     error
}

func (e *SaveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("save failed (%s): %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("save failed (%s): %s", e.Code, e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

var ErrConstraintViolation = errors.New("constraint violation")

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func classifySaveError(err error) error {
	switch {
	case isUniqueViolation(err):
		return &SaveError{Code: SaveErrorNotUnique, Message: "author with the same name already exists", Err: err}
	case isForeignKeyViolation(err):
		return &SaveError{Code: SaveErrorIllegalTargetID, Message: "referenced row does not exist", Err: err}
	default:
		return err
	}
}

func classifyDeleteError(err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
