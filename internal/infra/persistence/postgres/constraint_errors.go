package postgres

import (
	"regexp"
	"strings"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// Key (email)=(ann@example.com) already exists.
	duplicateDetailPattern = regexp.MustCompile(`\((.*?)\)=\((.*)\)`)
	// invalid input syntax for type uuid: "abc"
	castMessagePattern = regexp.MustCompile(`for type ([\w ]+): "(.*)"`)
)

// translateError converts driver failures into domain errors.
func translateError(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domainerrors.NewDuplicateError(duplicateValue(pgErr.Detail))
		case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidDatetimeFormat, pgerrcode.NumericValueOutOfRange:
			return castError(pgErr.Message)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return domainerrors.NewValidationError(pgErr.Message)
		case pgerrcode.ForeignKeyViolation:
			return domainerrors.NewValidationError("Referenced document does not exist")
		}
	}

	if isUniqueConstraintViolation(err) {
		return domainerrors.NewDuplicateError("")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.NewValidationError("Referenced document does not exist")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.NewValidationError(err.Error())
	}

	return domainerrors.NewDatabaseExecuteError(err, action)
}

func duplicateValue(detail string) string {
	match := duplicateDetailPattern.FindStringSubmatch(detail)
	if len(match) != 3 {
		return strings.TrimSpace(detail)
	}

	return match[2]
}

func castError(message string) error {
	match := castMessagePattern.FindStringSubmatch(message)
	if len(match) != 3 {
		return domainerrors.NewOperationalError("Invalid input syntax", 400)
	}

	return domainerrors.NewCastError(match[1], match[2])
}

// Helper functions for GORM's translated error values
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
