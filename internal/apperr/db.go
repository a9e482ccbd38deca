package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the API recognizes.
const (
	CodeInvalidTextRepresentation = "22P02"
	CodeNotNullViolation          = "23502"
	CodeForeignKeyViolation       = "23503"
	CodeUniqueViolation           = "23505"
)

var pgCodes = map[string]struct {
	kind Kind
	msg  string
}{
	CodeInvalidTextRepresentation: {KindBadInput, "Bad Request"},
	CodeNotNullViolation:          {KindBadInput, "Not Null Violation"},
	CodeForeignKeyViolation:       {KindNotFound, "Foreign Key Violation"},
	CodeUniqueViolation:           {KindConflict, "Unique Constraint Violation"},
}

// FromDB translates a database error into a structured rejection.
//
// Order of resolution:
//  1. nil stays nil; an *Error already in the chain is returned as is.
//  2. *pgconn.PgError by SQLSTATE.
//  3. GORM sentinels (produced when TranslateError is on).
//  4. Driver message text (SQLite reports constraint failures this way).
//  5. Everything else becomes KindInternal.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := As(err); ok {
		return ae
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if m, ok := pgCodes[pgErr.Code]; ok {
			return Wrap(m.kind, m.msg, err)
		}
		return Internal(err)
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Wrap(KindNotFound, "", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(KindConflict, "Unique Constraint Violation", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Wrap(KindNotFound, "Foreign Key Violation", err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return Wrap(KindBadInput, "Check Constraint Violation", err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key"):
		return Wrap(KindConflict, "Unique Constraint Violation", err)
	case strings.Contains(msg, "foreign key constraint"):
		return Wrap(KindNotFound, "Foreign Key Violation", err)
	case strings.Contains(msg, "not null constraint"):
		return Wrap(KindBadInput, "Not Null Violation", err)
	}
	return Internal(err)
}
