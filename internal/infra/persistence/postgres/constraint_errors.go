package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// constraintSignature recognises one kind of constraint failure. GORM only
// translates driver errors when the dialector has TranslateError enabled, so
// the raw PostgreSQL SQLSTATE and the SQLite message are matched too.
type constraintSignature struct {
	translated error
	fragments  []string
}

var (
	uniqueViolation = constraintSignature{
		translated: gorm.ErrDuplicatedKey,
		fragments:  []string{"23505", "duplicate key", "unique constraint"},
	}
	foreignKeyViolation = constraintSignature{
		translated: gorm.ErrForeignKeyViolated,
		fragments:  []string{"23503", "foreign key"},
	}
	notNullViolation = constraintSignature{
		fragments: []string{"23502", "null value", "not null"},
	}
)

func (s constraintSignature) matches(err error) bool {
	if err == nil {
		return false
	}
	if s.translated != nil && errors.Is(err, s.translated) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range s.fragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}

	return false
}

func isUniqueConstraintViolation(err error) bool {
	return uniqueViolation.matches(err)
}

func isForeignKeyConstraintViolation(err error) bool {
	return foreignKeyViolation.matches(err)
}

func isNotNullConstraintViolation(err error) bool {
	return notNullViolation.matches(err)
}

// violatedColumn reports which of the given columns a unique violation names,
// or "" when the driver message does not say.
func violatedColumn(err error, columns ...string) string {
	msg := strings.ToLower(err.Error())
	for _, column := range columns {
		// PostgreSQL names the index (idx_users_email), SQLite the column (users.email).
		if strings.Contains(msg, "_"+column) || strings.Contains(msg, "."+column) {
			return column
		}
	}

	return ""
}
