package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation needs TranslateError on the dialector for the
// typed error; the SQLSTATE check covers connections opened without it.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23505") ||
		strings.Contains(errMsg, "duplicate key value")
}
