package pkg

import (
	"errors"
	"strings"

	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"gorm.io/gorm"
)

// DBError maps a storage error onto the business error reported to clients.
// what names the missing or duplicated entity in the message.
func DBError(err error, what string) *response.BusinessError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return response.NotFoundError(what + " not found")
	case IsUniqueViolation(err):
		return response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage(what+" already exists"),
			response.WithError(err),
		)
	default:
		return response.Internal(err)
	}
}

// IsUniqueViolation reports a duplicate key, translated by gorm or raw from the driver.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
