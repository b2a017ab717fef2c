package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// UniqueViolation код ошибки postgres при нарушении уникального индекса
const UniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation возвращает true, если err вызвана нарушением уникального индекса
func IsUniqueViolation(err error) bool {
	return hasCode(err, UniqueViolation)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}
