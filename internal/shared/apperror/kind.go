package apperror

import (
	"fmt"
	"net/http"
)

// Kind classifies a failure. The set is closed: new kinds are added here,
// never invented by callers.
type Kind string

const (
	// Client errors (4xx)
	KindValidationError  Kind = "VALIDATION_ERROR"
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindForbidden        Kind = "FORBIDDEN"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindPlanLimitReached Kind = "PLAN_LIMIT_REACHED"

	// Server errors (5xx)
	KindDatabaseError Kind = "DATABASE_ERROR"
	KindInternalError Kind = "INTERNAL_ERROR"
)

var statusByKind = map[Kind]int{
	KindValidationError:  http.StatusBadRequest,
	KindUnauthorized:     http.StatusUnauthorized,
	KindForbidden:        http.StatusForbidden,
	KindNotFound:         http.StatusNotFound,
	KindConflict:         http.StatusConflict,
	KindPlanLimitReached: http.StatusPaymentRequired,
	KindDatabaseError:    http.StatusInternalServerError,
	KindInternalError:    http.StatusInternalServerError,
}

// Kinds returns every member of the enumeration in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindValidationError,
		KindUnauthorized,
		KindForbidden,
		KindNotFound,
		KindConflict,
		KindPlanLimitReached,
		KindDatabaseError,
		KindInternalError,
	}
}

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k belongs to the enumeration.
func (k Kind) Valid() bool {
	_, ok := statusByKind[k]
	return ok
}

// UnmarshalText refuses codes outside the enumeration so decoded envelopes
// never carry an unknown kind.
func (k *Kind) UnmarshalText(text []byte) error {
	candidate := Kind(text)
	if !candidate.Valid() {
		return fmt.Errorf("apperror: unknown error kind %q", string(text))
	}
	*k = candidate
	return nil
}

// HTTPStatus returns the conventional status for kind. Unknown kinds are
// treated as internal failures.
func HTTPStatus(kind Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}
