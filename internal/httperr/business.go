package httperr

import (
	"errors"
	"net/http"
)

// BusinessError is the typed error the core returns to the API layer.
// The code is the stable contract; the status tells the handler which
// transport status the taxonomy member maps to.
type BusinessError struct {
	Code    string
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrValidation: malformed or inconsistent input.
func ErrValidation(code, message string) error {
	return BusinessError{Code: code, Status: http.StatusBadRequest, Message: message}
}

// ErrConflict: overlapping or duplicate slot.
func ErrConflict(code, message string) error {
	return BusinessError{Code: code, Status: http.StatusConflict, Message: message}
}

// ErrForbidden: role or ownership check failed.
func ErrForbidden(code, message string) error {
	return BusinessError{Code: code, Status: http.StatusForbidden, Message: message}
}

// ErrNotFound: referenced field/booking/user absent.
func ErrNotFound(code, message string) error {
	return BusinessError{Code: code, Status: http.StatusNotFound, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
