package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// BusinessError is a domain failure the API maps directly onto an HTTP
// status. Code is a stable snake_case identifier, Message is the
// human-readable reason returned to the client.
type BusinessError struct {
	Status  int
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrValidation(code, format string, args ...any) error {
	return BusinessError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func ErrNotFound(code, format string, args ...any) error {
	return BusinessError{
		Status:  http.StatusNotFound,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func ErrForbidden(code, format string, args ...any) error {
	return BusinessError{
		Status:  http.StatusForbidden,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsStatus(err error, status int) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Status == status
	}
	return false
}

// AsValidation wraps any lower-level construction failure into a 400
// BusinessError. Not-found and forbidden errors pass through untouched.
func AsValidation(err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return be
	}
	return ErrValidation("invalid_input", "%s", err.Error())
}
