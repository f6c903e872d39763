package failure

import (
	"errors"
	"net/http"
)

// Failure is an expected business outcome carried as an error. Codes follow
// the HTTP status vocabulary so callers can branch on GetCode.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidStatusFilter = &Failure{Code: http.StatusBadRequest, Message: "invalid status filter"}
var EmptyUpdate = &Failure{Code: http.StatusBadRequest, Message: "update request cannot be empty"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsExpected reports whether err is a business outcome rather than an
// infrastructure failure.
func IsExpected(err error) bool {
	if err == nil {
		return false
	}

	return GetCode(err) < http.StatusInternalServerError
}
