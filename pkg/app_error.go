package pkg

import "fmt"

// AppError is the error envelope returned by every HTTP handler.
//
// Code is a stable, endpoint-specific identifier (e.g. ORDER_NOT_FOUND) while Kind
// groups codes into the service-wide taxonomy (NOT_FOUND, INVALID_ARGUMENT, CONFLICT,
// STORAGE_FAILURE, ...). The wrapped error is kept for logging and never serialized.
type AppError struct {
	Code       string
	Kind       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithKind sets the taxonomy kind and returns the same error for chaining.
func (e *AppError) WithKind(kind string) *AppError {
	e.Kind = kind
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Kind: e.Kind, Message: e.Message}
}
