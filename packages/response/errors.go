package response

import (
	"errors"
	"net/http"
)

// Business error codes.
const (
	Fail ResponseCode = 0
	// request body could not be parsed
	ParseError ResponseCode = 1
	// well-formed input that violates a field rule
	InvalidParameter ResponseCode = 2
	Unauthorized     ResponseCode = 3
	Forbidden        ResponseCode = 4
	NotFound         ResponseCode = 5
	Conflict         ResponseCode = 6
	// confirmation code did not match
	InvalidCredentials ResponseCode = 7
)

type BusinessError struct {
	Code   ResponseCode
	Msg    string
	Err    error
	Fields map[string][]string
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status the error is rendered with.
func (e *BusinessError) Status() int {
	return HTTPStatus(e.Code)
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

// WithErrorField attaches a message to a named input field.
func WithErrorField(field, msg string) ErrorOption {
	return func(be *BusinessError) {
		if be.Fields == nil {
			be.Fields = make(map[string][]string)
		}
		be.Fields[field] = append(be.Fields[field], msg)
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// HTTPStatus maps a business code onto the HTTP status used at the request boundary.
func HTTPStatus(code ResponseCode) int {
	switch code {
	case ParseError, InvalidParameter, InvalidCredentials:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds an InvalidParameter error naming the offending field.
func Validation(field, msg string) *BusinessError {
	return NewBusinessError(
		WithErrorCode(InvalidParameter),
		WithErrorMessage(msg),
		WithErrorField(field, msg),
	)
}

func NotFoundError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(NotFound), WithErrorMessage(msg))
}

func ConflictError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Conflict), WithErrorMessage(msg))
}

func Internal(err error) *BusinessError {
	return NewBusinessError(
		WithErrorCode(Fail),
		WithErrorMessage("internal server error"),
		WithError(err),
	)
}

// AsBusinessError unwraps err into a BusinessError, wrapping unknown errors as Fail.
func AsBusinessError(err error) *BusinessError {
	if err == nil {
		return nil
	}
	var be *BusinessError
	if errors.As(err, &be) {
		return be
	}
	return Internal(err)
}
