package errors

import (
	stdErrors "errors"
	"fmt"
)

type ErrorCode string

const (
	ErrDB           ErrorCode = "some error in storage layer"
	ErrNoDataFound  ErrorCode = "no data found"
	ErrInvalidInput ErrorCode = "invalid input"

	ErrUnauthorized ErrorCode = "Unauthorized"

	ErrForbidden ErrorCode = "access is forbidden"
)

type domainError struct {
	error
	errorCode ErrorCode
}

func (e domainError) Error() string {
	if e.error.Error() == "" {
		return string(e.errorCode)
	}
	return fmt.Sprintf("%s: %s", e.error.Error(), e.errorCode)
}

func (e domainError) Unwrap() error {
	return stdErrors.Unwrap(e.error)
}

func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var dErr domainError
	if stdErrors.As(err, &dErr) {
		return dErr.errorCode
	}

	return ""
}

func NewDomainError(errorCode ErrorCode, format string, args ...interface{}) error {
	return domainError{
		error:     fmt.Errorf(format, args...),
		errorCode: errorCode,
	}
}

func WrapIntoDomainError(err error, errorCode ErrorCode, msg string) error {
	return domainError{
		error:     fmt.Errorf("%s: [%w]", msg, err),
		errorCode: errorCode,
	}
}
