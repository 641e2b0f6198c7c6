package media

import (
	"errors"
	"fmt"
)

// Code identifies a media failure class.
type Code string

const (
	CodeNoFileProvided       Code = "NO_FILE_PROVIDED"
	CodeTooManyFiles         Code = "TOO_MANY_FILES"
	CodeFileTooLarge         Code = "FILE_TOO_LARGE"
	CodeUnsupportedMediaType Code = "UNSUPPORTED_MEDIA_TYPE"
	CodeInvalidFileName      Code = "INVALID_FILE_NAME"
	CodeDirectoryUnavailable Code = "DIRECTORY_UNAVAILABLE"
	CodeWriteFailed          Code = "WRITE_FAILED"
	CodeDeleteFailed         Code = "DELETE_FAILED"
)

// Error is returned by every operation in this package. errors.Is matches two
// Errors when their codes are equal, so callers compare against the Err*
// sentinels below.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrNoFileProvided       = &Error{Code: CodeNoFileProvided, Message: "file(s) are required"}
	ErrTooManyFiles         = &Error{Code: CodeTooManyFiles, Message: "too many files"}
	ErrFileTooLarge         = &Error{Code: CodeFileTooLarge, Message: "file too large"}
	ErrUnsupportedMediaType = &Error{Code: CodeUnsupportedMediaType, Message: "unsupported media type"}
	ErrInvalidFileName      = &Error{Code: CodeInvalidFileName, Message: "invalid file name"}
	ErrDirectoryUnavailable = &Error{Code: CodeDirectoryUnavailable, Message: "storage directory unavailable"}
	ErrWriteFailed          = &Error{Code: CodeWriteFailed, Message: "write failed"}
	ErrDeleteFailed         = &Error{Code: CodeDeleteFailed, Message: "delete failed"}
)

func newError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// IsClientError reports whether err is a media error the client can fix by
// correcting its input. Environment failures (directory, write, delete) are
// not client errors.
func IsClientError(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case CodeNoFileProvided, CodeTooManyFiles, CodeFileTooLarge,
		CodeUnsupportedMediaType, CodeInvalidFileName:
		return true
	}
	return false
}
