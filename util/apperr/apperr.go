package apperr

import (
	"errors"
	"net/http"
)

// ErrCode is the closed set of failures services are allowed to surface.
// Everything else is an internal error and comes back as 500.
type ErrCode string

const (
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrAlreadyExists    ErrCode = "ALREADY_EXISTS"
	ErrAlreadyCancelled ErrCode = "ALREADY_CANCELLED"
	ErrNotAvailable     ErrCode = "NOT_AVAILABLE"
	ErrNotOwner         ErrCode = "NOT_OWNER"
	ErrNotParticipant   ErrCode = "NOT_PARTICIPANT"
	ErrOwnAnnouncement  ErrCode = "OWN_ANNOUNCEMENT"
	ErrInvalidCreds     ErrCode = "INVALID_CREDENTIALS"
	ErrInvalidToken     ErrCode = "INVALID_TOKEN"
	ErrBadInput         ErrCode = "BAD_INPUT"
	ErrImageType        ErrCode = "IMAGE_TYPE_NOT_SUPPORTED"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }

func New(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts the error code; "" means uncoded (internal).
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Status maps a code to its HTTP status. Uncoded errors are 500.
func Status(c ErrCode) int {
	switch c {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrAlreadyExists, ErrAlreadyCancelled, ErrNotAvailable:
		return http.StatusConflict
	case ErrNotOwner, ErrNotParticipant:
		return http.StatusForbidden
	case ErrInvalidCreds, ErrInvalidToken:
		return http.StatusUnauthorized
	case ErrBadInput, ErrOwnAnnouncement:
		return http.StatusBadRequest
	case ErrImageType:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
