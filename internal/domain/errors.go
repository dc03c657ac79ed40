package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of a creation run.
type ErrorKind int

const (
	KindInvalidArgument ErrorKind = iota + 1
	KindAlreadyExists
	KindService
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindService:
		return "ServiceError"
	default:
		return "Unknown"
	}
}

// Error is a classified failure. Its text is Message only, so service messages surface verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, which makes the sentinels below usable with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	// ErrInvalidArgument matches malformed inputs.
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}

	// ErrAlreadyExists matches a topic that exists while skip-if-exists is disabled.
	ErrAlreadyExists = &Error{Kind: KindAlreadyExists, Message: "already exists"}

	// ErrService matches failures returned by the Pub/Sub service.
	ErrService = &Error{Kind: KindService, Message: "service error"}
)

// InvalidArgument builds an InvalidArgument error with a formatted message.
func InvalidArgument(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// AlreadyExists builds the error returned when topicPath exists and skipping is disabled.
func AlreadyExists(topicPath string) error {
	return &Error{
		Kind:    KindAlreadyExists,
		Message: fmt.Sprintf("Topic %s already exists. Set skip-if-exists to true to skip creation.", topicPath),
	}
}

// ServiceError wraps err, keeping message as the visible text.
func ServiceError(message string, err error) error {
	return &Error{Kind: KindService, Message: message, Err: err}
}
