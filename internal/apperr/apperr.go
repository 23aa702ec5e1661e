// Package apperr memetakan kegagalan domain ke jenis error yang
// diterjemahkan layer HTTP menjadi status code (400/401/404).
package apperr

import "errors"

// Kind membedakan jenis kegagalan.
type Kind int

const (
	KindValidation Kind = iota
	KindAuthentication
	KindNotFound
)

// Error adalah error domain dengan pesan yang aman ditampilkan ke user.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
