package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

func (e Error) Is(target error) bool {
	if t, ok := target.(Error); ok {
		return t.Code == e.Code
	}

	return false
}
