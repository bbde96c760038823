// Package loxerr holds the error type shared by every pipeline stage.
package loxerr

import (
	"errors"
	"fmt"
)

// Category is the coarse stage an error came from.
type Category string

const (
	LexingError  Category = "LexingError"
	ParsingError Category = "ParsingError"
	RuntimeError Category = "RuntimeError"
)

// Error carries the offending source line alongside the message.
type Error struct {
	Line     int
	Category Category
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s: %s", e.Line, e.Category, e.Message)
}

func Lexing(line int, format string, args ...any) *Error {
	return &Error{line, LexingError, fmt.Sprintf(format, args...)}
}

func Parsing(line int, format string, args ...any) *Error {
	return &Error{line, ParsingError, fmt.Sprintf(format, args...)}
}

func Runtime(line int, format string, args ...any) *Error {
	return &Error{line, RuntimeError, fmt.Sprintf(format, args...)}
}

// CategoryOf returns the category of err, and false if err is not (and does
// not wrap) an *Error.
func CategoryOf(err error) (Category, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Category, true
	}
	return "", false
}
