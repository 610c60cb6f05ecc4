package lineio

import (
	"errors"
	"fmt"
)

var (
	ErrShortInput    = errors.New("short input")
	ErrCountOverflow = errors.New("count overflows int")
)

// FormatError reports text that should have been an integer.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid integer %q", e.Text)
	}
	return fmt.Sprintf("invalid integer %q: %v", e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ShortInputError reports that the source ran out after Got of Want lines.
type ShortInputError struct {
	Want int
	Got  int
}

func (e *ShortInputError) Error() string {
	return fmt.Sprintf("%v: want %d lines, got %d", ErrShortInput, e.Want, e.Got)
}

func (e *ShortInputError) Is(target error) bool {
	return target == ErrShortInput
}
