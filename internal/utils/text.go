package utils

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 reports file content that cannot be decoded as UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// DecodeUTF8Text returns data verbatim as a string, or ErrInvalidUTF8 when data is not valid UTF-8.
func DecodeUTF8Text(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return EmptyString, ErrInvalidUTF8
	}
	return string(data), nil
}
