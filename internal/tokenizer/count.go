package tokenizer

import (
	"errors"
)

// ErrNilCounter is returned when counting is requested without a counter.
var ErrNilCounter = errors.New("nil tokenizer counter")

// CountDocument estimates tokens for the assembled Markdown document.
func CountDocument(counter Counter, document string) (int, error) {
	if counter == nil {
		return 0, ErrNilCounter
	}
	return counter.CountString(document)
}
