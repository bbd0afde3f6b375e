package disambig

import (
	"errors"
	"fmt"

	"github.com/revelaction/wordsense/sense"
)

// ErrPunctuation is returned when the target token has no letter or digit.
var ErrPunctuation = errors.New("target token is punctuation")

type InvalidIndexError struct {
	Index int
	Len   int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("index %d out of range for sentence of %d tokens", e.Index, e.Len)
}

type NoSenseFoundError struct {
	Word  string
	Class sense.Class
}

func (e *NoSenseFoundError) Error() string {
	switch e.Class {
	case sense.Any:
		return fmt.Sprintf("no sense found for %q", e.Word)
	case sense.Other:
		return fmt.Sprintf("no sense found for %q: its tag has no word class", e.Word)
	}
	return fmt.Sprintf("no sense found for %q as %s", e.Word, e.Class.Label())
}
