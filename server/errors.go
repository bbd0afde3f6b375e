package server

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/revelaction/wordsense/disambig"
)

type errBadIndex string

func (e errBadIndex) Error() string {
	return fmt.Sprintf("index must be an integer, got %q", string(e))
}

// StatusFor maps a disambiguation error to an HTTP status.
func StatusFor(err error) int {
	var indexErr *disambig.InvalidIndexError
	var noSense *disambig.NoSenseFoundError

	switch {
	case errors.As(err, &indexErr):
		return fiber.StatusBadRequest
	case errors.As(err, &noSense):
		return fiber.StatusNotFound
	case errors.Is(err, disambig.ErrPunctuation):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
