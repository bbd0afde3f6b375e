package storage

import (
	"errors"

	"github.com/revelaction/wordsense/sense"
)

// ErrReadOnly is returned by the writer methods of read-only backends.
var ErrReadOnly = errors.New("read-only storage")

// SenseReader defines the lookups the lexicon needs from a sense inventory.
type SenseReader interface {
	// Lookup returns the senses stored for the exact lemma, in inventory
	// order. With class sense.Any the senses of all classes are
	// returned, following the sense.Classes() order.
	// An unknown lemma is not an error: it returns no senses.
	Lookup(lemma string, class sense.Class) ([]sense.Sense, error)

	// Exceptions returns the irregular base forms recorded for an
	// inflected form, f.ex. "geese" -> ["goose"].
	Exceptions(form string, class sense.Class) ([]string, error)
}

// SenseIterator defines the full scan operations used to copy an inventory.
type SenseIterator interface {
	// Size returns the number of entries (lemma, class) of the inventory.
	Size() (int, error)

	// EachEntry calls fn for each entry, classes in sense.Classes() order.
	EachEntry(fn func(sense.Entry) error) error

	// EachException calls fn for each irregular form.
	EachException(fn func(sense.Exception) error) error
}

// SenseWriter defines write operations for sense storage
type SenseWriter interface {
	// Write persists an entry, replacing the previous senses of the lemma
	// for the entry class.
	Write(entry sense.Entry) error

	// WriteException persists an irregular form.
	WriteException(exc sense.Exception) error
}

// SenseRepository combines read, scan and write operations
type SenseRepository interface {
	SenseReader
	SenseIterator
	SenseWriter
}
