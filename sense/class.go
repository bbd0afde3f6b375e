package sense

import (
	"fmt"
	"strings"
)

// Class is the semantic part of speech class of the sense inventory.
type Class int

const (
	// Other is the class of tags that do not map to any inventory class.
	// No sense has class Other, lookups with it find nothing.
	Other Class = iota
	Noun
	Verb
	Adjective
	Adverb

	// Any is not a word class: lookups with Any are not restricted to a
	// class. It is never stored.
	Any
)

var classCodes = map[Class]string{
	Other:     "",
	Noun:      "n",
	Verb:      "v",
	Adjective: "a",
	Adverb:    "r",
}

var classLabels = map[Class]string{
	Other:     "Other",
	Noun:      "Noun",
	Verb:      "Verb",
	Adjective: "Adjective",
	Adverb:    "Adverb",
	Any:       "Any",
}

// Classes returns the inventory classes in lookup order.
func Classes() []Class {
	return []Class{Noun, Verb, Adjective, Adverb}
}

// Code returns the WordNet POS letter of the class ("" for Other).
func (c Class) Code() string {
	return classCodes[c]
}

// Label returns the human readable name of the class.
func (c Class) Label() string {
	if l, ok := classLabels[c]; ok {
		return l
	}
	return "Other"
}

func (c Class) String() string {
	return c.Label()
}

// ParseClass accepts WordNet POS letters ("n", "v", "a", "s", "r"), the
// long names ("noun", "adj", ...) and the empty string (Other).
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Other, nil
	case "n", "noun":
		return Noun, nil
	case "v", "verb":
		return Verb, nil
	case "a", "s", "adj", "adjective":
		return Adjective, nil
	case "r", "adv", "adverb":
		return Adverb, nil
	}

	return Other, fmt.Errorf("unknown class: %q", s)
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

func (c *Class) UnmarshalText(b []byte) error {
	parsed, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
