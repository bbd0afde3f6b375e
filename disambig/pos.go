package disambig

import (
	"strings"

	"github.com/revelaction/wordsense/sense"
)

var tagPrefixes = []struct {
	prefix string
	class  sense.Class
}{
	{"NN", sense.Noun},
	{"VB", sense.Verb},
	{"JJ", sense.Adjective},
	{"RB", sense.Adverb},
}

// ClassForTag maps a Penn Treebank tag to a word class by its prefix.
func ClassForTag(tag string) sense.Class {
	for _, p := range tagPrefixes {
		if strings.HasPrefix(tag, p.prefix) {
			return p.class
		}
	}
	return sense.Other
}

// LabelForTag is the class label of tag, or tag itself when it has no class.
func LabelForTag(tag string) string {
	if c := ClassForTag(tag); c != sense.Other {
		return c.Label()
	}
	return tag
}
