package disambig

import (
	"strings"

	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/tagger"
)

// fakeTagger splits on spaces, detaches a final "." or "?" and tags each
// word from a fixed table, defaulting to NN.
type fakeTagger struct {
	tags  map[string]string
	calls int
}

func (f *fakeTagger) Tag(sentence string) ([]tagger.Tagged, error) {
	f.calls++
	var out []tagger.Tagged
	for _, w := range strings.Fields(sentence) {
		var punct string
		if n := len(w); n > 1 && (w[n-1] == '.' || w[n-1] == '?') {
			w, punct = w[:n-1], w[n-1:]
		}

		tag, ok := f.tags[w]
		if !ok {
			tag = "NN"
		}
		out = append(out, tagger.Tagged{Text: w, Tag: tag})

		if punct != "" {
			out = append(out, tagger.Tagged{Text: punct, Tag: "."})
		}
	}
	return out, nil
}

var bankTags = map[string]string{
	"I": "PRP", "he": "PRP", "they": "PRP", "you": "PRP",
	"sat": "VBD", "pulled": "VBD", "cashed": "VBD",
	"on": "IN", "at": "IN", "in": "IN",
	"the": "DT", "a": "DT", "this": "DT",
	"up": "RP", "Where": "WRB", "do": "VBP",
	"must": "MD", "go": "VB", "two": "CD",
	".": ".", "?": ".",
}

type fakeDB struct {
	senses    map[string][]sense.Sense
	stopwords map[string]bool
	lemmas    []string
}

func (f *fakeDB) Senses(word string, class sense.Class) ([]sense.Sense, error) {
	var out []sense.Sense
	for _, s := range f.senses[strings.ToLower(word)] {
		if class == sense.Any || s.Class == class {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeDB) Lemmatize(word string) (string, error) {
	f.lemmas = append(f.lemmas, word)
	return strings.TrimSuffix(word, "s"), nil
}

func (f *fakeDB) IsStopword(word string) bool {
	return f.stopwords[strings.ToLower(word)]
}

func bankDB() *fakeDB {
	return &fakeDB{
		senses: map[string][]sense.Sense{
			"bank": {
				{Id: "n1", Class: sense.Noun, Definition: "sloping land beside a body of water",
					Examples: []string{"they pulled the canoe up on the bank"}},
				{Id: "n2", Class: sense.Noun, Definition: "a financial institution that accepts deposits",
					Examples: []string{"he cashed a check at the bank"}},
				{Id: "v1", Class: sense.Verb, Definition: "do business with a bank",
					Examples: []string{"Where do you bank in this town?"}},
			},
			"sat": {
				{Id: "sit", Class: sense.Verb, Definition: "be seated"},
			},
		},
		stopwords: map[string]bool{"i": true, "on": true, "the": true, "he": true, "at": true},
	}
}
