package lexicon

import (
	"strings"

	"github.com/revelaction/wordsense/sense"
)

type detachment struct {
	suffix, ending string
}

// detachments are the WordNet suffix rules per class, tried in order.
var detachments = map[sense.Class][]detachment{
	sense.Noun: {
		{"s", ""},
		{"ses", "s"},
		{"ves", "f"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	sense.Verb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	sense.Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
}

func detach(forms []string, class sense.Class) []string {
	var out []string
	for _, form := range forms {
		for _, d := range detachments[class] {
			if strings.HasSuffix(form, d.suffix) {
				out = append(out, form[:len(form)-len(d.suffix)]+d.ending)
			}
		}
	}
	return out
}

// Morphy returns the base forms of form in class that exist in the
// inventory, without duplicates.
//
// Exception list entries win over the suffix rules. Otherwise the rules are
// applied repeatedly, each round to the previous round's output, until a
// round yields a known form or no rule matches.
func (l *Lexicon) Morphy(form string, class sense.Class) ([]string, error) {
	if class == sense.Other || class == sense.Any {
		return nil, nil
	}

	exc, err := l.reader.Exceptions(form, class)
	if err != nil {
		return nil, err
	}

	if len(exc) > 0 {
		return l.known(append([]string{form}, exc...), class)
	}

	forms := detach([]string{form}, class)
	results, err := l.known(append([]string{form}, forms...), class)
	if err != nil || len(results) > 0 {
		return results, err
	}

	for len(forms) > 0 {
		forms = detach(forms, class)
		results, err := l.known(forms, class)
		if err != nil || len(results) > 0 {
			return results, err
		}
	}

	return nil, nil
}

func (l *Lexicon) known(forms []string, class sense.Class) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, f := range forms {
		if f == "" || seen[f] {
			continue
		}

		s, err := l.lookup(f, class)
		if err != nil {
			return nil, err
		}

		if len(s) > 0 {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}
