package lexicon

import (
	"strings"
	"testing"

	"github.com/revelaction/wordsense/sense"
)

type mapReader struct {
	senses  map[string]map[sense.Class][]sense.Sense
	exc     map[string]map[sense.Class][]string
	lookups int
}

func (m *mapReader) Lookup(lemma string, class sense.Class) ([]sense.Sense, error) {
	m.lookups++
	if class == sense.Any {
		var all []sense.Sense
		for _, c := range sense.Classes() {
			all = append(all, m.senses[lemma][c]...)
		}
		return all, nil
	}
	return m.senses[lemma][class], nil
}

func (m *mapReader) Exceptions(form string, class sense.Class) ([]string, error) {
	return m.exc[form][class], nil
}

func newReader() *mapReader {
	s := func(id, def string) []sense.Sense {
		return []sense.Sense{{Id: id, Definition: def}}
	}
	return &mapReader{
		senses: map[string]map[sense.Class][]sense.Sense{
			"rate":  {sense.Noun: s("rate.n", "amount of a thing per unit"), sense.Verb: s("rate.v", "assign a rank")},
			"rat":   {sense.Noun: s("rat.n", "rodent")},
			"goose": {sense.Noun: s("goose.n", "bird")},
			"box":   {sense.Noun: s("box.n", "container")},
			"boxes": {sense.Noun: s("boxes.n", "a collective noun for testing")},
			"bank":  {sense.Noun: s("bank.n", "sloping land"), sense.Verb: s("bank.v", "do business with a bank")},
			"run":   {sense.Verb: s("run.v", "move fast")},
			"big":   {sense.Adjective: s("big.a", "large")},
			"fast":  {sense.Adverb: s("fast.r", "quickly")},
		},
		exc: map[string]map[sense.Class][]string{
			"geese": {sense.Noun: {"goose"}},
			"ran":   {sense.Verb: {"run"}},
		},
	}
}

func newTestLexicon(t *testing.T) (*Lexicon, *mapReader) {
	t.Helper()
	r := newReader()
	l, err := New(r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, r
}

func TestMorphy(t *testing.T) {
	l, _ := newTestLexicon(t)

	tests := []struct {
		form  string
		class sense.Class
		want  []string
	}{
		{"rates", sense.Noun, []string{"rate"}},
		{"rated", sense.Verb, []string{"rate"}},
		{"rating", sense.Verb, []string{"rate"}},
		{"geese", sense.Noun, []string{"goose"}},
		{"ran", sense.Verb, []string{"run"}},
		{"bigger", sense.Adjective, nil},
		{"boxes", sense.Noun, []string{"boxes", "box"}},
		{"bank", sense.Noun, []string{"bank"}},
		{"fast", sense.Adverb, []string{"fast"}},
		{"fastest", sense.Adverb, nil},
		{"unknown", sense.Noun, nil},
		{"bank", sense.Other, nil},
		{"bank", sense.Any, nil},
	}

	for _, tt := range tests {
		got, err := l.Morphy(tt.form, tt.class)
		if err != nil {
			t.Fatalf("Morphy(%s): %v", tt.form, err)
		}
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("Morphy(%s, %s) = %v, want %v", tt.form, tt.class, got, tt.want)
		}
	}
}

func TestLemmatize(t *testing.T) {
	l, _ := newTestLexicon(t)

	tests := []struct {
		word, want string
	}{
		{"rates", "rate"},
		{"boxes", "box"},
		{"geese", "goose"},
		{"ran", "ran"},
		{"xyzzy", "xyzzy"},
	}

	for _, tt := range tests {
		got, err := l.Lemmatize(tt.word)
		if err != nil {
			t.Fatalf("Lemmatize(%s): %v", tt.word, err)
		}
		if got != tt.want {
			t.Errorf("Lemmatize(%s) = %s, want %s", tt.word, got, tt.want)
		}
	}
}

func TestSenses(t *testing.T) {
	l, _ := newTestLexicon(t)

	got, err := l.Senses("Banks", sense.Any)
	if err != nil {
		t.Fatalf("Senses: %v", err)
	}
	if len(got) != 2 || got[0].Id != "bank.n" || got[1].Id != "bank.v" {
		t.Fatalf("expected noun then verb sense, got %+v", got)
	}

	got, err = l.Senses("bank", sense.Other)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no senses for class Other, got %+v, %v", got, err)
	}

	got, _ = l.Senses("banks", sense.Verb)
	if len(got) != 1 || got[0].Id != "bank.v" {
		t.Fatalf("expected verb sense only, got %+v", got)
	}

	got, _ = l.Senses("boxes", sense.Noun)
	if len(got) != 2 {
		t.Fatalf("expected senses of both forms, got %+v", got)
	}
}

func TestSensesCached(t *testing.T) {
	l, r := newTestLexicon(t)

	if _, err := l.Senses("bank", sense.Noun); err != nil {
		t.Fatal(err)
	}
	n := r.lookups

	if _, err := l.Senses("bank", sense.Noun); err != nil {
		t.Fatal(err)
	}
	if r.lookups != n {
		t.Errorf("expected cached lookups, got %d more", r.lookups-n)
	}
}

func TestIsStopword(t *testing.T) {
	l, _ := newTestLexicon(t)

	for _, w := range []string{"the", "The", "to", "I"} {
		if !l.IsStopword(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}

	for _, w := range []string{"bank", "river"} {
		if l.IsStopword(w) {
			t.Errorf("expected %q not to be a stopword", w)
		}
	}
}
