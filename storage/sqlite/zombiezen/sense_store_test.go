package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/revelaction/wordsense/sense"
)

func newTestStore(t *testing.T) *SenseStore {
	t.Helper()
	return newTestStoreAt(t, filepath.Join(t.TempDir(), "senses.db"))
}

func newTestStoreAt(t *testing.T, path string) *SenseStore {
	t.Helper()

	pool, err := NewPool(path)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if err := CreateSchemas(pool, SensesSchema); err != nil {
		t.Fatalf("CreateSchemas: %v", err)
	}

	return NewSenseStore(pool)
}

func TestSenseStoreWriteLookup(t *testing.T) {
	s := newTestStore(t)

	entries := []sense.Entry{
		{Lemma: "bank", Class: sense.Verb, Senses: []sense.Sense{
			{Id: "v1", Definition: "do business with a bank"},
		}},
		{Lemma: "bank", Class: sense.Noun, Senses: []sense.Sense{
			{Id: "n1", Definition: "sloping land beside a body of water", Lemmas: []string{"bank"}},
			{Id: "n2", Definition: "a financial institution", Examples: []string{"he cashed a check at the bank"}},
		}},
	}
	for _, e := range entries {
		if err := s.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	all, err := s.Lookup("bank", sense.Any)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	wantIds := []string{"n1", "n2", "v1"}
	if len(all) != len(wantIds) {
		t.Fatalf("expected %d senses, got %d", len(wantIds), len(all))
	}
	for i, id := range wantIds {
		if all[i].Id != id {
			t.Errorf("sense %d: expected %s, got %s", i, id, all[i].Id)
		}
	}

	if all[2].Class != sense.Verb {
		t.Errorf("expected verb class, got %v", all[2].Class)
	}

	other, err := s.Lookup("bank", sense.Other)
	if err != nil || len(other) != 0 {
		t.Fatalf("Lookup(bank, Other) = %v, %v", other, err)
	}

	nouns, err := s.Lookup("bank", sense.Noun)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(nouns) != 2 {
		t.Fatalf("expected 2 noun senses, got %d", len(nouns))
	}
	if nouns[0].Lemmas[0] != "bank" {
		t.Errorf("expected lemmas to round trip, got %v", nouns[0].Lemmas)
	}
	if nouns[1].Examples[0] != "he cashed a check at the bank" {
		t.Errorf("expected examples to round trip, got %v", nouns[1].Examples)
	}
}

func TestSenseStoreReplaceClass(t *testing.T) {
	s := newTestStore(t)

	e := sense.Entry{Lemma: "run", Class: sense.Verb, Senses: []sense.Sense{
		{Id: "a", Definition: "old"},
		{Id: "b", Definition: "old too"},
	}}
	if err := s.Write(e); err != nil {
		t.Fatalf("Write: %v", err)
	}

	e.Senses = []sense.Sense{{Id: "c", Definition: "new"}}
	if err := s.Write(e); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := s.Lookup("run", sense.Verb)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(got) != 1 || got[0].Id != "c" {
		t.Fatalf("expected replaced sense c, got %+v", got)
	}
}

func TestSenseStoreUnknownLemma(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Lookup("nothing", sense.Any)
	if err != nil {
		t.Fatalf("expected no error for unknown lemma, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no senses, got %d", len(got))
	}

	bases, err := s.Exceptions("nothing", sense.Noun)
	if err != nil || len(bases) != 0 {
		t.Fatalf("Exceptions(nothing) = %v, %v", bases, err)
	}
}

func TestSenseStoreExceptions(t *testing.T) {
	s := newTestStore(t)

	excs := []sense.Exception{
		{Form: "ran", Class: sense.Verb, Bases: []string{"run"}},
		{Form: "geese", Class: sense.Noun, Bases: []string{"wrong"}},
		{Form: "geese", Class: sense.Noun, Bases: []string{"goose"}},
	}
	for _, e := range excs {
		if err := s.WriteException(e); err != nil {
			t.Fatalf("WriteException: %v", err)
		}
	}

	bases, err := s.Exceptions("geese", sense.Noun)
	if err != nil {
		t.Fatalf("Exceptions: %v", err)
	}
	if len(bases) != 1 || bases[0] != "goose" {
		t.Fatalf("expected [goose], got %v", bases)
	}

	var forms []string
	err = s.EachException(func(e sense.Exception) error {
		forms = append(forms, e.Form)
		return nil
	})
	if err != nil {
		t.Fatalf("EachException: %v", err)
	}
	if len(forms) != 2 || forms[0] != "geese" || forms[1] != "ran" {
		t.Fatalf("expected [geese ran], got %v", forms)
	}
}

func TestSenseStoreEachEntry(t *testing.T) {
	s := newTestStore(t)

	entries := []sense.Entry{
		{Lemma: "bank", Class: sense.Verb, Senses: []sense.Sense{{Id: "v1", Definition: "d"}}},
		{Lemma: "bank", Class: sense.Noun, Senses: []sense.Sense{{Id: "n1", Definition: "d"}, {Id: "n3", Definition: "d"}}},
		{Lemma: "apple", Class: sense.Noun, Senses: []sense.Sense{{Id: "n2", Definition: "d"}}},
	}
	for _, e := range entries {
		if err := s.Write(e); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	var got []string
	var senses int
	err := s.EachEntry(func(e sense.Entry) error {
		got = append(got, e.Lemma+"."+e.Class.Code())
		senses += len(e.Senses)
		return nil
	})
	if err != nil {
		t.Fatalf("EachEntry: %v", err)
	}

	want := []string{"apple.n", "bank.n", "bank.v"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if senses != 4 {
		t.Errorf("expected 4 senses, got %d", senses)
	}

	n, err := s.Size()
	if err != nil || n != 3 {
		t.Fatalf("Size() = %d, %v", n, err)
	}
}

func TestSenseStoreReadOnlyPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "senses.db")

	rw := newTestStoreAt(t, path)
	if err := rw.Write(sense.Entry{Lemma: "bank", Class: sense.Noun, Senses: []sense.Sense{{Id: "n1", Definition: "sloping land"}}}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pool, err := NewReadOnlyPool(path)
	if err != nil {
		t.Fatalf("NewReadOnlyPool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	ro := NewSenseStore(pool)

	got, err := ro.Lookup("bank", sense.Noun)
	if err != nil || len(got) != 1 || got[0].Id != "n1" {
		t.Fatalf("Lookup = %+v, %v", got, err)
	}

	if err := ro.Write(sense.Entry{Lemma: "river", Class: sense.Noun, Senses: []sense.Sense{{Id: "r1"}}}); err == nil {
		t.Fatal("expected write through read-only pool to fail")
	}
	if err := ro.WriteException(sense.Exception{Form: "geese", Class: sense.Noun, Bases: []string{"goose"}}); err == nil {
		t.Fatal("expected exception write through read-only pool to fail")
	}
}
