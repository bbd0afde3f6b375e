package stat

import (
	"github.com/revelaction/wordsense/sense"
)

type Handler struct {
	stats  Stats
	lemmas map[string]bool
}

type Stats struct {
	NumLemmas   int
	NumEntries  int
	NumSenses   int
	NumExamples int

	// senses with at least one usage example, the ones the context
	// matcher can use
	NumWithExamples int

	NumExceptions int

	SensesPerEntryMean float64
	SensesPerEntryDis  map[int]int

	EntriesByClass map[sense.Class]int
	SensesByClass  map[sense.Class]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		SensesPerEntryDis: map[int]int{},
		EntriesByClass:    map[sense.Class]int{},
		SensesByClass:     map[sense.Class]int{},
	}
	return &Handler{
		stats:  stats,
		lemmas: map[string]bool{},
	}
}

func (h *Handler) Aggregate(entry sense.Entry) {
	if !h.lemmas[entry.Lemma] {
		h.lemmas[entry.Lemma] = true
		h.stats.NumLemmas++
	}

	h.stats.NumEntries++
	h.stats.EntriesByClass[entry.Class]++
	h.stats.SensesPerEntryDis[len(entry.Senses)]++

	for _, s := range entry.Senses {
		h.stats.NumSenses++
		h.stats.SensesByClass[entry.Class]++
		h.stats.NumExamples += len(s.Examples)
		if len(s.Examples) > 0 {
			h.stats.NumWithExamples++
		}
	}

	h.stats.SensesPerEntryMean = float64(h.stats.NumSenses) / float64(h.stats.NumEntries)
}

func (h *Handler) AggregateException(sense.Exception) {
	h.stats.NumExceptions++
}
