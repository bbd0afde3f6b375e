package disambig

import (
	"strings"

	"github.com/revelaction/wordsense/lexicon"
	"github.com/revelaction/wordsense/sense"
)

// Frequency picks the sense whose definition repeats a single word the
// most. The first sense wins ties.
type Frequency struct {
	db lexicon.Database

	// overlap restricts the counted definition words to those of the
	// sentence
	overlap bool
}

func NewFrequency(db lexicon.Database, overlap bool) *Frequency {
	return &Frequency{db: db, overlap: overlap}
}

func (f *Frequency) Disambiguate(word string, class sense.Class, context []sense.Token) (sense.Sense, error) {
	senses, err := f.db.Senses(word, class)
	if err != nil {
		return sense.Sense{}, err
	}

	if len(senses) == 0 {
		return sense.Sense{}, &NoSenseFoundError{Word: word, Class: class}
	}

	var inSentence map[string]bool
	if f.overlap {
		inSentence = map[string]bool{}
		for _, t := range context {
			inSentence[lexicon.Fold(t.Text)] = true
		}
	}

	best, bestScore := 0, -1
	for i, s := range senses {
		score := f.score(s.Definition, inSentence)
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	return senses[best], nil
}

// score is the highest count of a single word of definition.
func (f *Frequency) score(definition string, inSentence map[string]bool) int {
	counts := map[string]int{}
	max := 0
	for _, w := range strings.Fields(definition) {
		if inSentence != nil && !inSentence[lexicon.Fold(w)] {
			continue
		}
		counts[w]++
		if counts[w] > max {
			max = counts[w]
		}
	}
	return max
}
