package disambig

import (
	"strings"

	"go.uber.org/zap"

	"github.com/revelaction/wordsense/lexicon"
	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/tagger"
)

// Comparison is the outcome of matching one usage example against the
// sentence signature.
type Comparison struct {
	SenseId   string `json:"sense_id"`
	Example   string `json:"example"`
	Signature string `json:"signature"`
	Common    string `json:"common"`
	Accepted  bool   `json:"accepted"`
}

type Match struct {
	// Senses accepted, in acceptance order
	Senses []sense.Sense
	Trace  []Comparison
}

// Conclusive reports whether the match found more than one sense.
func (m Match) Conclusive() bool {
	return len(m.Senses) > 1
}

// ContextMatcher selects senses whose usage examples share the longest
// part-of-speech context with the sentence around the target word.
type ContextMatcher struct {
	tagger tagger.Tagger
	db     lexicon.Database
	logger *zap.Logger
}

func NewContextMatcher(t tagger.Tagger, db lexicon.Database, logger *zap.Logger) *ContextMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContextMatcher{tagger: t, db: db, logger: logger}
}

// Match compares signature with the signature of every usage example of
// every sense of word that contains word verbatim.
//
// A sense is accepted on its first example whose common substring contains
// the Placeholder and is at least as long as the threshold. The threshold
// starts just above the Placeholder alone and rises to each accepted
// length.
func (c *ContextMatcher) Match(word, signature string) (Match, error) {
	senses, err := c.db.Senses(word, sense.Any)
	if err != nil {
		return Match{}, err
	}

	threshold := len(Placeholder) + 3
	var m Match

	for _, s := range senses {
		for _, example := range s.Examples {
			tagged, err := c.tagger.Tag(example)
			if err != nil {
				return Match{}, err
			}

			exSig, ok := ExampleSignature(tagged, word)
			if !ok {
				continue
			}

			common := LongestCommonSubstring(signature, exSig)
			accepted := strings.Contains(common, Placeholder) && len(common) >= threshold

			c.logger.Debug("example",
				zap.String("sense", s.Id),
				zap.String("signature", exSig),
				zap.String("common", common),
				zap.Bool("accepted", accepted),
			)

			m.Trace = append(m.Trace, Comparison{
				SenseId:   s.Id,
				Example:   example,
				Signature: exSig,
				Common:    common,
				Accepted:  accepted,
			})

			if accepted {
				m.Senses = append(m.Senses, s)
				threshold = len(common)
				break
			}
		}
	}

	return m, nil
}
