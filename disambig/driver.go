// Package disambig selects the dictionary sense of a word in a sentence.
//
// The Driver first tries the ContextMatcher, which compares the
// part-of-speech pattern around the word with the patterns of the senses'
// usage examples. When fewer than two senses match it falls back to the
// Frequency heuristic.
package disambig

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/revelaction/wordsense/lexicon"
	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/tagger"
)

type Method int

const (
	MethodContext Method = iota
	MethodFrequency
)

func (m Method) String() string {
	if m == MethodContext {
		return "context"
	}
	return "frequency"
}

func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// TieSeparator joins the definitions of tied senses.
const TieSeparator = "\n\n"

type Result struct {
	Sentence string `json:"sentence"`

	// Index is the target index as requested, Position the token position
	// it resolves to
	Index    int `json:"index"`
	Position int `json:"position"`

	Word      string        `json:"word"`
	Class     sense.Class   `json:"class"`
	Signature string        `json:"signature"`
	Method    Method        `json:"method"`
	Senses    []sense.Sense `json:"senses"`
	Tokens    []sense.Token `json:"tokens"`
	Trace     []Comparison  `json:"trace,omitempty"`
}

// Tied reports whether the result holds the senses of a conclusive context
// match rather than a single best sense.
func (r Result) Tied() bool {
	return r.Method == MethodContext
}

func (r Result) Definitions() []string {
	defs := make([]string, len(r.Senses))
	for i, s := range r.Senses {
		defs[i] = s.Definition
	}
	return defs
}

// Text is the display text of the result.
func (r Result) Text() string {
	return strings.Join(r.Definitions(), TieSeparator)
}

type Driver struct {
	tagger  tagger.Tagger
	db      lexicon.Database
	matcher *ContextMatcher
	freq    *Frequency
	logger  *zap.Logger
}

type Option func(*options)

type options struct {
	logger  *zap.Logger
	overlap bool
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithOverlap makes the frequency fallback count only definition words
// that occur in the sentence.
func WithOverlap(overlap bool) Option {
	return func(o *options) {
		o.overlap = overlap
	}
}

func NewDriver(t tagger.Tagger, db lexicon.Database, opts ...Option) *Driver {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Driver{
		tagger:  t,
		db:      db,
		matcher: NewContextMatcher(t, db, o.logger),
		freq:    NewFrequency(db, o.overlap),
		logger:  o.logger,
	}
}

// Disambiguate returns the sense of the token at index in sentence. A
// negative index counts from the end, Result.Position holds the resolved
// token position.
func (d *Driver) Disambiguate(sentence string, index int) (Result, error) {
	tagged, err := d.tagger.Tag(sentence)
	if err != nil {
		return Result{}, fmt.Errorf("tagger: %w", err)
	}

	pos := index
	if pos < 0 {
		pos += len(tagged)
	}
	if pos < 0 || pos >= len(tagged) {
		return Result{}, &InvalidIndexError{Index: index, Len: len(tagged)}
	}

	tokens, err := Annotate(tagged, d.db)
	if err != nil {
		return Result{}, fmt.Errorf("lexical database: %w", err)
	}

	target := tokens[pos]
	if target.Punct {
		return Result{}, ErrPunctuation
	}

	r := Result{
		Sentence:  sentence,
		Index:     index,
		Position:  pos,
		Word:      target.Text,
		Class:     ClassForTag(target.Tag),
		Signature: Signature(tagger.Tags(tagged), pos),
		Tokens:    tokens,
	}

	d.logger.Debug("signature", zap.String("word", r.Word), zap.String("signature", r.Signature))

	m, err := d.matcher.Match(r.Word, r.Signature)
	if err != nil {
		return Result{}, fmt.Errorf("context match: %w", err)
	}
	r.Trace = m.Trace

	if m.Conclusive() {
		r.Method = MethodContext
		r.Senses = m.Senses
		d.logger.Debug("conclusive context match", zap.Int("senses", len(m.Senses)))
		return r, nil
	}

	best, err := d.freq.Disambiguate(r.Word, r.Class, tokens)
	if err != nil {
		return Result{}, err
	}

	r.Method = MethodFrequency
	r.Senses = []sense.Sense{best}
	d.logger.Debug("frequency fallback", zap.String("sense", best.Id))
	return r, nil
}
