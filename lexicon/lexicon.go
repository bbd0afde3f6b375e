// Package lexicon answers sense, lemma and stopword queries over a sense
// inventory, reducing inflected words to their base forms first.
package lexicon

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kljensen/snowball/english"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/storage"
)

// Database is the lexical database queried by the disambiguators.
type Database interface {
	// Senses returns the senses of every base form of word in class. The
	// Any class queries all classes, Other finds nothing.
	Senses(word string, class sense.Class) ([]sense.Sense, error)

	// Lemmatize returns the shortest noun base form of word, or word itself.
	Lemmatize(word string) (string, error)

	IsStopword(word string) bool
}

const DefaultCacheSize = 8192

type lookupKey struct {
	form  string
	class sense.Class
}

type Lexicon struct {
	reader storage.SenseReader
	logger *zap.Logger
	cache  *lru.Cache[lookupKey, []sense.Sense]
}

var _ Database = (*Lexicon)(nil)

type Option func(*options)

type options struct {
	logger    *zap.Logger
	cacheSize int
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

func New(reader storage.SenseReader, opts ...Option) (*Lexicon, error) {
	o := options{logger: zap.NewNop(), cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	cache, err := lru.New[lookupKey, []sense.Sense](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("lexicon cache: %w", err)
	}

	return &Lexicon{reader: reader, logger: o.logger, cache: cache}, nil
}

// Fold lower-cases word and puts it in canonical composed form.
func Fold(word string) string {
	return cases.Lower(language.English).String(norm.NFC.String(word))
}

func (l *Lexicon) Senses(word string, class sense.Class) ([]sense.Sense, error) {
	word = Fold(word)

	classes := []sense.Class{class}
	if class == sense.Any {
		classes = sense.Classes()
	}

	var senses []sense.Sense
	for _, c := range classes {
		forms, err := l.Morphy(word, c)
		if err != nil {
			return nil, err
		}

		for _, form := range forms {
			s, err := l.lookup(form, c)
			if err != nil {
				return nil, err
			}
			senses = append(senses, s...)
		}
	}

	l.logger.Debug("senses", zap.String("word", word), zap.Stringer("class", class), zap.Int("count", len(senses)))
	return senses, nil
}

func (l *Lexicon) Lemmatize(word string) (string, error) {
	forms, err := l.Morphy(word, sense.Noun)
	if err != nil {
		return "", err
	}

	if len(forms) == 0 {
		return word, nil
	}

	shortest := forms[0]
	for _, f := range forms[1:] {
		if len(f) < len(shortest) {
			shortest = f
		}
	}
	return shortest, nil
}

func (l *Lexicon) IsStopword(word string) bool {
	return english.IsStopWord(Fold(word))
}

func (l *Lexicon) lookup(form string, class sense.Class) ([]sense.Sense, error) {
	key := lookupKey{form, class}
	if s, ok := l.cache.Get(key); ok {
		return s, nil
	}

	s, err := l.reader.Lookup(form, class)
	if err != nil {
		return nil, fmt.Errorf("lookup %s.%s: %w", form, class.Code(), err)
	}

	l.cache.Add(key, s)
	return s, nil
}
