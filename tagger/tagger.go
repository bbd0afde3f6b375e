// Package tagger splits a sentence into tokens and assigns each one a Penn
// Treebank part-of-speech tag.
package tagger

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jdkato/prose/v2"
)

// Tagged is a token of a sentence and its tag.
type Tagged struct {
	Text string
	Tag  string
}

type Tagger interface {
	Tag(sentence string) ([]Tagged, error)
}

// DefaultCacheSize is the number of tagged strings kept by Prose.
const DefaultCacheSize = 4096

// Prose tags with the averaged perceptron model of prose. The results are
// cached since usage examples are tagged again for every sentence that
// reaches the same senses.
type Prose struct {
	cache *lru.Cache[string, []Tagged]
}

var _ Tagger = (*Prose)(nil)

func NewProse(cacheSize int) (*Prose, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, []Tagged](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Prose{cache: cache}, nil
}

func (p *Prose) Tag(sentence string) ([]Tagged, error) {
	if tagged, ok := p.cache.Get(sentence); ok {
		return tagged, nil
	}

	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tagging %q: %w", sentence, err)
	}

	tokens := doc.Tokens()
	tagged := make([]Tagged, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, Tagged{Text: tok.Text, Tag: tok.Tag})
	}

	p.cache.Add(sentence, tagged)
	return tagged, nil
}

// Tags returns the tags of tagged in order.
func Tags(tagged []Tagged) []string {
	tags := make([]string, len(tagged))
	for i, t := range tagged {
		tags[i] = t.Tag
	}
	return tags
}
