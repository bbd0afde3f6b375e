package disambig

import (
	"strings"
	"unicode"

	"github.com/revelaction/wordsense/lexicon"
	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/tagger"
)

// DefinitionSeparator joins the definitions of an annotated token.
const DefinitionSeparator = "; \n"

// IsPunctuation reports whether s has no letter and no digit.
func IsPunctuation(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Annotate builds the tokens of a tagged sentence. Tokens that are neither
// punctuation nor stopwords and have senses in their tag's class get a
// lemma, a class label and all their definitions.
func Annotate(tagged []tagger.Tagged, db lexicon.Database) ([]sense.Token, error) {
	tokens := make([]sense.Token, len(tagged))

	for i, t := range tagged {
		tok := sense.Token{Index: i, Text: t.Text, Tag: t.Tag}

		switch {
		case IsPunctuation(t.Text):
			tok.Punct = true
		case db.IsStopword(t.Text):
			tok.Stop = true
		default:
			senses, err := db.Senses(t.Text, ClassForTag(t.Tag))
			if err != nil {
				return nil, err
			}
			if len(senses) == 0 {
				break
			}

			lemma, err := db.Lemmatize(lexicon.Fold(t.Text))
			if err != nil {
				return nil, err
			}

			defs := make([]string, len(senses))
			for j, s := range senses {
				defs[j] = s.Definition
			}

			tok.Lemma = lemma
			tok.Label = LabelForTag(t.Tag)
			tok.Definitions = strings.Join(defs, DefinitionSeparator)
		}

		tokens[i] = tok
	}

	return tokens, nil
}
