// Package render writes disambiguation results, sense listings and token
// tables for terminals, JSON consumers and the web form.
package render

import (
	"strings"

	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/sense"
)

var (
	Green     = "\033[1;32m"
	Teal      = "\033[1;36m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

func SupportedFormats() []string {
	return []string{FormatText, FormatJSON}
}

type Renderer interface {
	Render(disambig.Result) error
}

// Sentence returns the token texts of tokens separated by spaces, with the
// token at index colored.
func Sentence(tokens []sense.Token, index int, hasColor bool) string {
	var str strings.Builder
	for i, t := range tokens {
		if i > 0 && !t.Punct {
			str.WriteString(" ")
		}

		if i == index && hasColor {
			str.WriteString(Yellow256 + t.Text + Off)
			continue
		}

		str.WriteString(t.Text)
	}

	return str.String()
}

func color(s, c string, hasColor bool) string {
	if !hasColor {
		return s
	}
	return c + s + Off
}
