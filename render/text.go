package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/sense"
)

// Text writes the line oriented terminal output.
type Text struct {
	W        io.Writer
	HasColor bool

	// Trace prints every example signature and its common substring with
	// the sentence
	Trace bool
}

var _ Renderer = (*Text)(nil)

func NewText(w io.Writer) *Text {
	return &Text{W: w}
}

func (r *Text) Render(res disambig.Result) error {
	fmt.Fprintf(r.W, "Marked : %s\n", res.Signature)
	fmt.Fprintf(r.W, "Word : %s\n", color(res.Word, Yellow256, r.HasColor))
	fmt.Fprintf(r.W, "POS : %s\n", res.Class.Code())

	if r.Trace {
		fmt.Fprintf(r.W, "Sentence : %s\n", Sentence(res.Tokens, res.Position, r.HasColor))
		for _, c := range res.Trace {
			mark := " "
			if c.Accepted {
				mark = color("*", Green, r.HasColor)
			}
			fmt.Fprintf(r.W, "%s %s %s\n", mark, c.Signature, color(c.Common, Grey256, r.HasColor))
		}
	}

	if res.Tied() {
		_, err := fmt.Fprintln(r.W, res.Text())
		return err
	}

	_, err := fmt.Fprintf(r.W, "Best Sense : %s\n", res.Text())
	return err
}

// Senses lists senses numbered, one definition per line followed by its
// examples.
func (r *Text) Senses(word string, senses []sense.Sense) error {
	if len(senses) == 0 {
		_, err := fmt.Fprintf(r.W, "no senses for %q\n", word)
		return err
	}

	for i, s := range senses {
		prefix := fmt.Sprintf("%2d. %s ", i+1, s.Class.Code())
		fmt.Fprintf(r.W, "%s%s %s\n", prefix, color(s.Id, Gray, r.HasColor), s.Definition)

		if len(s.Lemmas) > 0 {
			fmt.Fprintf(r.W, "%s%s\n", strings.Repeat(" ", len(prefix)), color(strings.Join(s.Lemmas, ", "), Teal, r.HasColor))
		}

		for _, ex := range s.Examples {
			fmt.Fprintf(r.W, "%s\"%s\"\n", strings.Repeat(" ", len(prefix)), ex)
		}
	}

	return nil
}

// Tokens prints a table of the annotated tokens of a sentence.
func (r *Text) Tokens(tokens []sense.Token) error {
	cols := []string{"#", "text", "tag", "label", "lemma", "flags"}
	rows := [][]string{cols}

	for _, t := range tokens {
		var flags []string
		if t.Punct {
			flags = append(flags, "punct")
		}
		if t.Stop {
			flags = append(flags, "stop")
		}
		if t.Annotated() {
			flags = append(flags, fmt.Sprintf("senses:%d", strings.Count(t.Definitions, disambig.DefinitionSeparator)+1))
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", t.Index),
			t.Text,
			t.Tag,
			t.Label,
			t.Lemma,
			strings.Join(flags, ","),
		})
	}

	widths := make([]int, len(cols))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for n, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				line.WriteString(cell)
				break
			}
			line.WriteString(runewidth.FillRight(cell, widths[i]+2))
		}

		text := strings.TrimRight(line.String(), " ")
		if n == 0 {
			text = color(text, Gray, r.HasColor)
		}

		if _, err := fmt.Fprintln(r.W, text); err != nil {
			return err
		}
	}

	return nil
}
