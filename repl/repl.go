// Package repl runs the interactive disambiguation prompt. Every line is a
// sentence followed by the index of the target word.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/render"
)

const quit = "quit"

var ErrEmptyLine = errors.New("empty line")

type Disambiguator interface {
	Disambiguate(sentence string, index int) (disambig.Result, error)
}

type Handler struct {
	Driver   Disambiguator
	Renderer *render.Text
	Err      io.Writer
}

func NewHandler(d Disambiguator, r *render.Text, errW io.Writer) *Handler {
	return &Handler{Driver: d, Renderer: r, Err: errW}
}

func (h *Handler) Run() error {
	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+T: toggle trace, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      📖 ", completer,
			prompt.OptionTitle("wsd repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlT,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.Trace = !h.Renderer.Trace
					fmt.Fprintf(h.Renderer.W, "Trace set to %t\n", h.Renderer.Trace)
				}}),
		)

		if strings.TrimSpace(in) == quit {
			return nil
		}

		history = append(history, in)

		if err := h.Eval(in); err != nil && !errors.Is(err, ErrEmptyLine) {
			fmt.Fprintf(h.Err, "wsd: %v\n", err)
		}
	}
}

// Eval disambiguates one input line and renders the result.
func (h *Handler) Eval(line string) error {
	sentence, index, err := Parse(line)
	if err != nil {
		return err
	}

	res, err := h.Driver.Disambiguate(sentence, index)
	if err != nil {
		return err
	}

	return h.Renderer.Render(res)
}

// Parse splits line into the sentence and the trailing index.
func Parse(line string) (string, int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", 0, ErrEmptyLine
	}

	if len(fields) < 2 {
		return "", 0, fmt.Errorf("expected <sentence> <index>, got %q", line)
	}

	last := fields[len(fields)-1]
	index, err := strconv.Atoi(last)
	if err != nil {
		return "", 0, fmt.Errorf("index must be an integer, got %q", last)
	}

	return strings.Join(fields[:len(fields)-1], " "), index, nil
}

// completer suggests the index of every word typed so far.
func completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}

	before := in.TextBeforeCursor()
	if before == "" || !strings.HasSuffix(before, " ") {
		return s
	}

	for i, w := range strings.Fields(before) {
		s = append(s, prompt.Suggest{Text: strconv.Itoa(i), Description: w})
	}

	return s
}
