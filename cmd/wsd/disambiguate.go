package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/render"
)

// A sentence whose first word is a command name needs the explicit
// disambiguate command.
const usage = `wsd [global options] <word> <word>... <index>
   wsd [global options] disambiguate [options] <word> <word>... <index>
   wsd [global options] command [command options] [arguments...]`

type DisambiguateOptions struct {
	Sentence string
	Index    int
	Format   string
	Trace    bool
	NoColor  bool
}

// parseSentenceArgs joins all arguments but the last into the sentence; the
// last one is the index of the target word.
func parseSentenceArgs(args []string) (string, int, error) {
	if len(args) < 3 {
		return "", 0, errUsage
	}

	index, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return "", 0, fmt.Errorf("index must be an integer, got %q", args[len(args)-1])
	}

	return strings.Join(args[:len(args)-1], " "), index, nil
}

func disambiguateAction(c *cli.Context, ui UI) error {
	sentence, index, err := parseSentenceArgs(c.Args().Slice())
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(ui.Err, "usage: %s\n", usage)
		}
		return err
	}

	opts := DisambiguateOptions{
		Sentence: sentence,
		Index:    index,
		Format:   c.String("format"),
		Trace:    c.Bool("trace"),
		NoColor:  c.Bool("no-color"),
	}

	env, err := newEnv(c)
	if err != nil {
		return err
	}
	defer env.Close()

	d, err := env.Driver()
	if err != nil {
		return err
	}

	return disambiguateCommand(d, opts, ui)
}

func disambiguateCommand(d *disambig.Driver, opts DisambiguateOptions, ui UI) error {
	r, err := newRenderer(opts.Format, opts.Trace, hasColor(ui.Out, opts.NoColor), ui.Out)
	if err != nil {
		return err
	}

	res, err := d.Disambiguate(opts.Sentence, opts.Index)
	if err != nil {
		return err
	}

	return r.Render(res)
}

func newRenderer(format string, trace, color bool, w io.Writer) (render.Renderer, error) {
	switch format {
	case render.FormatText, "":
		r := render.NewText(w)
		r.Trace = trace
		r.HasColor = color
		return r, nil
	case render.FormatJSON:
		return render.NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(render.SupportedFormats(), ", "))
	}
}

// hasColor reports whether w is a terminal and color was not disabled.
func hasColor(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
