package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordsense/disambig"
	"github.com/revelaction/wordsense/lexicon"
	"github.com/revelaction/wordsense/render"
	"github.com/revelaction/wordsense/tagger"
)

type TagOptions struct {
	Sentence string
	Format   string
}

func tagAction(c *cli.Context, ui UI) error {
	if c.NArg() == 0 {
		fmt.Fprintf(ui.Err, "usage: wsd tag <word>...\n")
		return errUsage
	}

	opts := TagOptions{
		Sentence: strings.Join(c.Args().Slice(), " "),
		Format:   c.String("format"),
	}

	env, err := newEnv(c)
	if err != nil {
		return err
	}
	defer env.Close()

	lex, err := env.Lexicon()
	if err != nil {
		return err
	}

	t, err := env.Tagger()
	if err != nil {
		return err
	}

	return tagCommand(t, lex, opts, ui)
}

func tagCommand(t tagger.Tagger, db lexicon.Database, opts TagOptions, ui UI) error {
	tagged, err := t.Tag(opts.Sentence)
	if err != nil {
		return err
	}

	tokens, err := disambig.Annotate(tagged, db)
	if err != nil {
		return err
	}

	switch opts.Format {
	case render.FormatJSON:
		return render.NewJSON(ui.Out).Tokens(tokens)
	case render.FormatText, "":
		return render.NewText(ui.Out).Tokens(tokens)
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}
