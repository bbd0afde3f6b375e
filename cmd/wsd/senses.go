package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordsense/lexicon"
	"github.com/revelaction/wordsense/render"
	"github.com/revelaction/wordsense/sense"
)

type SensesOptions struct {
	Word    string
	Class   sense.Class
	Format  string
	NoColor bool
}

func sensesAction(c *cli.Context, ui UI) error {
	if c.NArg() == 0 {
		fmt.Fprintf(ui.Err, "usage: wsd senses [--pos n|v|a|r] <word>\n")
		return errUsage
	}

	opts := SensesOptions{
		Word:    strings.Join(c.Args().Slice(), " "),
		Class:   sense.Any,
		Format:  c.String("format"),
		NoColor: c.Bool("no-color"),
	}

	if pos := c.String("pos"); pos != "" {
		class, err := sense.ParseClass(pos)
		if err != nil {
			return err
		}
		opts.Class = class
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

	return sensesCommand(lex, opts, ui)
}

func sensesCommand(db lexicon.Database, opts SensesOptions, ui UI) error {
	senses, err := db.Senses(opts.Word, opts.Class)
	if err != nil {
		return err
	}

	switch opts.Format {
	case render.FormatJSON:
		return render.NewJSON(ui.Out).Senses(senses)
	case render.FormatText, "":
		r := render.NewText(ui.Out)
		r.HasColor = hasColor(ui.Out, opts.NoColor)
		return r.Senses(opts.Word, senses)
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}
