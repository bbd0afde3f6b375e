package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordsense/render"
	"github.com/revelaction/wordsense/repl"
)

func replAction(c *cli.Context, ui UI) error {
	env, err := newEnv(c)
	if err != nil {
		return err
	}
	defer env.Close()

	d, err := env.Driver()
	if err != nil {
		return err
	}

	r := render.NewText(ui.Out)
	r.Trace = c.Bool("trace")
	r.HasColor = hasColor(ui.Out, c.Bool("no-color"))

	return repl.NewHandler(d, r, ui.Err).Run()
}
