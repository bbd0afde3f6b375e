package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordsense/config"
	"github.com/revelaction/wordsense/render"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "lexicon",
			Aliases: []string{"l"},
			Usage:   "WordNet dict directory, JSON sense directory or SQLite file",
			EnvVars: []string{config.EnvLexiconPath},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "development logging at debug level",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   render.FormatText,
		Usage:   "output format: text or json",
	}
}

func disambiguateFlags() []cli.Flag {
	return []cli.Flag{
		formatFlag(),
		&cli.BoolFlag{
			Name:    "trace",
			Aliases: []string{"t"},
			Usage:   "print the example signatures compared with the sentence",
		},
		&cli.BoolFlag{
			Name:  "overlap",
			Usage: "frequency fallback counts only definition words present in the sentence",
		},
	}
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "wsd",
		Usage:     "word sense disambiguation",
		UsageText: usage,
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		// errors are printed once by main
		ExitErrHandler:       func(*cli.Context, error) {},
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Flags:                append(globalFlags(), disambiguateFlags()...),
		Action: func(c *cli.Context) error {
			return disambiguateAction(c, ui)
		},
		Commands: []*cli.Command{
			{
				Name:        "disambiguate",
				Aliases:     []string{"d"},
				Usage:       "print the sense of the word at index in the sentence",
				Description: disambiguateDescription,
				ArgsUsage:   "<word> <word>... <index>",
				Flags:       disambiguateFlags(),
				Action: func(c *cli.Context) error {
					return disambiguateAction(c, ui)
				},
			},
			{
				Name:  "serve",
				Usage: "serve the web form and the JSON api",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "listen address",
					},
					&cli.BoolFlag{
						Name:  "overlap",
						Usage: "frequency fallback counts only definition words present in the sentence",
					},
				},
				Action: func(c *cli.Context) error {
					return serveAction(c, ui)
				},
			},
			{
				Name:  "repl",
				Usage: "disambiguate sentences interactively",
				Flags: disambiguateFlags()[1:],
				Action: func(c *cli.Context) error {
					return replAction(c, ui)
				},
			},
			{
				Name:      "senses",
				Usage:     "list the senses of a word",
				ArgsUsage: "<word>",
				Flags: []cli.Flag{
					formatFlag(),
					&cli.StringFlag{
						Name:    "pos",
						Aliases: []string{"p"},
						Usage:   "part of speech: n, v, a or r",
					},
				},
				Action: func(c *cli.Context) error {
					return sensesAction(c, ui)
				},
			},
			{
				Name:      "tag",
				Usage:     "print the annotated tokens of a sentence",
				ArgsUsage: "<word>...",
				Flags:     []cli.Flag{formatFlag()},
				Action: func(c *cli.Context) error {
					return tagAction(c, ui)
				},
			},
			{
				Name:  "import",
				Usage: "copy a sense inventory into a SQLite file",
				Flags: copyFlags(),
				Action: func(c *cli.Context) error {
					opts := ImportOptions{From: c.String("from"), To: c.String("to")}
					return importCommand(opts, ui)
				},
			},
			{
				Name:  "export",
				Usage: "copy a sense inventory into a JSON sense directory",
				Flags: copyFlags(),
				Action: func(c *cli.Context) error {
					opts := ExportOptions{From: c.String("from"), To: c.String("to")}
					return exportCommand(opts, ui)
				},
			},
			{
				Name:  "stat",
				Usage: "print statistics of the sense inventory",
				Action: func(c *cli.Context) error {
					return statAction(c, ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
			{
				Name:  "bash",
				Usage: "print the bash completion script",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
		},
	}
}

const disambiguateDescription = `Same as the root action. Use it when the sentence starts with a command
name, f.ex. wsd disambiguate tag the bank 1.`

func copyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "source inventory: WordNet dict directory, JSON sense directory or SQLite file",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "destination",
			Required: true,
		},
	}
}
