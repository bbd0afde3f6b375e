package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/wordsense/server"
)

func serveAction(c *cli.Context, ui UI) error {
	env, err := newEnv(c)
	if err != nil {
		return err
	}
	defer env.Close()

	if c.IsSet("addr") {
		env.Config.Server.Addr = c.String("addr")
	}

	d, err := env.Driver()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveCommand(ctx, d, env, ui)
}

func serveCommand(ctx context.Context, d server.Disambiguator, env *Env, ui UI) error {
	sc := env.Config.Server
	srv := server.New(d, server.Config{
		Title:        sc.Title,
		Stylesheet:   sc.Stylesheet,
		StaticDir:    sc.StaticDir,
		Metrics:      sc.Metrics,
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
	}, env.Logger)

	env.Logger.Info("serving",
		zap.String("addr", sc.Addr),
		zap.String("lexicon", env.Config.LexiconPath),
		zap.Bool("metrics", sc.Metrics),
	)
	fmt.Fprintf(ui.Out, "🌐 listening on %s\n", sc.Addr)

	return srv.Run(ctx, sc.Addr)
}
