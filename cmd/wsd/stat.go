package main

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/stat"
	"github.com/revelaction/wordsense/storage"
)

func statAction(c *cli.Context, ui UI) error {
	env, err := newEnv(c)
	if err != nil {
		return err
	}
	defer env.Close()

	repo, err := NewSenseRepository(&env.pool, env.Config.LexiconPath)
	if err != nil {
		return err
	}

	return statCommand(repo, ui)
}

func statCommand(repo storage.SenseIterator, ui UI) error {
	hdl := stat.NewHandler()

	err := repo.EachEntry(func(e sense.Entry) error {
		hdl.Aggregate(e)
		return nil
	})
	if err != nil {
		return err
	}

	err = repo.EachException(func(e sense.Exception) error {
		hdl.AggregateException(e)
		return nil
	})
	if err != nil {
		return err
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num lemmas %s, num entries %s, num senses %s\n",
		humanize.Comma(int64(stats.NumLemmas)),
		humanize.Comma(int64(stats.NumEntries)),
		humanize.Comma(int64(stats.NumSenses)))
	fmt.Fprintf(ui.Out, "Num examples %s, senses with examples %s\n",
		humanize.Comma(int64(stats.NumExamples)),
		humanize.Comma(int64(stats.NumWithExamples)))
	fmt.Fprintf(ui.Out, "Num irregular forms %s\n", humanize.Comma(int64(stats.NumExceptions)))
	fmt.Fprintf(ui.Out, "Senses per entry %.2f\n", stats.SensesPerEntryMean)

	for _, class := range sense.Classes() {
		fmt.Fprintf(ui.Out, "  %-9s entries %8s senses %8s\n", class.Label(),
			humanize.Comma(int64(stats.EntriesByClass[class])),
			humanize.Comma(int64(stats.SensesByClass[class])))
	}

	counts := make([]int, 0, len(stats.SensesPerEntryDis))
	for n := range stats.SensesPerEntryDis {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	for _, n := range counts {
		fmt.Fprintf(ui.Out, "  %3d senses: %s entries\n", n, humanize.Comma(int64(stats.SensesPerEntryDis[n])))
	}

	return nil
}
