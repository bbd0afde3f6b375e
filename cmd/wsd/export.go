package main

import (
	"fmt"
	"os"

	"github.com/revelaction/wordsense/storage/filesystem"
)

func exportCommand(opts ExportOptions, ui UI) error {
	var p Pool
	defer p.Close()

	src, err := NewSenseRepository(&p, opts.From)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.To, 0o755); err != nil {
		return err
	}

	dst, err := filesystem.NewSenseStore(opts.To)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Reading senses from %s...\n", opts.From)
	count, err := copyInventory(src, dst)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d entries from %s to %s\n", count, opts.From, opts.To)
	return nil
}
