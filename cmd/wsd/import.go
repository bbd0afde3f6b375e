package main

import (
	"fmt"

	"github.com/revelaction/wordsense/storage/sqlite/zombiezen"
)

func importCommand(opts ImportOptions, ui UI) error {
	var p Pool
	defer p.Close()

	src, err := NewSenseRepository(&p, opts.From)
	if err != nil {
		return err
	}

	pool, err := p.Create(opts.To)
	if err != nil {
		return err
	}

	dst := zombiezen.NewSenseStore(pool)

	fmt.Fprintf(ui.Out, "Reading senses from %s...\n", opts.From)
	count, err := copyInventory(src, dst)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d entries from %s to %s\n", count, opts.From, opts.To)
	return nil
}
