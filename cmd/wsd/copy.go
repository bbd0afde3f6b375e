package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/wordsense/sense"
	"github.com/revelaction/wordsense/storage"
)

type ImportOptions struct {
	From string
	To   string
}

type ExportOptions struct {
	From string
	To   string
}

// copyInventory writes every entry and irregular form of src to dst and
// returns the number of entries copied.
func copyInventory(src storage.SenseIterator, dst storage.SenseWriter) (int, error) {
	size, err := src.Size()
	if err != nil {
		return 0, err
	}

	progress := uiprogress.New()
	progress.Start()
	bar := progress.AddBar(max(size, 1))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	err = src.EachEntry(func(e sense.Entry) error {
		if err := dst.Write(e); err != nil {
			return fmt.Errorf("failed to write %s.%s: %w", e.Lemma, e.Class.Code(), err)
		}
		count++
		bar.Incr()
		return nil
	})
	if err != nil {
		progress.Stop()
		return count, err
	}

	err = src.EachException(func(e sense.Exception) error {
		if err := dst.WriteException(e); err != nil {
			return fmt.Errorf("failed to write exception %s: %w", e.Form, err)
		}
		return nil
	})
	progress.Stop()

	return count, err
}
