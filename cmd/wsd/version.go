package main

import (
	"fmt"
)

// Set by the linker
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "wsd version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
