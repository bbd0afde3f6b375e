package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

// errUsage is returned after the usage has been printed.
var errUsage = errors.New("usage")

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := run(os.Args, ui); err != nil {
		if !errors.Is(err, errUsage) {
			fprintErr(ui.Err, err)
		}
		os.Exit(1)
	}
}

func run(args []string, ui UI) error {
	return newApp(ui).Run(args)
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "wsd: %v\n", err)
}
