package cli

import (
	"fmt"
	"io"
)

var (
	// Version information - typically set via ldflags at build time
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// printVersion writes the version block shown for --version.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "rep %s\n", Version)
	fmt.Fprintf(w, "Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
}
