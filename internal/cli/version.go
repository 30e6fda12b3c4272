package cli

import (
	"fmt"
	"io"
)

// Version is the release version, overridden at build time via ldflags.
var Version = "dev"

// runVersion builds the handler for the version command.
func runVersion(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fmt.Fprintf(stdout, "chembench %s\n", Version)
		return ExitOK
	}
}
