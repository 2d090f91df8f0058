package main

import (
	"fmt"
	"io"
	"os"
)

// Version and Commit are overridden at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	runMain(os.Args, os.Stdin, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and streams.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI, exiting with status 1 on any error.
func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer, exit func(int)) {
	if err := execute(args, stdin, stdout, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		exit(1)
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s)", Version, Commit)
}
