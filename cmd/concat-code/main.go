// Command concat-code concatenates the files of one or more directory
// trees, minus whatever each tree's .gitignore excludes, into a single
// text stream for pasting into LLM prompts.
package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := fang.Execute(
		ctx,
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		return 1
	}
	return 0
}
