package main

import (
	"github.com/bethropolis/concat-code/internal/app"
	"github.com/bethropolis/concat-code/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   "concat-code <directory>... [-o output]",
		Short: "Concatenate source trees into one prompt-ready text stream",
		Long: `concat-code walks each directory in turn, skips whatever that
directory's top-level .gitignore excludes, and writes every remaining
file as a "## <dir>/<path>" header followed by its content in a fenced
block. Output goes to stdout unless -o is given.`,
		Example:       `concat-code ./cmd ./internal -o context.md`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Complete(args); err != nil {
				return err
			}
			return app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run()
		},
	}

	cfg.BindFlags(cmd.Flags())
	return cmd
}
