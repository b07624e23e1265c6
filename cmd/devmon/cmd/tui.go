package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/msto63/devmon/internal/console"
)

func newTUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen monitor console",
		Long: `Starts a full-screen console with a scrolling transcript and command
history. Requires an interactive terminal; use 'devmon shell' otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("the console needs an interactive terminal, use 'devmon shell'")
			}
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return console.Run(cmd.Context(), s.engine, console.Options{Title: s.machine.Name})
		},
	}
}
