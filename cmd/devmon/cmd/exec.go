package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newExecCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <device> [member] [arguments...]",
		Short: "Execute one monitor command",
		Long: `Executes a single monitor command and prints its result.

The arguments are joined with spaces and tokenized again, so quote the whole
command when it contains strings:

  devmon exec 'uart0 WriteLine "hello"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return s.execute(cmd.Context(), strings.Join(args, " "))
		},
	}
}
