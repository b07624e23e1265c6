package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
)

type runOptions struct {
	keepGoing bool
	echo      bool
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	runOpts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a monitor script",
		Long: `Executes a file of monitor commands, one per line. Blank lines and lines
starting with '#' are skipped. Use '-' to read the script from stdin.

Execution stops at the first failing command unless --keep-going is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return mdwerror.Wrap(err, "failed to open script").
						WithCode(mdwerror.CodeNotFound).
						WithDetail("script", args[0])
				}
				defer f.Close()
				in = f
			}
			return s.runScript(cmd, in, args[0], runOpts)
		},
	}
	cmd.Flags().BoolVarP(&runOpts.keepGoing, "keep-going", "k", false, "continue after failing commands")
	cmd.Flags().BoolVar(&runOpts.echo, "echo", false, "print each command before its result")
	return cmd
}

func (s *session) runScript(cmd *cobra.Command, in io.Reader, name string, opts *runOptions) error {
	scanner := bufio.NewScanner(in)
	failed := 0
	number := 0
	for scanner.Scan() {
		number++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if opts.echo {
			fmt.Fprintf(s.out, "(monitor) %s\n", line)
		}
		if err := s.execute(cmd.Context(), line); err != nil {
			if !opts.keepGoing {
				return mdwerror.Wrap(err, fmt.Sprintf("%s:%d", name, number)).WithDetail("line", number)
			}
			failed++
			fmt.Fprintf(s.errOut, "%s:%d: %v\n", name, number, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return mdwerror.Wrap(err, "failed to read script").WithCode(mdwerror.CodeInternal)
	}
	if failed > 0 {
		return mdwerror.Newf("%d command(s) in %s failed", failed, name).WithDetail("failed", failed)
	}
	return nil
}
