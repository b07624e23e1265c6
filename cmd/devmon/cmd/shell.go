package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/msto63/devmon/foundation/monitor/token"
)

const prompt = "(monitor) "

func newShellCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive monitor",
		Long: `Reads monitor commands from stdin until EOF or 'quit'.

Besides device commands the shell understands:
  help           list the registered devices
  vars           list the defined variables
  stats          show member cache statistics
  clear-cache    drop all cached member sets
  quit, exit     leave the shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			interactive := false
			if f, ok := cmd.InOrStdin().(*os.File); ok {
				interactive = term.IsTerminal(int(f.Fd()))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				if interactive {
					fmt.Fprint(s.out, prompt)
				}
				if !scanner.Scan() {
					return scanner.Err()
				}
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				line := strings.TrimSpace(scanner.Text())
				if done := s.builtin(cmd.Context(), line); done {
					return nil
				}
			}
		},
	}
}

// builtin handles shell commands and runs everything else through the
// engine. It reports whether the shell should exit.
func (s *session) builtin(ctx context.Context, line string) bool {
	switch line {
	case "":
	case "quit", "exit":
		return true
	case "help":
		s.listDevices()
	case "vars":
		for _, name := range s.engine.Variables() {
			value, _ := s.engine.Variable(name)
			fmt.Fprintf(s.out, "$%s = %s\n", name, joinTokens(value))
		}
	case "stats":
		stats := s.engine.CacheStats()
		fmt.Fprintf(s.out, "types: %d, hits: %d, misses: %d, clears: %d, hit rate: %.1f%%\n",
			stats.Types, stats.Hits, stats.Misses, stats.Clears, stats.HitRate()*100)
	case "clear-cache":
		s.engine.ClearCache()
	default:
		if err := s.execute(ctx, line); err != nil {
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}
	}
	return false
}

func joinTokens(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
