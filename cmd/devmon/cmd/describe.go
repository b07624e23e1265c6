package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/devmon/foundation/utils/stringx"
)

func newDescribeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [device]",
		Short: "List devices or show the members of one",
		Long: `Without arguments lists every registered device with its kind. With a
device name prints the usage listing of its methods, properties, indexers
and fields.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				s.listDevices()
				return nil
			}
			usage, err := s.engine.Usage(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(s.out, usage)
			return nil
		},
	}
}

func (s *session) listDevices() {
	registry := s.engine.Registry()
	names := registry.Names()
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range names {
		m, _ := registry.Resolve(name)
		fmt.Fprintf(s.out, "%s  %s\n", stringx.PadRight(name, width, ' '), m.Kind)
	}
}
