package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	numberMode string
	logLevel   string
	zeroPad    bool
	noColor    bool
}

// NewRootCommand builds the devmon command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "devmon",
		Short: "devmon - device monitor for emulated machines",
		Long: `devmon drives the peripherals of an emulated machine through
monitor commands of the form

  <device> [member] [arguments...]

Devices are addressed by their registered path, e.g. sysbus.uart0, or by a
suffix that one of the configured usings completes (uart0).

Examples:
  devmon exec uart0 BaudRate 9600
  devmon exec 'uart0 WriteLine "hello" 2'
  devmon run boot.mon
  devmon describe regs`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: devmon.toml or devmon.yaml in . or the user config dir)")
	flags.StringVar(&opts.numberMode, "number-mode", "", "number rendering: hex, decimal or both")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&opts.zeroPad, "zero-pad", false, "pad hexadecimal numbers to the width of their type")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored usage listings")

	root.AddCommand(
		newExecCommand(opts),
		newRunCommand(opts),
		newShellCommand(opts),
		newTUICommand(opts),
		newDescribeCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the devmon command line
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		printError(root, err)
	}
	return err
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
