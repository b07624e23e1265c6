package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/msto63/devmon/foundation/core/config"
	mdwlog "github.com/msto63/devmon/foundation/core/log"
	"github.com/msto63/devmon/foundation/monitor"
	"github.com/msto63/devmon/foundation/monitor/objects"
	"github.com/msto63/devmon/foundation/monitor/render"
	"github.com/msto63/devmon/internal/demo"
)

// session is one engine with the demo machine installed
type session struct {
	engine  *monitor.Engine
	machine *demo.Machine
	config  *config.Config
	logger  *mdwlog.Logger
	out     io.Writer
	errOut  io.Writer
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	level, err := mdwlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := mdwlog.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "devmon",
	})

	mode, err := render.ParseNumberMode(cfg.Monitor.NumberMode)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	tty := isTerminal(out)
	renderer := render.New(mode)
	renderer.ZeroPad = cfg.Monitor.ZeroPad
	renderer.InlineImages = tty
	renderer.Color = tty && !opts.noColor

	registry := objects.New(objects.Options{Usings: cfg.Monitor.Usings, Logger: logger})
	machine := demo.NewMachine("demo")
	engine := monitor.NewEngine(monitor.Options{
		Registry:      registry,
		Ambient:       machine,
		Renderer:      renderer,
		MaxChainDepth: cfg.Monitor.MaxChainDepth,
		Logger:        logger,
	})
	if err := demo.Install(engine, machine); err != nil {
		return nil, err
	}

	logger.Debug("session ready", mdwlog.Fields{
		"config":      cfg.Source,
		"number_mode": mode.String(),
		"devices":     len(registry.Names()),
	})
	return &session{
		engine:  engine,
		machine: machine,
		config:  cfg,
		logger:  logger,
		out:     out,
		errOut:  cmd.ErrOrStderr(),
	}, nil
}

// loadConfig reads the explicit or discovered config file and applies the
// command line flags on top
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configFile != "" {
		cfg, err = config.Load(opts.configFile)
	} else {
		cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("number-mode") {
		cfg.Monitor.NumberMode = opts.numberMode
	}
	if flags.Changed("zero-pad") {
		cfg.Monitor.ZeroPad = opts.zeroPad
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate().Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// execute runs one line and prints its result. Faults that carry a command
// are followed by the usage listing of that command.
func (s *session) execute(ctx context.Context, line string) error {
	result, err := s.engine.Execute(ctx, line)
	if err != nil {
		if usage := s.engine.UsageFor(err); usage != "" {
			fmt.Fprint(s.errOut, usage)
		}
		return err
	}
	s.print(result.Text)
	return nil
}

func (s *session) print(text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += render.Endl
	}
	fmt.Fprint(s.out, text)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
