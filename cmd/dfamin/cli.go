package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/geange/stateminimizer"
	"github.com/geange/stateminimizer/internal/config"
	"github.com/geange/stateminimizer/internal/logger"
)

const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitInvalidInvocation = 2
)

// invocation is the parsed command line.
type invocation struct {
	cfg     config.Config
	input   string
	example bool
}

// parseInvocation parses flags over the config file named by -config, if any.
func parseInvocation(args []string) (invocation, error) {
	fs := flag.NewFlagSet("dfamin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configPath string
		output     string
		logLevel   string
		logFormat  string
		delimiter  string
		example    bool
	)
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVar(&output, "format", "", "report format: text or json")
	fs.StringVar(&logLevel, "log-level", "", "log level")
	fs.StringVar(&logFormat, "log-format", "", "log format: console or json")
	fs.StringVar(&delimiter, "delimiter", "", "table cell delimiter")
	fs.BoolVar(&example, "example", false, "print the example table and exit")

	if err := fs.Parse(args); err != nil {
		return invocation{}, err
	}
	if fs.NArg() > 1 {
		return invocation{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return invocation{}, err
		}
	}
	if output != "" {
		cfg.Output = output
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if delimiter != "" {
		cfg.Delimiter = delimiter
	}
	if err := cfg.Validate(); err != nil {
		return invocation{}, err
	}

	return invocation{cfg: cfg, input: fs.Arg(0), example: example}, nil
}

// Run executes the command and returns its exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	inv, err := parseInvocation(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitInvalidInvocation
	}

	log := logger.NewWithWriter(stderr, inv.cfg.LogLevel, logger.ParseFormat(inv.cfg.LogFormat))
	defer func() { _ = log.Sync() }()

	if err := execute(ctx, inv, stdin, stdout, log); err != nil {
		log.Named(logger.ComponentCLI).Error("minimization failed", zap.Error(err))
		return ExitFailure
	}
	return ExitSuccess
}

func execute(ctx context.Context, inv invocation, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	delimiter := stateminimizer.WithDelimiter(inv.cfg.DelimiterRune())

	if inv.example {
		return stateminimizer.WriteTable(stdout, stateminimizer.ExampleAutomaton(), delimiter)
	}

	in := stdin
	if inv.input != "" && inv.input != "-" {
		f, err := os.Open(inv.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	dfa, err := stateminimizer.ReadTable(in, delimiter)
	if err != nil {
		return err
	}
	log.Named(logger.ComponentTable).Debug("read automaton",
		zap.Int("states", dfa.GetNumStates()),
		zap.Strings("alphabet", dfa.Alphabet()))

	m := stateminimizer.NewMinimizer(stateminimizer.WithLogger(log.Named(logger.ComponentMinimizer)))
	res, err := m.Minimize(dfa)
	if err != nil {
		return err
	}

	switch inv.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stateminimizer.NewReport(res))
	case config.OutputText:
		w := stateminimizer.NewWalkthrough(res, log.Named(logger.ComponentWalkthrough))
		for !w.Done() {
			if err := w.Next(ctx); err != nil {
				return err
			}
		}
		return renderText(stdout, w, res)
	default:
		return errors.New("unknown output " + inv.cfg.Output)
	}
}
