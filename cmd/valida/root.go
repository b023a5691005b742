package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valida"
	"github.com/dmitrymomot/valida/pkg/builtin"
	"github.com/dmitrymomot/valida/pkg/logger"
	"github.com/dmitrymomot/valida/pkg/metrics"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitFailure = 2
)

type app struct {
	out    io.Writer
	errOut io.Writer
	// environ replaces the process environment when set.
	environ map[string]string

	cfg      Config
	log      *slog.Logger
	registry *valida.Registry
	gatherer *prometheus.Registry
}

// exitError carries a specific exit code out of a command.
// A nil err means the command already reported its outcome.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valida",
		Short: "Sanitize and validate JSON documents against schema files",
		Long: `valida runs schema files against JSON documents. Every field is first
sanitized by its rule list, then validated; nested schemas validate arrays of objects.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	cmd.AddCommand(
		newCheckCmd(a),
		newLintCmd(a),
		newRulesCmd(a),
	)

	return cmd
}

// setup loads configuration and builds the logger and the registry.
func (a *app) setup() error {
	cfg, err := loadConfig(a.environ)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.New(
		logger.WithEnvironment(cfg.Env, "valida"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(a.errOut),
		logger.WithContextExtractors(logger.SourceExtractor()),
	)

	a.gatherer = prometheus.NewRegistry()
	a.registry = builtin.NewRegistry(
		valida.WithLogger(a.log),
		valida.WithConcurrency(cfg.Concurrency),
		valida.WithObserver(metrics.New(a.gatherer)),
	)

	return nil
}

// execute runs the command line and maps the outcome to an exit code.
func execute(ctx context.Context, args []string, a *app) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(a.errOut, "Error:", ee.err)
		}
		return ee.code
	}

	fmt.Fprintln(a.errOut, "Error:", err)
	return exitFailure
}
