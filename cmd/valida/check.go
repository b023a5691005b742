package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valida"
	"github.com/dmitrymomot/valida/pkg/async"
	"github.com/dmitrymomot/valida/pkg/i18n"
	"github.com/dmitrymomot/valida/pkg/logger"
	"github.com/dmitrymomot/valida/pkg/schemafile"
)

type checkOptions struct {
	schema      string
	data        []string
	groups      []string
	metricsFile string
	messages    string
	lang        string
}

type checkResult struct {
	File   string         `json:"file"`
	Valid  bool           `json:"valid"`
	Data   map[string]any `json:"data,omitempty"`
	Errors valida.Errors  `json:"errors,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newCheckCmd(a *app) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check --schema FILE --data FILE [--data FILE]...",
		Short: "Sanitize and validate data files against a schema",
		Long: `Runs the schema against every data file and prints one JSON result per
file with the sanitized data and the field errors. Use "-" to read data from stdin.

Exit status is 1 when a document is invalid and 2 when the schema or a
document cannot be processed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.schema, "schema", "s", "", "schema file (YAML or JSON)")
	f.StringSliceVarP(&opts.data, "data", "d", nil, "data file (JSON), repeatable")
	f.StringSliceVarP(&opts.groups, "group", "g", nil, "active group, repeatable")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile (overrides VALIDA_METRICS_FILE)")
	f.StringVar(&opts.messages, "messages", "", "translation file used to localize error messages (overrides VALIDA_MESSAGES)")
	f.StringVar(&opts.lang, "lang", "", "language of error messages (overrides VALIDA_LANG)")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runCheck(cmd *cobra.Command, a *app, opts checkOptions) error {
	ctx := logger.WithSource(cmd.Context(), opts.schema)

	schema, err := schemafile.Load(opts.schema)
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}

	tr, lang, err := loadMessages(cmd, a, opts)
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}

	futures := make([]*async.Future[checkResult], len(opts.data))
	for i, path := range opts.data {
		futures[i] = async.Async(logger.WithSource(ctx, path), path, func(ctx context.Context, path string) (checkResult, error) {
			return checkFile(ctx, cmd.InOrStdin(), a, schema, path, opts.groups, tr, lang), nil
		})
	}

	// file failures are reported inside each result; an error here means
	// the command was canceled or a task panicked
	results, err := async.WaitAll(futures...)
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}

	code := exitOK
	enc := json.NewEncoder(cmd.OutOrStdout())

	for _, res := range results {
		switch {
		case res.Error != "":
			code = exitFailure
		case !res.Valid && code == exitOK:
			code = exitInvalid
		}

		if err := enc.Encode(res); err != nil {
			return &exitError{code: exitFailure, err: err}
		}
	}

	if metricsFile := cmp.Or(opts.metricsFile, a.cfg.MetricsFile); metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, a.gatherer); err != nil {
			return &exitError{code: exitFailure, err: fmt.Errorf("write metrics: %w", err)}
		}
	}

	if code != exitOK {
		return &exitError{code: code}
	}
	return nil
}

// checkFile reads and processes one data file. Failures are reported in the result.
func checkFile(ctx context.Context, stdin io.Reader, a *app, schema valida.Schema, path string, groups []string, tr *i18n.Translator, lang string) checkResult {
	res := checkResult{File: path}

	data, err := readData(stdin, path)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	rc, err := a.registry.Process(ctx, data, schema, groups...)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Valid = rc.IsValid()
	res.Data = rc.Data()
	if !res.Valid {
		res.Errors = i18n.Localize(tr, lang, rc.Errors())
	}
	return res
}

// loadMessages returns a nil translator when no translation file is configured.
func loadMessages(cmd *cobra.Command, a *app, opts checkOptions) (*i18n.Translator, string, error) {
	path := cmp.Or(opts.messages, a.cfg.Messages)
	lang := cmp.Or(opts.lang, a.cfg.Lang, i18n.DefaultLanguage)
	if path == "" {
		return nil, lang, nil
	}

	tr, err := i18n.LoadFile(cmd.Context(), path,
		i18n.WithLogger(a.log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return nil, "", err
	}
	return tr, lang, nil
}

var errNotObject = errors.New("data must be a JSON object")

func readData(stdin io.Reader, path string) (map[string]any, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%s: %w", path, errNotObject)
	}
	return data, nil
}
