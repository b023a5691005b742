package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valida/pkg/logger"
	"github.com/dmitrymomot/valida/pkg/schemafile"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint SCHEMA...",
		Short: "Check schema files against the registered rules",
		Long: `Parses every schema file and resolves each sanitizer, validator and
required option against the built-in registry, without running any data.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				if err := lintSchema(a, path); err != nil {
					errs = append(errs, err)
					continue
				}
				a.log.DebugContext(cmd.Context(), "schema ok", logger.Schema(path))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if len(errs) > 0 {
				a.log.DebugContext(cmd.Context(), "lint failed", logger.Errors(errs...))
				return &exitError{code: exitFailure, err: errors.Join(errs...)}
			}
			return nil
		},
	}
}

func lintSchema(a *app, path string) error {
	s, err := schemafile.Load(path)
	if err != nil {
		return err
	}
	if err := s.Validate(a.registry); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
