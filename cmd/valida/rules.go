package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List registered sanitizers and validators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sanitizers := a.registry.SanitizerNames()
			validators := a.registry.ValidatorNames()

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string][]string{
					"sanitizers": sanitizers,
					"validators": validators,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sanitizers:\n  %s\n", strings.Join(sanitizers, "\n  "))
			fmt.Fprintf(out, "Validators:\n  %s\n", strings.Join(validators, "\n  "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
