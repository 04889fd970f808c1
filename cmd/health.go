package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newHealthCmd(rt *runtime) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: rt.runE(func(cmd *cobra.Command, _ []string, app *app) error {
			status, err := app.backend.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("check backend health: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), status)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "backend: %s\n", app.config.Backend.BaseURL); err != nil {
				return err
			}

			keys := make([]string, 0, len(status))
			for key := range status {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				if _, err := fmt.Fprintf(out, "%s: %v\n", key, status[key]); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the health payload as JSON")

	return cmd
}
