package cmd

import (
	"errors"
	"fmt"

	configadapter "github.com/bnema/docassist-cli/internal/adapters/config/toml"
	"github.com/spf13/cobra"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the config file",
	}

	cmd.AddCommand(newConfigInitCmd(rt), newConfigShowCmd(rt))

	return cmd
}

func newConfigInitCmd(rt *runtime) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := rt.opts.configFile
			if path == "" {
				dir, err := configadapter.DefaultConfigDir()
				if err != nil {
					return fmt.Errorf("resolve config directory: %w", err)
				}
				path = configadapter.ConfigPath(dir)
			}

			defaults, err := configadapter.Defaults()
			if err != nil {
				return err
			}

			if err := configadapter.Write(path, defaults, force); err != nil {
				if errors.Is(err, configadapter.ErrConfigExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: rt.runE(func(cmd *cobra.Command, _ []string, app *app) error {
			data, err := configadapter.Encode(app.config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "# %s\n", app.configPath); err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}),
	}
}
