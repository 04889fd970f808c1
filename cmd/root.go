package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configFile string
	verbose    bool
}

// runtime wires the app lazily, after flags are parsed, for the commands that
// need it.
type runtime struct {
	opts rootOptions
}

type appRunE func(cmd *cobra.Command, args []string, app *app) error

func (r *runtime) runE(fn appRunE) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		app, err := wireApp(cmd.Context(), r.opts, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, app.Close())
		}()

		return fn(cmd, args, app)
	}
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:           "da",
		Short:         "Document assistant CLI (da): summarize, question and quiz yourself on a document",
		Long:          "da uploads a PDF or text document to the document assistant backend, prints its summary, answers free-form questions about it and runs backend-scored quizzes, either one command at a time or from the interactive shell.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&rt.opts.configFile, "config", "", "Path to config.toml (default $XDG_CONFIG_HOME/docassist/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&rt.opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(rt),
		newHealthCmd(rt),
		newUploadCmd(rt),
		newShellCmd(rt),
	)

	return rootCmd
}
