package cmd

import (
	"context"
	"io"

	sessionview "github.com/bnema/docassist-cli/internal/adapters/render/session"
	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUploadCmd(rt *runtime) *cobra.Command {
	var asJSON bool
	var brief bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a PDF or text document and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: rt.runE(func(cmd *cobra.Command, args []string, app *app) error {
			snapshot, err := uploadDocument(cmd.Context(), app, cmd.ErrOrStderr(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), newDocumentOutput(snapshot, app.now()))
			}

			kind := sessionview.KindSummary
			if brief {
				kind = sessionview.KindBriefSummary
			}
			rendered, err := app.render(kind, snapshot)
			if err != nil {
				return err
			}
			return writeRendered(cmd.OutOrStdout(), rendered)
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the uploaded document as JSON")
	cmd.Flags().BoolVar(&brief, "brief", false, "Print only the key sentences of the summary")

	return cmd
}

func uploadDocument(ctx context.Context, app *app, progress io.Writer, path string) (domain.Session, error) {
	doc, snapshot, err := app.upload.Load(path)
	if err != nil {
		return snapshot, err
	}

	err = runWorkflow(ctx, progress, domain.OperationUpload, doc.Name, func(ctx context.Context) error {
		var submitErr error
		snapshot, submitErr = app.upload.Submit(ctx, doc)
		return submitErr
	})
	return snapshot, err
}
