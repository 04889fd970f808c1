package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bnema/docassist-cli/internal/domain"
)

type documentOutput struct {
	DocumentID  string `json:"document_id"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	ContentType string `json:"content_type"`
	Summary     string `json:"summary"`
	UploadedAt  string `json:"uploaded_at"`
}

func newDocumentOutput(snapshot domain.Session, now time.Time) documentOutput {
	return documentOutput{
		DocumentID:  snapshot.DocumentID,
		FileName:    snapshot.FileName,
		FileSize:    snapshot.FileSize,
		ContentType: snapshot.ContentType,
		Summary:     snapshot.Summary,
		UploadedAt:  now.UTC().Format(time.RFC3339),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRendered(w io.Writer, rendered string) error {
	_, err := fmt.Fprintln(w, rendered)
	return err
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok || file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
