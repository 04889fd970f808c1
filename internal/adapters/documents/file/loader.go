package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/docassist-cli/internal/domain"
	"github.com/bnema/docassist-cli/internal/ports"
	"github.com/gabriel-vasile/mimetype"
)

var _ ports.DocumentLoader = Loader{}

// Loader reads documents from the local filesystem and sniffs their content type.
type Loader struct {
	MaxBytes int64
}

func (l Loader) Load(path string) (domain.Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.Document{}, &domain.ValidationError{Field: "file", Reason: "file path is required"}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Document{}, &domain.ValidationError{Field: "file", Reason: fmt.Sprintf("%s does not exist", path)}
		}
		return domain.Document{}, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return domain.Document{}, &domain.ValidationError{Field: "file", Reason: fmt.Sprintf("%s is a directory", path)}
	}

	limit := l.maxBytes()
	if info.Size() > limit {
		return domain.Document{}, &domain.ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("file is %d bytes, limit is %d bytes (10 MB)", info.Size(), limit),
		}
	}

	handle, err := os.Open(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = handle.Close() }()

	content, err := io.ReadAll(io.LimitReader(handle, limit+1))
	if err != nil {
		return domain.Document{}, fmt.Errorf("read document: %w", err)
	}

	return domain.Document{
		Name:        filepath.Base(path),
		ContentType: DetectContentType(filepath.Base(path), content),
		Content:     content,
	}, nil
}

func (l Loader) maxBytes() int64 {
	if l.MaxBytes > 0 {
		return l.MaxBytes
	}
	return domain.MaxUploadBytes
}

// DetectContentType sniffs content. An empty file is typed from its extension
// so it reaches the "file is empty" check instead of the type check.
func DetectContentType(name string, content []byte) string {
	if len(content) == 0 {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".pdf":
			return domain.ContentTypePDF
		case ".txt", ".text", ".md":
			return domain.ContentTypePlainText
		}
	}

	detected := mimetype.Detect(content)
	if detected.Is(domain.ContentTypePDF) {
		return domain.ContentTypePDF
	}
	if detected.Is(domain.ContentTypePlainText) {
		return detected.String()
	}

	// Plain text formats such as CSV or JSON are children of text/plain.
	for parent := detected.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Is(domain.ContentTypePlainText) && strings.EqualFold(filepath.Ext(name), ".txt") {
			return domain.ContentTypePlainText
		}
	}

	return detected.String()
}
