package domain

import (
	"fmt"
	"mime"
	"strings"
)

const MaxUploadBytes int64 = 10 * 1024 * 1024

const (
	ContentTypePDF       = "application/pdf"
	ContentTypePlainText = "text/plain"
)

var allowedContentTypes = map[string]struct{}{
	ContentTypePDF:       {},
	ContentTypePlainText: {},
}

// Document is a file ready to be uploaded.
type Document struct {
	Name        string
	ContentType string
	Content     []byte
}

func (d Document) Size() int64 {
	return int64(len(d.Content))
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "file", Reason: "file name is required"}
	}
	if d.Content == nil {
		return &ValidationError{Field: "file", Reason: "file is required"}
	}

	mediaType := NormalizeContentType(d.ContentType)
	if _, ok := allowedContentTypes[mediaType]; !ok {
		return &ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("unsupported file type %q (allowed: PDF, plain text)", d.ContentType),
		}
	}

	if d.Size() == 0 {
		return &ValidationError{Field: "file", Reason: "file is empty"}
	}
	if d.Size() > MaxUploadBytes {
		return &ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("file is %d bytes, limit is %d bytes (10 MB)", d.Size(), MaxUploadBytes),
		}
	}

	return nil
}

// NormalizeContentType strips parameters such as charset and lowercases the media type.
func NormalizeContentType(contentType string) string {
	trimmed := strings.TrimSpace(contentType)
	if trimmed == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(trimmed)
	if err != nil {
		mediaType, _, _ = strings.Cut(trimmed, ";")
	}

	return strings.ToLower(strings.TrimSpace(mediaType))
}

type Difficulty string

const (
	DifficultyDefault Difficulty = ""
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyDefault, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}
