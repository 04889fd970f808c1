package ports

import "github.com/bnema/docassist-cli/internal/domain"

// DocumentLoader turns a user supplied path into an upload candidate.
type DocumentLoader interface {
	Load(path string) (domain.Document, error)
}
