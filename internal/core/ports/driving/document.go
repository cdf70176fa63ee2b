package driving

import (
	"context"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

// DocumentService downloads documents and keeps a local history.
type DocumentService interface {
	// Download fetches a document by ID, resolving a pre-signed URL
	// indirection when present, and writes the JSON to the output
	// directory.
	Download(ctx context.Context, documentID string) (*DownloadResult, error)

	// List returns the recorded download history, most recent first.
	List(ctx context.Context) ([]domain.Download, error)

	// Get returns the most recent recorded download of a document.
	Get(ctx context.Context, documentID string) (*domain.Download, error)

	// WithOutputDir returns a service writing into dir instead of the
	// configured output directory.
	WithOutputDir(dir string) DocumentService
}

// DownloadResult describes a completed document download.
type DownloadResult struct {
	// DocumentID is the API document identifier.
	DocumentID string

	// Headline is the extracted document title.
	Headline string

	// Path is where the document JSON was written.
	Path string

	// Size is the written file size in bytes.
	Size int64

	// Redirected reports whether the payload was behind a pre-signed URL.
	Redirected bool
}
