package driven

import (
	"context"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

// DownloadStore persists the local download history.
// Backed by SQLite.
type DownloadStore interface {
	// Save records a completed download.
	Save(ctx context.Context, dl domain.Download) error

	// Get returns the most recent download of a document.
	Get(ctx context.Context, documentID string) (*domain.Download, error)

	// List returns all recorded downloads, most recent first.
	List(ctx context.Context) ([]domain.Download, error)
}
