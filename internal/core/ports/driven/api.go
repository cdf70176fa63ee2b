package driven

import (
	"context"
	"encoding/json"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

// VolumeAPI fetches theme volume series from the search endpoint.
type VolumeAPI interface {
	// SearchVolume runs a volume query and returns the parsed report.
	SearchVolume(ctx context.Context, query domain.VolumeQuery) (*domain.VolumeReport, error)
}

// DocumentAPI fetches documents by ID.
type DocumentAPI interface {
	// FetchDocument retrieves the payload for a document. The payload is
	// either the document JSON inline or a pre-signed URL redirect.
	FetchDocument(ctx context.Context, documentID string) (domain.DocumentPayload, error)

	// FetchPresigned follows a pre-signed URL and returns the document JSON.
	// Pre-signed URLs are self-authenticating; no API key is sent.
	FetchPresigned(ctx context.Context, url string) (json.RawMessage, error)
}
