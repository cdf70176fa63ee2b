package domain

import "time"

// Download records a document saved to disk, for the local download history.
type Download struct {
	// ID is the unique identifier of this download record.
	ID string

	// DocumentID is the API document identifier.
	DocumentID string

	// Headline is the document title at download time.
	Headline string

	// Path is where the document JSON was written.
	Path string

	// Size is the written file size in bytes.
	Size int64

	// Redirected records whether the payload came via a pre-signed URL.
	Redirected bool

	// DownloadedAt is when the download completed.
	DownloadedAt time.Time
}
