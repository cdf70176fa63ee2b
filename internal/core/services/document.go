package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driven"
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driving"
	"github.com/bigdata-com/bigdata-cli/internal/logger"
)

// MaxHeadlineLength limits the sanitised headline portion of filenames.
const MaxHeadlineLength = 100

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService downloads documents and records them in the local history.
type DocumentService struct {
	api       driven.DocumentAPI
	history   driven.DownloadStore
	outputDir string
}

// NewDocumentService creates a new document service. history may be nil, in
// which case downloads are not recorded.
func NewDocumentService(api driven.DocumentAPI, history driven.DownloadStore, outputDir string) *DocumentService {
	return &DocumentService{
		api:       api,
		history:   history,
		outputDir: outputDir,
	}
}

// WithOutputDir returns a copy of the service writing into dir.
func (s *DocumentService) WithOutputDir(dir string) driving.DocumentService {
	return &DocumentService{
		api:       s.api,
		history:   s.history,
		outputDir: dir,
	}
}

// Download fetches a document, resolves the payload and writes
// "{id}_{headline}.json" into the output directory.
func (s *DocumentService) Download(ctx context.Context, documentID string) (*driving.DownloadResult, error) {
	if s.api == nil {
		return nil, domain.ErrMissingAPIKey
	}

	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, fmt.Errorf("%w: document ID must not be empty", domain.ErrInvalidInput)
	}

	payload, err := s.api.FetchDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}

	raw, redirected, err := s.resolvePayload(ctx, documentID, payload)
	if err != nil {
		return nil, err
	}

	headline := domain.HeadlineFromRaw(raw)
	filename := fmt.Sprintf("%s_%s.json", documentID,
		domain.SanitizeFilename(headline, MaxHeadlineLength))

	path, size, err := s.write(filename, raw)
	if err != nil {
		return nil, err
	}
	logger.Info("document %s saved to %s (%d bytes)", documentID, path, size)

	s.record(ctx, domain.Download{
		ID:           uuid.NewString(),
		DocumentID:   documentID,
		Headline:     headline,
		Path:         path,
		Size:         size,
		Redirected:   redirected,
		DownloadedAt: time.Now().UTC(),
	})

	return &driving.DownloadResult{
		DocumentID: documentID,
		Headline:   headline,
		Path:       path,
		Size:       size,
		Redirected: redirected,
	}, nil
}

// List returns the recorded download history.
func (s *DocumentService) List(ctx context.Context) ([]domain.Download, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx)
}

// Get returns the most recent recorded download of a document.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Download, error) {
	if s.history == nil {
		return nil, domain.ErrNotFound
	}
	return s.history.Get(ctx, documentID)
}

// resolvePayload turns a tagged payload into document JSON, following a
// pre-signed URL in exactly one explicit step when needed.
func (s *DocumentService) resolvePayload(
	ctx context.Context, documentID string, payload domain.DocumentPayload,
) (json.RawMessage, bool, error) {
	switch payload.Kind {
	case domain.PayloadInline:
		return payload.Inline, false, nil
	case domain.PayloadRedirect:
		logger.Debug("document %s is behind a pre-signed URL, fetching", documentID)
		raw, err := s.api.FetchPresigned(ctx, payload.RedirectURL)
		if err != nil {
			return nil, true, fmt.Errorf("fetch pre-signed payload: %w", err)
		}
		return raw, true, nil
	default:
		return nil, false, fmt.Errorf("unknown payload kind %d", payload.Kind)
	}
}

// write pretty-prints the document JSON into the output directory.
func (s *DocumentService) write(filename string, raw json.RawMessage) (string, int64, error) {
	dir := s.outputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create output directory: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Not valid JSON after all; keep the raw bytes rather than fail.
		pretty.Reset()
		pretty.Write(raw)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, pretty.Bytes(), 0o644); err != nil {
		return "", 0, fmt.Errorf("write document: %w", err)
	}
	return path, int64(pretty.Len()), nil
}

// record saves the download to the history store when one is configured.
// History failures are logged, not surfaced: the file is already on disk.
func (s *DocumentService) record(ctx context.Context, dl domain.Download) {
	if s.history == nil {
		return
	}
	if err := s.history.Save(ctx, dl); err != nil {
		logger.Warn("failed to record download of %s: %v", dl.DocumentID, err)
	}
}
