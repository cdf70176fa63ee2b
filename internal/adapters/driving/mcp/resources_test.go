package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
)

func readResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleDownloadsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns download history as JSON", func(t *testing.T) {
		mockDocument := &mockDocumentService{
			downloads: []domain.Download{
				{
					DocumentID:   "DOC1",
					Headline:     "Tesla Reports Record Deliveries",
					Path:         "documents/DOC1_Tesla_Reports_Record_Deliveries.json",
					Size:         2048,
					DownloadedAt: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
				},
			},
		}

		ports := &Ports{Volume: &mockVolumeService{}, Document: mockDocument}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleDownloadsResource(ctx, readResourceRequest("bigdata://downloads"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "bigdata://downloads", result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var entries []downloadEntry
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "DOC1", entries[0].DocumentID)
		assert.Equal(t, "2025-01-15T10:30:00Z", entries[0].DownloadedAt)
	})

	t.Run("empty array without document service", func(t *testing.T) {
		ports := &Ports{Volume: &mockVolumeService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleDownloadsResource(ctx, readResourceRequest("bigdata://downloads"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.JSONEq(t, "[]", result.Contents[0].Text)
	})

	t.Run("empty array with no downloads", func(t *testing.T) {
		ports := &Ports{Volume: &mockVolumeService{}, Document: &mockDocumentService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleDownloadsResource(ctx, readResourceRequest("bigdata://downloads"))
		require.NoError(t, err)
		assert.JSONEq(t, "[]", result.Contents[0].Text)
	})

	t.Run("propagates list errors", func(t *testing.T) {
		mockDocument := &mockDocumentService{err: errors.New("database locked")}

		ports := &Ports{Volume: &mockVolumeService{}, Document: mockDocument}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleDownloadsResource(ctx, readResourceRequest("bigdata://downloads"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database locked")
	})
}
