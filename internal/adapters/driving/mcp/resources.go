package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "bigdata://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the download history.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "downloads",
		Name:        "downloads",
		Description: "History of documents downloaded to the local machine",
		MIMEType:    "application/json",
	}, s.handleDownloadsResource)
}

// downloadEntry is the JSON shape of one history entry.
type downloadEntry struct {
	DocumentID   string `json:"document_id"`
	Headline     string `json:"headline"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	DownloadedAt string `json:"downloaded_at"`
}

// handleDownloadsResource returns the recorded download history.
func (s *Server) handleDownloadsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	text := "[]"

	if s.ports.Document != nil {
		downloads, err := s.ports.Document.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing downloads: %w", err)
		}

		entries := make([]downloadEntry, len(downloads))
		for i := range downloads {
			entries[i] = downloadEntry{
				DocumentID:   downloads[i].DocumentID,
				Headline:     downloads[i].Headline,
				Path:         downloads[i].Path,
				Size:         downloads[i].Size,
				DownloadedAt: downloads[i].DownloadedAt.UTC().Format("2006-01-02T15:04:05Z"),
			}
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling downloads: %w", err)
		}
		text = string(data)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		}},
	}, nil
}
