package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// VolumeInput is the input schema for the theme_volume tool.
type VolumeInput struct {
	Theme string `json:"theme" jsonschema:"the theme or topic to track, e.g. 'electric vehicles'"`
	Start string `json:"start" jsonschema:"start of the date range, YYYY-MM-DD or RFC 3339 timestamp"`
	End   string `json:"end" jsonschema:"end of the date range, YYYY-MM-DD or RFC 3339 timestamp"`
}

// VolumeOutput is the output schema for the theme_volume tool.
type VolumeOutput struct {
	RequestID      string         `json:"request_id,omitempty"`
	TotalDocuments int64          `json:"total_documents"`
	TotalChunks    int64          `json:"total_chunks"`
	Daily          []DailyOutput  `json:"daily"`
	Weekly         []WeeklyOutput `json:"weekly"`
}

// DailyOutput is one daily observation in the theme_volume output.
type DailyOutput struct {
	Date      string  `json:"date"`
	Documents int64   `json:"documents"`
	Chunks    int64   `json:"chunks"`
	Sentiment float64 `json:"sentiment"`
}

// WeeklyOutput is one weekly average in the theme_volume output.
type WeeklyOutput struct {
	WeekStart string  `json:"week_start"`
	Documents float64 `json:"avg_documents"`
	Chunks    float64 `json:"avg_chunks"`
	Sentiment float64 `json:"avg_sentiment"`
}

// DownloadInput is the input schema for the download_document tool.
type DownloadInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document identifier from search results"`
}

// DownloadOutput is the output schema for the download_document tool.
type DownloadOutput struct {
	DocumentID string `json:"document_id"`
	Headline   string `json:"headline"`
	Path       string `json:"path"`
	Size       int64  `json:"size"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "theme_volume",
		Description: "Track weekly media coverage volume and sentiment for a theme over a date range",
	}, s.handleVolume)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "download_document",
		Description: "Download a full document as JSON and return where it was saved",
	}, s.handleDownload)
}

// handleVolume handles the theme_volume tool invocation.
func (s *Server) handleVolume(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VolumeInput,
) (*mcp.CallToolResult, VolumeOutput, error) {
	report, err := s.ports.Volume.Fetch(ctx, input.Theme, input.Start, input.End)
	if err != nil {
		return nil, VolumeOutput{}, err
	}
	weekly := s.ports.Volume.AggregateWeekly(report)

	output := VolumeOutput{
		RequestID:      report.RequestID,
		TotalDocuments: report.TotalDocuments,
		TotalChunks:    report.TotalChunks,
		Daily:          make([]DailyOutput, len(report.Daily)),
		Weekly:         make([]WeeklyOutput, len(weekly)),
	}
	for i := range report.Daily {
		output.Daily[i] = DailyOutput{
			Date:      report.Daily[i].Date.Format(time.DateOnly),
			Documents: report.Daily[i].Documents,
			Chunks:    report.Daily[i].Chunks,
			Sentiment: report.Daily[i].Sentiment,
		}
	}
	for i := range weekly {
		output.Weekly[i] = WeeklyOutput{
			WeekStart: weekly[i].WeekStart.Format(time.DateOnly),
			Documents: weekly[i].Documents,
			Chunks:    weekly[i].Chunks,
			Sentiment: weekly[i].Sentiment,
		}
	}

	return nil, output, nil
}

// handleDownload handles the download_document tool invocation.
func (s *Server) handleDownload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DownloadInput,
) (*mcp.CallToolResult, DownloadOutput, error) {
	if s.ports.Document == nil {
		return nil, DownloadOutput{}, errors.New("document service not configured")
	}

	result, err := s.ports.Document.Download(ctx, input.DocumentID)
	if err != nil {
		return nil, DownloadOutput{}, err
	}

	return nil, DownloadOutput{
		DocumentID: result.DocumentID,
		Headline:   result.Headline,
		Path:       result.Path,
		Size:       result.Size,
	}, nil
}
