package bigdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/logger"
)

// volumePath is the search volume endpoint.
const volumePath = "/v1/search/volume"

// volumeRequest is the /v1/search/volume request format.
type volumeRequest struct {
	Query volumeQuery `json:"query"`
}

type volumeQuery struct {
	Text    string        `json:"text"`
	Filters volumeFilters `json:"filters"`
}

type volumeFilters struct {
	Timestamp timestampRange `json:"timestamp"`
}

type timestampRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// volumeResponse is the /v1/search/volume response format. The daily list
// lives under the nested results.volume path.
type volumeResponse struct {
	Metadata struct {
		RequestID string `json:"request_id"`
	} `json:"metadata"`
	Results struct {
		Total struct {
			Documents int64 `json:"documents"`
			Chunks    int64 `json:"chunks"`
		} `json:"total"`
		Volume []volumeEntry `json:"volume"`
	} `json:"results"`
}

type volumeEntry struct {
	Date      string  `json:"date"`
	Documents int64   `json:"documents"`
	Chunks    int64   `json:"chunks"`
	Sentiment float64 `json:"sentiment"`
}

// SearchVolume runs a theme volume query.
func (c *Client) SearchVolume(ctx context.Context, query domain.VolumeQuery) (*domain.VolumeReport, error) {
	reqBody := volumeRequest{
		Query: volumeQuery{
			Text: query.Theme,
			Filters: volumeFilters{
				Timestamp: timestampRange{Start: query.Start, End: query.End},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	logger.Debug("POST %s%s", c.baseURL, volumePath)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+volumePath, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp volumeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	report := &domain.VolumeReport{
		RequestID:      resp.Metadata.RequestID,
		TotalDocuments: resp.Results.Total.Documents,
		TotalChunks:    resp.Results.Total.Chunks,
	}

	for _, entry := range resp.Results.Volume {
		date, layout, err := domain.ParseTimestamp(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("volume entry date: %w", err)
		}
		if layout != domain.LayoutDate {
			logger.Warn("volume entry %q is not a bare date, truncating", entry.Date)
		}
		report.Daily = append(report.Daily, domain.DailyObservation{
			Date:      domain.DateOnly(date),
			Documents: entry.Documents,
			Chunks:    entry.Chunks,
			Sentiment: entry.Sentiment,
		})
	}

	logger.Debug("parsed %d data points", len(report.Daily))

	return report, nil
}
