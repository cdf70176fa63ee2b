package bigdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bigdata-com/bigdata-cli/internal/core/domain"
	"github.com/bigdata-com/bigdata-cli/internal/logger"
)

// FetchDocument retrieves the payload for a document. The endpoint answers
// in one of two shapes: the document JSON inline, or a JSON object whose
// top-level "url" field holds a pre-signed URL for large payloads. The
// distinction is resolved here, once, into a tagged payload.
func (c *Client) FetchDocument(ctx context.Context, documentID string) (domain.DocumentPayload, error) {
	url := fmt.Sprintf("%s/documents/%s", c.baseURL, documentID)
	logger.Debug("GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return domain.DocumentPayload{}, fmt.Errorf("create request: %w", err)
	}

	body, err := c.do(ctx, req)
	if err != nil {
		return domain.DocumentPayload{}, err
	}

	var probe struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return domain.DocumentPayload{}, fmt.Errorf("decode response: %w", err)
	}

	if probe.URL != "" {
		return domain.NewRedirectPayload(probe.URL), nil
	}
	return domain.NewInlinePayload(json.RawMessage(body)), nil
}

// FetchPresigned follows a pre-signed URL. The URL is self-authenticating,
// so no API key header and no rate limiting apply.
func (c *Client) FetchPresigned(ctx context.Context, url string) (json.RawMessage, error) {
	logger.Debug("GET pre-signed URL")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(http.MethodGet, "(pre-signed)", resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: pre-signed payload is not valid JSON", domain.ErrEmptyResponse)
	}

	return json.RawMessage(body), nil
}
