package domain

import (
	"encoding/json"
	"strings"
)

// DefaultHeadline is used when a document carries no usable title.
const DefaultHeadline = "document"

// PayloadKind discriminates the two shapes the document endpoint returns.
type PayloadKind int

const (
	// PayloadInline means the document JSON arrived in the response body.
	PayloadInline PayloadKind = iota

	// PayloadRedirect means the body held a pre-signed URL that must be
	// fetched to obtain the actual document.
	PayloadRedirect
)

// DocumentPayload is the tagged result of a document fetch: either the
// document JSON inline, or a pre-signed URL indirection for large payloads.
// Exactly one of Inline and RedirectURL is populated, per Kind.
type DocumentPayload struct {
	Kind        PayloadKind
	Inline      json.RawMessage
	RedirectURL string
}

// NewInlinePayload wraps document JSON delivered directly in the response.
func NewInlinePayload(raw json.RawMessage) DocumentPayload {
	return DocumentPayload{Kind: PayloadInline, Inline: raw}
}

// NewRedirectPayload wraps a pre-signed URL indirection.
func NewRedirectPayload(url string) DocumentPayload {
	return DocumentPayload{Kind: PayloadRedirect, RedirectURL: url}
}

// Document is a fully resolved document as returned by the API.
type Document struct {
	// ID is the API document identifier.
	ID string

	// Headline is the document title, extracted from content.title.text.
	Headline string

	// Raw is the complete document JSON.
	Raw json.RawMessage
}

// HeadlineFromRaw extracts the headline from document JSON, looking at the
// content.title.text path. Returns DefaultHeadline when the path is absent
// or empty.
func HeadlineFromRaw(raw json.RawMessage) string {
	var probe struct {
		Content struct {
			Title struct {
				Text string `json:"text"`
			} `json:"title"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return DefaultHeadline
	}
	headline := strings.TrimSpace(probe.Content.Title.Text)
	if headline == "" {
		return DefaultHeadline
	}
	return headline
}
