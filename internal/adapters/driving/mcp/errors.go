// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants query theme volume and download documents
// through the Bigdata.com API.
package mcp

import "errors"

// ErrMissingVolumeService is returned when the volume service is not provided.
var ErrMissingVolumeService = errors.New("mcp: volume service is required")
