package mcp

import (
	"github.com/bigdata-com/bigdata-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Volume fetches and aggregates theme volume.
	Volume driving.VolumeService

	// Document downloads documents and tracks the local history.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Volume == nil {
		return ErrMissingVolumeService
	}
	// Document is optional, the download tool reports its own absence
	return nil
}
