// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - VolumeAPI: Fetches theme volume series from the search endpoint
//   - DocumentAPI: Fetches documents, resolving pre-signed URL indirections
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DownloadStore: Download history persistence (SQLite). Without it,
//     downloads still work but are not recorded.
//   - ChartRenderer: Volume chart output. Only used when a chart is requested.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
