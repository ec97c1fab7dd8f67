// Package storage provides the object storage client used to fetch game data.
//
// It wraps the Minio S3-compatible client behind a small Client interface so
// that consumers (such as the catalog loader) can be tested with mocks. The
// gamedata bucket holds the base item catalog and the forge configuration
// objects, both stored as JSON.
//
// Connection setup applies strict transport timeouts; individual operations
// take a context for cancellation.
package storage
