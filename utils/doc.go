// Package utils provides internal utility functions for the playback service.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Time formatting utilities
//   - The fixed simulator-to-geographic coordinate projection
package utils
