package utils

import (
	"time"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
