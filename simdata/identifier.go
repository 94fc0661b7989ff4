package simdata

import (
	"fmt"
	"time"
)

// RunIdentifier derives the result document identifier for a date:
// <prefix>_<YYYYMMDD>_000000. The simulator names its files with UTC dates,
// so the identifier is always built from the UTC calendar date.
func RunIdentifier(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s_000000", prefix, t.UTC().Format("20060102"))
}

// DocumentName returns the filename for a run identifier.
func DocumentName(identifier string) string {
	return identifier + ".json"
}
