package newsapi

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTimestamp parses a serialized timestamp in any common layout.
// Timestamps without a zone are read in loc.
func ParseTimestamp(raw string, loc *time.Location) (t time.Time, err error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if loc == nil {
		loc = time.Local
	}

	// dateparse panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			t, err = time.Time{}, fmt.Errorf("unparseable timestamp %q: %v", raw, r)
		}
	}()

	return dateparse.ParseIn(raw, loc)
}

// ExtractedTime returns the parsed extraction timestamp, if any.
func (a Article) ExtractedTime(loc *time.Location) (time.Time, bool) {
	t, err := ParseTimestamp(a.ExtractedAt, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
