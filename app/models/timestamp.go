package models

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form used on the wire, always UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a creation time that serializes as an ISO-8601 string.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to millisecond precision so that a value survives a
// JSON round trip unchanged.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// MarshalJSON encodes the timestamp as a quoted ISO-8601 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts any RFC 3339 timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*t = NewTimestamp(parsed)
	return nil
}
