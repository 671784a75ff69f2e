package relay

import (
	"bytes"
	"encoding/json"
	"time"
)

// TimestampLayout matches the millisecond UTC form used by both platforms
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nullJSON returns nil (encoded as null) for empty, null or falsy raw values
func nullJSON(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", `""`, "false", "0":
		return nil
	}
	return trimmed
}
