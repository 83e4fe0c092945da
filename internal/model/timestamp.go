package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp renders as an RFC 3339 string in UTC and accepts a few common
// layouts when decoding.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid timestamp (string expected): %w", err)
	}

	if s == "" {
		ts.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			ts.Time = t
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp: %s", s)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Time.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(ts.Time.UTC().Format(time.RFC3339))
}
