package api

import (
	"bytes"
	"encoding/json"
	"time"
)

// timestampLayouts are tried in order when parsing a server date.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a date sent by the API. Raw holds the value exactly as it
// arrived; Time is set only when Raw matches a known layout. Decoding never
// fails, so an unexpected date format cannot turn a successful call into an
// error.
type Timestamp struct {
	Raw  string
	Time time.Time
}

// NewTimestamp returns a Timestamp for t in RFC 3339 form.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Raw: t.Format(time.RFC3339Nano), Time: t}
}

// IsZero reports whether the server sent no usable date.
func (t Timestamp) IsZero() bool {
	return t.Time.IsZero()
}

func (t Timestamp) String() string {
	return t.Raw
}

// UnmarshalJSON accepts a string, null, or any other JSON value, which is
// kept verbatim in Raw.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Raw = string(data)
		return nil
	}
	t.Raw = s
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			break
		}
	}
	return nil
}

// MarshalJSON writes Raw back unchanged.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	raw := t.Raw
	if raw == "" && !t.Time.IsZero() {
		raw = t.Time.Format(time.RFC3339Nano)
	}
	return json.Marshal(raw)
}
