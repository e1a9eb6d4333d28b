package model

import (
	"bytes"
	"strconv"
	"time"

	"github.com/maxviazov/matchday/internal/localtime"
)

// Timestamp is an instant read from the service. The service may omit the
// zone; such values are UTC. It always encodes as RFC 3339 in UTC.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t.UTC()} }

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return ts.Time.UTC().MarshalJSON()
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	t, err := localtime.ParseISO(s)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}
