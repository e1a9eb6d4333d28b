// Package localtime converts between UTC and the fixed local offset games are
// scheduled in, and renders instants for display and for local-time text inputs.
//
// The offset is a constant shift, not a calendar-aware zone: no DST, no tz
// database. Callers only depend on Converter, so a real zone can replace
// FixedOffset later without touching them.
package localtime

import (
	"fmt"
	"strings"
	"time"
)

// DefaultOffset is UTC+2.
const DefaultOffset = 2 * time.Hour

const (
	dateLayout      = "02 Jan 2006"
	dateTimeLayout  = "Monday, 02 January 2006, 15:04"
	timeLayout      = "15:04"
	inputLayout     = "2006-01-02T15:04"
	utcStringLayout = "2006-01-02T15:04:05.000Z"
	isoNoZoneLayout = "2006-01-02T15:04:05"
)

// Converter shifts instants between UTC and local wall time.
// ToUTC(ToLocal(t)) must equal t for every t.
type Converter interface {
	ToLocal(utc time.Time) time.Time
	ToUTC(local time.Time) time.Time
}

// FixedOffset shifts by a constant duration. The shifted value is expressed in
// the UTC location so its wall fields read as local time.
type FixedOffset time.Duration

func (o FixedOffset) ToLocal(utc time.Time) time.Time {
	return utc.UTC().Add(time.Duration(o))
}

func (o FixedOffset) ToUTC(local time.Time) time.Time {
	return local.UTC().Add(-time.Duration(o))
}

// Zone pairs a converter with a clock.
type Zone struct {
	conv Converter
	now  func() time.Time
}

// New builds a zone. A nil converter means DefaultOffset, a nil clock means time.Now.
func New(conv Converter, now func() time.Time) *Zone {
	if conv == nil {
		conv = FixedOffset(DefaultOffset)
	}
	if now == nil {
		now = time.Now
	}
	return &Zone{conv: conv, now: now}
}

// Default is the UTC+2 zone on the wall clock.
func Default() *Zone { return New(nil, nil) }

func (z *Zone) ToLocal(utc time.Time) time.Time { return z.conv.ToLocal(utc) }
func (z *Zone) ToUTC(local time.Time) time.Time { return z.conv.ToUTC(local) }

// FormatDate renders e.g. "19 Oct 2025".
func (z *Zone) FormatDate(utc time.Time) string {
	return z.ToLocal(utc).Format(dateLayout)
}

// FormatDateTime renders e.g. "Sunday, 19 October 2025, 16:40".
func (z *Zone) FormatDateTime(utc time.Time) string {
	return z.ToLocal(utc).Format(dateTimeLayout)
}

// FormatTime renders e.g. "16:40".
func (z *Zone) FormatTime(utc time.Time) string {
	return z.ToLocal(utc).Format(timeLayout)
}

// NowAsLocalInputString renders the current local time as "YYYY-MM-DDTHH:mm".
func (z *Zone) NowAsLocalInputString() string {
	return z.ToLocal(z.now()).Format(inputLayout)
}

// LocalInputStringToUTC reads "YYYY-MM-DDTHH:mm" as local time and renders the
// UTC instant as "YYYY-MM-DDTHH:mm:ss.sssZ".
func (z *Zone) LocalInputStringToUTC(s string) (string, error) {
	local, err := time.Parse(inputLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("parse local input %q: %w", s, err)
	}
	return z.ToUTC(local).Format(utcStringLayout), nil
}

// ParseISO reads a timestamp from the service. Strings without a zone are UTC.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse timestamp: empty string")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{isoNoZoneLayout, inputLayout} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unsupported format", s)
}
