package localtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/matchday/internal/localtime"
)

var newYearsEve = time.Date(2025, 12, 31, 23, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestFixedOffset_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
		in     time.Time
		wall   string
	}{
		{"wraps into next year", localtime.DefaultOffset, newYearsEve, "2026-01-01 01:30"},
		{"same day", localtime.DefaultOffset, time.Date(2025, 10, 19, 14, 40, 0, 0, time.UTC), "2025-10-19 16:40"},
		{"zero offset", 0, newYearsEve, "2025-12-31 23:30"},
		{"negative offset", -5 * time.Hour, time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC), "2024-12-31 21:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := localtime.FixedOffset(tt.offset)
			local := conv.ToLocal(tt.in)
			assert.Equal(t, tt.wall, local.Format("2006-01-02 15:04"))
			assert.True(t, tt.in.Equal(conv.ToUTC(local)))
		})
	}
}

func TestFixedOffset_IgnoresInputLocation(t *testing.T) {
	ny := time.FixedZone("UTC-5", -5*3600)
	in := newYearsEve.In(ny)
	local := localtime.FixedOffset(localtime.DefaultOffset).ToLocal(in)
	assert.Equal(t, "01:30", local.Format("15:04"))
}

func TestZone_Formats(t *testing.T) {
	z := localtime.Default()

	assert.Equal(t, "01 Jan 2026", z.FormatDate(newYearsEve))
	assert.Equal(t, "Thursday, 01 January 2026, 01:30", z.FormatDateTime(newYearsEve))
	assert.Equal(t, "01:30", z.FormatTime(newYearsEve))

	afternoon := time.Date(2025, 10, 19, 14, 40, 0, 0, time.UTC)
	assert.Equal(t, "19 Oct 2025", z.FormatDate(afternoon))
	assert.Equal(t, "Sunday, 19 October 2025, 16:40", z.FormatDateTime(afternoon))
	assert.Equal(t, "16:40", z.FormatTime(afternoon))
}

func TestZone_NowAsLocalInputString(t *testing.T) {
	z := localtime.New(nil, fixedClock(time.Date(2025, 10, 19, 14, 40, 31, 0, time.UTC)))
	assert.Equal(t, "2025-10-19T16:40", z.NowAsLocalInputString())
}

func TestZone_LocalInputStringToUTC(t *testing.T) {
	z := localtime.Default()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-10-19T16:40", want: "2025-10-19T14:40:00.000Z"},
		{in: "2026-01-01T01:00", want: "2025-12-31T23:00:00.000Z"},
		{in: " 2026-01-01T01:00 ", want: "2025-12-31T23:00:00.000Z"},
		{in: "2025-10-19 16:40", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := z.LocalInputStringToUTC(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZone_InputRoundTripWithinAMinute(t *testing.T) {
	now := time.Date(2025, 12, 31, 22, 59, 47, 0, time.UTC)
	z := localtime.New(nil, fixedClock(now))

	out, err := z.LocalInputStringToUTC(z.NowAsLocalInputString())
	require.NoError(t, err)
	parsed, err := localtime.ParseISO(out)
	require.NoError(t, err)

	assert.True(t, parsed.Equal(now.Truncate(time.Minute)))
	assert.Less(t, now.Sub(parsed), time.Minute)
}

// shiftOnly proves callers only depend on Converter.
type shiftOnly struct{ d time.Duration }

func (s shiftOnly) ToLocal(utc time.Time) time.Time { return utc.UTC().Add(s.d) }
func (s shiftOnly) ToUTC(local time.Time) time.Time { return local.UTC().Add(-s.d) }

func TestZone_CustomConverter(t *testing.T) {
	z := localtime.New(shiftOnly{d: 9 * time.Hour}, nil)
	assert.Equal(t, "08:30", z.FormatTime(newYearsEve))
	assert.True(t, newYearsEve.Equal(z.ToUTC(z.ToLocal(newYearsEve))))
}

func TestParseISO(t *testing.T) {
	want := time.Date(2025, 10, 19, 14, 40, 0, 0, time.UTC)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2025-10-19T14:40:00Z", want: want},
		{in: "2025-10-19T14:40:00.000Z", want: want},
		{in: "2025-10-19T16:40:00+02:00", want: want},
		{in: "2025-10-19T14:40:00", want: want},
		{in: "2025-10-19T14:40", want: want},
		{in: "yesterday", wantErr: true},
		{in: " ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := localtime.ParseISO(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
