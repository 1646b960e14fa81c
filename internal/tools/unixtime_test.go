package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRFC3339(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	return v
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		res      Resolution
	}{
		{"1634567890", "2021-10-18T14:38:10Z", Seconds},
		{"1634567890123", "2021-10-18T14:38:10.123Z", Milliseconds},
		{"1634567890123456", "2021-10-18T14:38:10.123456Z", Microseconds},
		{"1634567890123456789", "2021-10-18T14:38:10.123456789Z", Nanoseconds},
		{"1634567", "1970-01-19T22:02:47Z", Seconds},
		{"0", "1970-01-01T00:00:00Z", Seconds},
		{"1000000000000", "2001-09-09T01:46:40Z", Milliseconds},
		{"100000000000000000000", "5138-11-16T09:46:40Z", Nanoseconds},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, res, ok := ParseTimestamp(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.res, res)
			assert.True(t, mustRFC3339(t, tt.expected).Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"", "1634567890123456789000", "-5", "+5", "12a", "1.5"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, _, ok := ParseTimestamp(bad)
			assert.False(t, ok)
		})
	}
}

func TestConvertTime(t *testing.T) {
	t.Run("timestamp to datetime", func(t *testing.T) {
		got, err := ConvertTime("1634567890123", time.UTC)
		require.NoError(t, err)

		assert.Equal(t, "2021-10-18 14:38:10.123 UTC", got.Output)
		assert.True(t, got.FromTimestamp)
		assert.Equal(t, "valid unix timestamp (milliseconds)", got.Status())
	})

	t.Run("timestamp in another zone", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*60*60)

		got, err := ConvertTime("1634567890", loc)
		require.NoError(t, err)
		assert.Equal(t, "2021-10-18 23:38:10 JST", got.Output)
	})

	tests := []struct {
		input    string
		expected string
	}{
		{"2021-10-18T14:38:10Z", "1634567890"},
		{"2021-10-18T14:38:10.123+02:00", "1634560690"},
		{"2021-10-18 14:38:10Z", "1634567890"},
		{"2021-10-18 14:38:10", "1634567890"},
		{"2021-10-18 14:38:10 UTC", "1634567890"},
		{"2021-10-18", "1634515200"},
		{"  1970-01-01T00:00:00Z  ", "0"},
	}

	for _, tt := range tests {
		t.Run("datetime "+tt.input, func(t *testing.T) {
			got, err := ConvertTime(tt.input, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.Output)
			assert.False(t, got.FromTimestamp)
			assert.Equal(t, "valid datetime", got.Status())
		})
	}

	t.Run("invalid input", func(t *testing.T) {
		_, err := ConvertTime("yesterday", time.UTC)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("nil location means UTC", func(t *testing.T) {
		got, err := ConvertTime("0", nil)
		require.NoError(t, err)
		assert.Equal(t, "1970-01-01 00:00:00 UTC", got.Output)
	})
}
