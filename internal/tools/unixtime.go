package tools

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Resolution is the unit inferred for an integer timestamp.
type Resolution int

const (
	Seconds Resolution = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

func (r Resolution) String() string {
	switch r {
	case Seconds:
		return "seconds"
	case Milliseconds:
		return "milliseconds"
	case Microseconds:
		return "microseconds"
	case Nanoseconds:
		return "nanoseconds"
	default:
		return "unknown"
	}
}

// TimeLayout is used to print a converted timestamp.
const TimeLayout = "2006-01-02 15:04:05.999999999 MST"

// Upper bounds (exclusive) for each resolution, as powers of ten.
var resolutionLimits = []struct {
	exp int64
	res Resolution
}{
	{12, Seconds},
	{15, Milliseconds},
	{18, Microseconds},
	{21, Nanoseconds},
}

// datetimeLayouts are tried in order. Layouts without a zone are read in the
// caller's location.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	TimeLayout,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// TimeConversion is the result of ConvertTime.
type TimeConversion struct {
	Output        string
	FromTimestamp bool       // Input was an integer timestamp
	Resolution    Resolution // Set when FromTimestamp
}

// Status describes how the input was understood.
func (c TimeConversion) Status() string {
	if c.FromTimestamp {
		return fmt.Sprintf("valid unix timestamp (%s)", c.Resolution)
	}
	return "valid datetime"
}

// ConvertTime turns an integer timestamp into a datetime in loc, or a
// datetime into unix seconds.
func ConvertTime(input string, loc *time.Location) (TimeConversion, error) {
	input = strings.TrimSpace(input)
	if loc == nil {
		loc = time.UTC
	}

	if t, res, ok := ParseTimestamp(input); ok {
		return TimeConversion{
			Output:        t.In(loc).Format(TimeLayout),
			FromTimestamp: true,
			Resolution:    res,
		}, nil
	}

	if t, ok := ParseDatetime(input, loc); ok {
		return TimeConversion{Output: fmt.Sprintf("%d", t.Unix())}, nil
	}

	return TimeConversion{}, fmt.Errorf("%w: %q", ErrInvalidTime, input)
}

// ParseTimestamp reads a non-negative decimal integer and infers its unit
// from its magnitude: below 1e12 seconds, 1e15 milliseconds, 1e18
// microseconds, 1e21 nanoseconds. Larger values are rejected.
func ParseTimestamp(s string) (time.Time, Resolution, bool) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return time.Time{}, 0, false
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return time.Time{}, 0, false
	}

	ten := big.NewInt(10)
	for i, lim := range resolutionLimits {
		bound := new(big.Int).Exp(ten, big.NewInt(lim.exp), nil)
		if v.Cmp(bound) >= 0 {
			continue
		}
		// unit is 10^(3*i) per second
		unit := new(big.Int).Exp(ten, big.NewInt(int64(3*i)), nil)
		sec, frac := new(big.Int).QuoRem(v, unit, new(big.Int))
		nanos := frac.Int64() * pow10(9-3*i)
		return time.Unix(sec.Int64(), nanos).UTC(), lim.res, true
	}
	return time.Time{}, 0, false
}

// ParseDatetime tries the supported layouts in order.
func ParseDatetime(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func pow10(n int) int64 {
	p := int64(1)
	for k := 0; k < n; k++ {
		p *= 10
	}
	return p
}
