package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		base  Base
		want  string // decimal
	}{
		{"1010", Binary, "10"},
		{"777", Octal, "511"},
		{"255", Decimal, "255"},
		{"ff", Hexadecimal, "255"},
		{"FF", Hexadecimal, "255"},
		{"0", Decimal, "0"},
		{" 42 ", Decimal, "42"},
		{strings.Repeat("f", 32), Hexadecimal, "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.base.String()+"/"+tt.input, func(t *testing.T) {
			v, err := ParseNumber(tt.input, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		base  Base
		err   error
	}{
		{"digit outside base", "102", Binary, ErrInvalidNumber},
		{"octal nine", "9", Octal, ErrInvalidNumber},
		{"hex letter in decimal", "1f", Decimal, ErrInvalidNumber},
		{"empty", "", Decimal, ErrInvalidNumber},
		{"negative", "-1", Decimal, ErrInvalidNumber},
		{"plus sign", "+1", Decimal, ErrInvalidNumber},
		{"prefix", "0xff", Hexadecimal, ErrInvalidNumber},
		{"too wide", "1" + strings.Repeat("0", 32), Hexadecimal, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNumber(tt.input, tt.base)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	v, err := ParseNumber("48879", Decimal)
	require.NoError(t, err)

	assert.Equal(t, "1011111011101111", FormatNumber(v, Binary, false))
	assert.Equal(t, "137357", FormatNumber(v, Octal, false))
	assert.Equal(t, "48879", FormatNumber(v, Decimal, true))
	assert.Equal(t, "beef", FormatNumber(v, Hexadecimal, false))
	assert.Equal(t, "BEEF", FormatNumber(v, Hexadecimal, true))
}
