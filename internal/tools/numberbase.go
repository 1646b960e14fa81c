package tools

import (
	"fmt"
	"math/big"
	"strings"
)

// Base is a supported number base.
type Base int

const (
	Binary Base = iota
	Octal
	Decimal
	Hexadecimal
)

// MaxBits is the width of the largest accepted value.
const MaxBits = 128

// Radix returns the numeric base.
func (b Base) Radix() int {
	switch b {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hexadecimal:
		return 16
	default:
		return 10
	}
}

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "decimal"
	}
}

// ParseNumber reads an unsigned integer of at most MaxBits bits. Signs,
// prefixes and separators are rejected.
func ParseNumber(s string, b Base) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, fmt.Errorf("%w: %q is not a %s number", ErrInvalidNumber, s, b)
	}
	v, ok := new(big.Int).SetString(s, b.Radix())
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a %s number", ErrInvalidNumber, s, b)
	}
	if v.BitLen() > MaxBits {
		return nil, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return v, nil
}

// FormatNumber prints v in base b. Hex digits are uppercased when upper is
// set.
func FormatNumber(v *big.Int, b Base, upper bool) string {
	s := v.Text(b.Radix())
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}
