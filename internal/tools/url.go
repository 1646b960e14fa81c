package tools

import (
	"strings"
	"unicode/utf8"
)

// EncodeSet selects which bytes are percent-encoded. Bytes outside ASCII and
// control bytes are always encoded.
type EncodeSet int

const (
	// EncodeFragment escapes space " < > `
	EncodeFragment EncodeSet = iota
	// EncodeQuery escapes space " # < >
	EncodeQuery
	// EncodePath escapes the query set plus ? ` { }
	EncodePath
	// EncodeComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( )
	EncodeComponent

	encodeSetCount
)

var encodeSets = [encodeSetCount]struct {
	name  string
	extra string
}{
	EncodeFragment:  {"Fragment", " \"<>`"},
	EncodeQuery:     {"Query", " \"#<>"},
	EncodePath:      {"Path", " \"#<>?`{}"},
	EncodeComponent: {"Component", ""},
}

// EncodeSetNames returns the selector labels.
func EncodeSetNames() []string {
	out := make([]string, 0, encodeSetCount)
	for s := EncodeSet(0); s < encodeSetCount; s++ {
		out = append(out, encodeSets[s].name)
	}
	return out
}

func (s EncodeSet) escapes(b byte) bool {
	if b < 0x20 || b >= 0x7f {
		return true
	}
	if s == EncodeComponent {
		switch {
		case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
			return false
		}
		return !strings.ContainsRune("-_.!~*'()", rune(b))
	}
	if s < 0 || s >= encodeSetCount {
		s = EncodeFragment
	}
	return strings.IndexByte(encodeSets[s].extra, b) >= 0
}

const upperHex = "0123456789ABCDEF"

// EncodeURL percent-encodes the UTF-8 bytes of input.
func EncodeURL(input string, s EncodeSet) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if s.escapes(c) {
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// DecodeURL replaces every %XX escape with its byte. Malformed escapes are
// kept as written. The decoded bytes must be valid UTF-8.
func DecodeURL(input string) (string, error) {
	buf := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '%' && i+2 < len(input) {
			hi, ok1 := unhex(input[i+1])
			lo, ok2 := unhex(input[i+2])
			if ok1 && ok2 {
				buf = append(buf, hi<<4|lo)
				i += 2
				continue
			}
		}
		buf = append(buf, c)
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
