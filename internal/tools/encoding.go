package tools

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// TextEncoding selects the byte representation hashed for an input string.
type TextEncoding int

const (
	UTF8 TextEncoding = iota
	UTF16LE
	UTF16BE

	textEncodingCount
)

var textEncodings = [textEncodingCount]struct {
	name string
	enc  encoding.Encoding
}{
	UTF8:    {"UTF-8", unicode.UTF8},
	UTF16LE: {"UTF-16LE", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	UTF16BE: {"UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
}

// TextEncodingNames returns the selector labels.
func TextEncodingNames() []string {
	out := make([]string, 0, textEncodingCount)
	for e := TextEncoding(0); e < textEncodingCount; e++ {
		out = append(out, textEncodings[e].name)
	}
	return out
}

// Encode returns the bytes of input in encoding e.
func (e TextEncoding) Encode(input string) ([]byte, error) {
	if e < 0 || e >= textEncodingCount {
		return nil, fmt.Errorf("unknown text encoding %d", int(e))
	}
	return textEncodings[e].enc.NewEncoder().Bytes([]byte(input))
}
