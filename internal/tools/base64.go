package tools

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64Variant selects the alphabet and padding.
type Base64Variant int

const (
	Base64Standard Base64Variant = iota
	Base64URL
	Base64RawStandard
	Base64RawURL

	base64VariantCount
)

var base64Variants = [base64VariantCount]struct {
	name string
	enc  *base64.Encoding
}{
	Base64Standard:    {"Standard", base64.StdEncoding},
	Base64URL:         {"URL safe", base64.URLEncoding},
	Base64RawStandard: {"Standard, no padding", base64.RawStdEncoding},
	Base64RawURL:      {"URL safe, no padding", base64.RawURLEncoding},
}

// Base64VariantNames returns the selector labels.
func Base64VariantNames() []string {
	out := make([]string, 0, base64VariantCount)
	for v := Base64Variant(0); v < base64VariantCount; v++ {
		out = append(out, base64Variants[v].name)
	}
	return out
}

func (v Base64Variant) encoding() *base64.Encoding {
	if v < 0 || v >= base64VariantCount {
		return base64.StdEncoding
	}
	return base64Variants[v].enc
}

// EncodeBase64 encodes the UTF-8 bytes of input.
func EncodeBase64(input string, v Base64Variant) string {
	return v.encoding().EncodeToString([]byte(input))
}

// DecodeBase64 decodes input. Surrounding whitespace and line breaks are
// ignored. Invalid UTF-8 in the result is replaced with U+FFFD.
func DecodeBase64(input string, v Base64Variant) (string, error) {
	cleaned := strings.Join(strings.Fields(input), "")
	b, err := v.encoding().DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}
