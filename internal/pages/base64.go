package pages

import (
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/tools"
)

// Base64 encodes and decodes Base64 text.
type Base64 struct {
	codec
}

// NewBase64 returns a Base64 page in encode mode with the standard alphabet.
func NewBase64(env Env) *Base64 {
	return &Base64{codec{
		base:    newBase(msg.PageBase64, env),
		label:   "Variant",
		options: tools.Base64VariantNames(),
		encode: func(input string, option int) string {
			return tools.EncodeBase64(input, tools.Base64Variant(option))
		},
		decode: func(input string, option int) (string, error) {
			return tools.DecodeBase64(input, tools.Base64Variant(option))
		},
		failure: func(error) string { return "Invalid Base64" },
	}}
}
