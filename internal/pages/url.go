package pages

import (
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/tools"
)

// URL percent-encodes and decodes text.
type URL struct {
	codec
}

// NewURL returns a URL page in encode mode with the fragment set.
func NewURL(env Env) *URL {
	return &URL{codec{
		base:    newBase(msg.PageURL, env),
		label:   "Encode set",
		options: tools.EncodeSetNames(),
		encode: func(input string, option int) string {
			return tools.EncodeURL(input, tools.EncodeSet(option))
		},
		decode: func(input string, _ int) (string, error) {
			return tools.DecodeURL(input)
		},
		failure: func(err error) string { return err.Error() },
	}}
}
