package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/vibetools/internal/components/scroll"
	"github.com/avitaltamir/vibetools/internal/cursor"
	"github.com/avitaltamir/vibetools/internal/logger"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/tools"
)

type hashField int

const (
	hashAlgorithm hashField = iota
	hashEncoding
	hashInput
	hashOutput

	hashFieldCount
)

// Hash digests pasted text.
type Hash struct {
	base
	field     hashField
	algorithm int
	encoding  int

	input     string
	output    string
	inScroll  scroll.State
	outScroll scroll.State
}

// NewHash returns a Hash page using MD5 over UTF-8.
func NewHash(env Env) *Hash {
	return &Hash{base: newBase(msg.PageHash, env)}
}

// Translate maps page keys.
func (p *Hash) Translate(k tea.KeyMsg) msg.Msg {
	return p.translate(k, []binding{
		{p.keys.NextField, msg.SelectNextItem},
		{p.keys.PrevField, msg.SelectPrevItem},
		{p.keys.NextValue, msg.CurrentItemSelectNext},
		{p.keys.PrevValue, msg.CurrentItemSelectPrev},
		{p.keys.ScrollDown, msg.ScrollDown},
		{p.keys.ScrollUp, msg.ScrollUp},
		{p.keys.Copy, msg.Copy},
		{p.keys.Paste, msg.Paste},
	})
}

// Dispatch applies a page action.
func (p *Hash) Dispatch(m msg.Msg) msg.Msg {
	pm, ok := p.own(m)
	if !ok {
		return nil
	}

	switch pm.Action {
	case msg.SelectNextItem:
		p.field = cursor.Next(p.field, int(hashFieldCount))
	case msg.SelectPrevItem:
		p.field = cursor.Prev(p.field, int(hashFieldCount))
	case msg.CurrentItemSelectNext:
		p.stepValue(cursor.Inc[int])
	case msg.CurrentItemSelectPrev:
		p.stepValue(cursor.Dec[int])
	case msg.ScrollDown:
		switch p.field {
		case hashInput:
			p.inScroll.ScrollDown()
		case hashOutput:
			p.outScroll.ScrollDown()
		}
	case msg.ScrollUp:
		switch p.field {
		case hashInput:
			p.inScroll.ScrollUp()
		case hashOutput:
			p.outScroll.ScrollUp()
		}
	case msg.Copy:
		if p.field == hashOutput {
			return p.copy(p.output)
		}
	case msg.Paste:
		if p.field == hashInput {
			text, note := p.paste()
			if note != nil {
				return note
			}
			p.input = text
			p.inScroll.Reset()
			p.recompute()
		}
	}
	return nil
}

func (p *Hash) stepValue(step func(int, int) int) {
	switch p.field {
	case hashAlgorithm:
		p.algorithm = step(p.algorithm, len(tools.AlgorithmNames()))
		p.recompute()
	case hashEncoding:
		p.encoding = step(p.encoding, len(tools.TextEncodingNames()))
		p.recompute()
	}
}

// recompute leaves the output empty until something has been pasted.
func (p *Hash) recompute() {
	p.outScroll.Reset()
	if p.input == "" {
		p.output = ""
		return
	}
	data, err := tools.TextEncoding(p.encoding).Encode(p.input)
	if err != nil {
		logger.Error("Hash: %v", err)
		p.output = ""
		return
	}
	out, err := tools.HashBytes(data, tools.Algorithm(p.algorithm))
	if err != nil {
		logger.Error("Hash: %v", err)
		p.output = ""
		return
	}
	p.output = out
}

// Helps returns hints for the selected field.
func (p *Hash) Helps() []string {
	helps := []string{help(p.keys.NextField)}
	switch p.field {
	case hashAlgorithm, hashEncoding:
		helps = append(helps, help(p.keys.NextValue))
	case hashInput:
		helps = append(helps, help(p.keys.ScrollDown), help(p.keys.Paste))
	case hashOutput:
		helps = append(helps, help(p.keys.ScrollDown), help(p.keys.Copy))
	}
	return helps
}

// View renders the page.
func (p *Hash) View() string {
	w, h := p.Size()
	f := p.Focused()

	heights := splitHeight(h-2*selectHeight, 2)
	return stack(
		selectRow("Algorithm", tools.AlgorithmNames(), p.algorithm, p.field == hashAlgorithm, f, w),
		selectRow("Encoding", tools.TextEncodingNames(), p.encoding, p.field == hashEncoding, f, w),
		viewport("Input", p.input, p.field == hashInput, f, w, heights[0], &p.inScroll),
		viewport("Output", p.output, p.field == hashOutput, f, w, heights[1], &p.outScroll),
	)
}
