package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/vibetools/internal/components/scroll"
	"github.com/avitaltamir/vibetools/internal/cursor"
	"github.com/avitaltamir/vibetools/internal/msg"
)

type codecField int

const (
	codecMode codecField = iota
	codecOption
	codecInput
	codecOutput

	codecFieldCount
)

const (
	modeEncode = iota
	modeDecode
)

var modeItems = []string{"Encode", "Decode"}

// codec is a two-way text transform page: Mode, one option selector, pasted
// input and derived output.
type codec struct {
	base
	field   codecField
	mode    int
	option  int
	label   string
	options []string

	encode func(input string, option int) string
	decode func(input string, option int) (string, error)
	// failure turns a decode error into status text
	failure func(err error) string

	input     string
	output    string
	status    string
	inScroll  scroll.State
	outScroll scroll.State
}

// Translate maps page keys.
func (p *codec) Translate(k tea.KeyMsg) msg.Msg {
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
func (p *codec) Dispatch(m msg.Msg) msg.Msg {
	pm, ok := p.own(m)
	if !ok {
		return nil
	}

	switch pm.Action {
	case msg.SelectNextItem:
		p.field = cursor.Next(p.field, int(codecFieldCount))
	case msg.SelectPrevItem:
		p.field = cursor.Prev(p.field, int(codecFieldCount))
	case msg.CurrentItemSelectNext:
		p.stepValue(cursor.Inc[int])
	case msg.CurrentItemSelectPrev:
		p.stepValue(cursor.Dec[int])
	case msg.ScrollDown:
		if s := p.scrollState(); s != nil {
			s.ScrollDown()
		}
	case msg.ScrollUp:
		if s := p.scrollState(); s != nil {
			s.ScrollUp()
		}
	case msg.Copy:
		if p.field == codecOutput {
			return p.copy(p.output)
		}
	case msg.Paste:
		if p.field == codecInput {
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

func (p *codec) stepValue(step func(int, int) int) {
	switch p.field {
	case codecMode:
		p.mode = step(p.mode, len(modeItems))
	case codecOption:
		p.option = step(p.option, len(p.options))
	default:
		return
	}
	p.recompute()
}

func (p *codec) scrollState() *scroll.State {
	switch p.field {
	case codecInput:
		return &p.inScroll
	case codecOutput:
		return &p.outScroll
	}
	return nil
}

func (p *codec) recompute() {
	p.status = ""
	p.outScroll.Reset()
	if p.input == "" {
		p.output = ""
		return
	}
	if p.mode == modeEncode {
		p.output = p.encode(p.input, p.option)
		return
	}
	out, err := p.decode(p.input, p.option)
	if err != nil {
		p.output = ""
		p.status = p.failure(err)
		return
	}
	p.output = out
}

// Helps returns hints for the selected field.
func (p *codec) Helps() []string {
	helps := []string{help(p.keys.NextField)}
	switch p.field {
	case codecMode, codecOption:
		helps = append(helps, help(p.keys.NextValue))
	case codecInput:
		helps = append(helps, help(p.keys.ScrollDown), help(p.keys.Paste))
	case codecOutput:
		helps = append(helps, help(p.keys.ScrollDown), help(p.keys.Copy))
	}
	return helps
}

// View renders the page.
func (p *codec) View() string {
	w, h := p.Size()
	f := p.Focused()

	heights := splitHeight(h-2*selectHeight-statusHeight, 2)
	return stack(
		selectRow("Mode", modeItems, p.mode, p.field == codecMode, f, w),
		selectRow(p.label, p.options, p.option, p.field == codecOption, f, w),
		viewport("Input", p.input, p.field == codecInput, f, w, heights[0], &p.inScroll),
		statusRow(p.status, msg.LevelError, f, w),
		viewport("Output", p.output, p.field == codecOutput, f, w, heights[1], &p.outScroll),
	)
}
