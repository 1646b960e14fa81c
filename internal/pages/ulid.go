package pages

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"

	"github.com/avitaltamir/vibetools/internal/components/scroll"
	"github.com/avitaltamir/vibetools/internal/cursor"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/tools"
)

type ulidField int

const (
	ulidCase ulidField = iota
	ulidCount
	ulidOutput

	ulidFieldCount
)

var ulidCaseItems = []string{"Uppercase", "Lowercase"}

// ULID generates and parses ULIDs.
type ULID struct {
	base
	field  ulidField
	lower  int
	count  int
	ids    []ulid.ULID
	output scroll.State
}

// NewULID returns a ULID page generating uppercase ids.
func NewULID(env Env) *ULID {
	return &ULID{base: newBase(msg.PageULID, env)}
}

// Translate maps page keys.
func (p *ULID) Translate(k tea.KeyMsg) msg.Msg {
	return p.translate(k, []binding{
		{p.keys.NextField, msg.SelectNextItem},
		{p.keys.PrevField, msg.SelectPrevItem},
		{p.keys.NextValue, msg.CurrentItemSelectNext},
		{p.keys.PrevValue, msg.CurrentItemSelectPrev},
		{p.keys.ScrollDown, msg.ScrollDown},
		{p.keys.ScrollUp, msg.ScrollUp},
		{p.keys.Copy, msg.Copy},
		{p.keys.Paste, msg.Paste},
		{p.keys.Generate, msg.Generate},
	})
}

// Dispatch applies a page action.
func (p *ULID) Dispatch(m msg.Msg) msg.Msg {
	pm, ok := p.own(m)
	if !ok {
		return nil
	}

	onOutput := p.field == ulidOutput
	switch pm.Action {
	case msg.SelectNextItem:
		p.field = cursor.Next(p.field, int(ulidFieldCount))
	case msg.SelectPrevItem:
		p.field = cursor.Prev(p.field, int(ulidFieldCount))
	case msg.CurrentItemSelectNext:
		p.stepValue(cursor.Inc[int])
	case msg.CurrentItemSelectPrev:
		p.stepValue(cursor.Dec[int])
	case msg.ScrollDown:
		if onOutput && len(p.ids) > 0 {
			p.output.ScrollDown()
		}
	case msg.ScrollUp:
		if onOutput && len(p.ids) > 0 {
			p.output.ScrollUp()
		}
	case msg.Generate:
		p.ids = tools.NewULIDs(p.count + 1)
		p.output.Reset()
	case msg.Copy:
		if onOutput {
			return p.copy(p.text())
		}
	case msg.Paste:
		if onOutput {
			return p.pasteIDs()
		}
	}
	return nil
}

func (p *ULID) stepValue(step func(int, int) int) {
	switch p.field {
	case ulidCase:
		p.lower = step(p.lower, len(ulidCaseItems))
	case ulidCount:
		p.count = step(p.count, MaxCount)
	}
}

func (p *ULID) pasteIDs() msg.Msg {
	text, note := p.paste()
	if note != nil {
		return note
	}
	ids, failures := tools.ParseULIDs(text)
	p.ids = ids
	p.output.Reset()
	if failures > 0 {
		return msg.Warn(fmt.Sprintf("Could not parse %d lines of string to ULID", failures))
	}
	return nil
}

func (p *ULID) text() string {
	lines := make([]string, len(p.ids))
	for i, id := range p.ids {
		lines[i] = tools.FormatULID(id, p.lower == 0)
	}
	return strings.Join(lines, "\n")
}

// Helps returns hints for the selected field.
func (p *ULID) Helps() []string {
	helps := []string{help(p.keys.NextField)}
	if p.field != ulidOutput {
		helps = append(helps, help(p.keys.NextValue))
	}
	helps = append(helps, "<Enter> Generate ulid")
	if p.field == ulidOutput {
		helps = append(helps, help(p.keys.ScrollDown), help(p.keys.Copy), help(p.keys.Paste))
	}
	return helps
}

// View renders the page.
func (p *ULID) View() string {
	w, h := p.Size()
	f := p.Focused()

	return stack(
		selectRow("Case", ulidCaseItems, p.lower, p.field == ulidCase, f, w),
		selectRow("Count", countItems, p.count, p.field == ulidCount, f, w),
		viewport("Output", p.text(), p.field == ulidOutput, f, w, max(h-2*selectHeight, 3), &p.output),
	)
}
