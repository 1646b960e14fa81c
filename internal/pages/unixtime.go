package pages

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/vibetools/internal/components/scroll"
	"github.com/avitaltamir/vibetools/internal/cursor"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/tools"
)

type unixField int

const (
	unixInput unixField = iota
	unixTimezone
	unixOutput

	unixFieldCount
)

var timezoneItems = []string{"UTC", "Local"}

// UnixTime converts between unix timestamps and datetimes.
type UnixTime struct {
	base
	field    unixField
	zone     int
	editing  bool
	input    textinput.Model
	output   string
	status   string
	level    msg.Level
	outState scroll.State
}

// NewUnixTime returns an empty UnixTime page showing UTC.
func NewUnixTime(env Env) *UnixTime {
	return &UnixTime{
		base:  newBase(msg.PageUnixTime, env),
		input: newInput(),
	}
}

// Editing reports whether the input is being edited.
func (p *UnixTime) Editing() bool {
	return p.editing
}

// Blur also ends an edit in progress.
func (p *UnixTime) Blur() {
	p.base.Blur()
	p.endEdit()
}

// Translate maps page keys. While editing every key goes to the input.
func (p *UnixTime) Translate(k tea.KeyMsg) msg.Msg {
	if p.editing {
		return p.translateEdit(k)
	}
	return p.translate(k, []binding{
		{p.keys.NextField, msg.SelectNextItem},
		{p.keys.PrevField, msg.SelectPrevItem},
		{p.keys.NextValue, msg.CurrentItemSelectNext},
		{p.keys.PrevValue, msg.CurrentItemSelectPrev},
		{p.keys.EditStart, msg.EditStart},
		{p.keys.Copy, msg.Copy},
		{p.keys.Paste, msg.Paste},
	})
}

// Dispatch applies a page action.
func (p *UnixTime) Dispatch(m msg.Msg) msg.Msg {
	pm, ok := p.own(m)
	if !ok {
		return nil
	}

	switch pm.Action {
	case msg.SelectNextItem:
		p.field = cursor.Next(p.field, int(unixFieldCount))
	case msg.SelectPrevItem:
		p.field = cursor.Prev(p.field, int(unixFieldCount))
	case msg.CurrentItemSelectNext:
		p.stepZone(cursor.Inc[int])
	case msg.CurrentItemSelectPrev:
		p.stepZone(cursor.Dec[int])
	case msg.EditStart:
		if p.field == unixInput {
			p.editing = true
			p.input.Focus()
		}
	case msg.EditEnd:
		p.endEdit()
	case msg.EditKey:
		if p.editing {
			p.input, _ = p.input.Update(pm.Key)
			p.recompute()
		}
	case msg.Copy:
		switch p.field {
		case unixInput:
			return p.copy(p.input.Value())
		case unixOutput:
			return p.copy(p.output)
		}
	case msg.Paste:
		if p.field == unixInput {
			text, note := p.paste()
			if note != nil {
				return note
			}
			p.input.SetValue(strings.TrimSpace(text))
			p.recompute()
		}
	}
	return nil
}

func (p *UnixTime) endEdit() {
	p.editing = false
	p.input.Blur()
}

func (p *UnixTime) stepZone(step func(int, int) int) {
	if p.field != unixTimezone {
		return
	}
	p.zone = step(p.zone, len(timezoneItems))
	p.recompute()
}

func (p *UnixTime) location() *time.Location {
	if p.zone == 1 {
		return p.env.Local
	}
	return time.UTC
}

func (p *UnixTime) recompute() {
	p.outState.Reset()
	value := p.input.Value()
	if strings.TrimSpace(value) == "" {
		p.output, p.status = "", ""
		return
	}

	conv, err := tools.ConvertTime(value, p.location())
	if err != nil {
		p.output = ""
		p.status, p.level = tools.ErrInvalidTime.Error(), msg.LevelWarn
		return
	}
	p.output = conv.Output
	p.status, p.level = conv.Status(), msg.LevelInfo
}

// Helps returns hints for the selected field.
func (p *UnixTime) Helps() []string {
	if p.editing {
		return []string{help(p.keys.EditEnd)}
	}
	helps := []string{help(p.keys.NextField)}
	switch p.field {
	case unixInput:
		helps = append(helps, help(p.keys.EditStart), help(p.keys.Copy), help(p.keys.Paste))
	case unixTimezone:
		helps = append(helps, help(p.keys.NextValue))
	case unixOutput:
		helps = append(helps, help(p.keys.Copy))
	}
	return helps
}

// View renders the page.
func (p *UnixTime) View() string {
	w, _ := p.Size()
	f := p.Focused()

	return stack(
		inputBox("Input", &p.input, p.editing, p.field == unixInput, f, w),
		statusRow(p.status, p.level, f, w),
		selectRow("Timezone", timezoneItems, p.zone, p.field == unixTimezone, f, w),
		viewport("Output", p.output, p.field == unixOutput, f, w, boxHeight, &p.outState),
	)
}
