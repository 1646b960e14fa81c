package pages

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/avitaltamir/vibetools/internal/components/scroll"
	"github.com/avitaltamir/vibetools/internal/cursor"
	"github.com/avitaltamir/vibetools/internal/logger"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/tools"
)

// MaxCount is the largest number of ids generated at once.
const MaxCount = 100

type uuidField int

const (
	uuidDash uuidField = iota
	uuidCase
	uuidVersion
	uuidCount
	uuidOutput

	uuidFieldCount
)

var (
	dashItems  = []string{"With hyphens", "Without hyphens"}
	caseItems  = []string{"Lowercase", "Uppercase"}
	countItems = func() []string {
		out := make([]string, MaxCount)
		for i := range out {
			out[i] = strconv.Itoa(i + 1)
		}
		return out
	}()
)

// UUID generates and parses UUIDs.
type UUID struct {
	base
	field   uuidField
	dash    int
	upper   int
	version int
	count   int // index into countItems
	ids     []uuid.UUID
	output  scroll.State
}

// NewUUID returns a UUID page generating single v4 ids.
func NewUUID(env Env) *UUID {
	return &UUID{
		base:    newBase(msg.PageUUID, env),
		version: int(tools.UUIDv4),
	}
}

func (p *UUID) bindings() []binding {
	return []binding{
		{p.keys.NextField, msg.SelectNextItem},
		{p.keys.PrevField, msg.SelectPrevItem},
		{p.keys.NextValue, msg.CurrentItemSelectNext},
		{p.keys.PrevValue, msg.CurrentItemSelectPrev},
		{p.keys.ScrollDown, msg.ScrollDown},
		{p.keys.ScrollUp, msg.ScrollUp},
		{p.keys.Copy, msg.Copy},
		{p.keys.Paste, msg.Paste},
		{p.keys.Generate, msg.Generate},
	}
}

// Translate maps page keys.
func (p *UUID) Translate(k tea.KeyMsg) msg.Msg {
	return p.translate(k, p.bindings())
}

// Dispatch applies a page action.
func (p *UUID) Dispatch(m msg.Msg) msg.Msg {
	pm, ok := p.own(m)
	if !ok {
		return nil
	}

	switch pm.Action {
	case msg.SelectNextItem:
		p.field = cursor.Next(p.field, int(uuidFieldCount))
	case msg.SelectPrevItem:
		p.field = cursor.Prev(p.field, int(uuidFieldCount))
	case msg.CurrentItemSelectNext:
		p.stepValue(cursor.Inc[int])
	case msg.CurrentItemSelectPrev:
		p.stepValue(cursor.Dec[int])
	case msg.ScrollDown:
		if p.field == uuidOutput && len(p.ids) > 0 {
			p.output.ScrollDown()
		}
	case msg.ScrollUp:
		if p.field == uuidOutput && len(p.ids) > 0 {
			p.output.ScrollUp()
		}
	case msg.Generate:
		return p.generate()
	case msg.Copy:
		if p.field == uuidOutput {
			return p.copy(p.text())
		}
	case msg.Paste:
		if p.field == uuidOutput {
			return p.pasteIDs()
		}
	}
	return nil
}

func (p *UUID) stepValue(step func(int, int) int) {
	switch p.field {
	case uuidDash:
		p.dash = step(p.dash, len(dashItems))
	case uuidCase:
		p.upper = step(p.upper, len(caseItems))
	case uuidVersion:
		p.version = step(p.version, len(tools.UUIDVersionNames()))
	case uuidCount:
		p.count = step(p.count, MaxCount)
	}
}

func (p *UUID) generate() msg.Msg {
	ids, err := tools.NewUUIDs(p.count+1, tools.UUIDVersion(p.version))
	if err != nil {
		logger.Error("UUID: %v", err)
		return msg.Error("Generate failed")
	}
	p.ids = ids
	p.output.Reset()
	return nil
}

func (p *UUID) pasteIDs() msg.Msg {
	text, note := p.paste()
	if note != nil {
		return note
	}
	ids, failures := tools.ParseUUIDs(text)
	p.ids = ids
	p.output.Reset()
	if failures > 0 {
		return msg.Warn(fmt.Sprintf("Could not parse %d lines of string to UUID", failures))
	}
	return nil
}

// text formats the current ids with the selected options.
func (p *UUID) text() string {
	lines := make([]string, len(p.ids))
	for i, id := range p.ids {
		lines[i] = tools.FormatUUID(id, p.dash == 0, p.upper == 1)
	}
	return strings.Join(lines, "\n")
}

// Helps returns hints for the selected field.
func (p *UUID) Helps() []string {
	helps := []string{help(p.keys.NextField)}
	if p.field != uuidOutput {
		helps = append(helps, help(p.keys.NextValue))
	}
	helps = append(helps, "<Enter> Generate uuid")
	if p.field == uuidOutput {
		helps = append(helps, help(p.keys.ScrollDown), help(p.keys.Copy), help(p.keys.Paste))
	}
	return helps
}

// View renders the page.
func (p *UUID) View() string {
	w, h := p.Size()
	f := p.Focused()

	rows := []string{
		selectRow("Dash", dashItems, p.dash, p.field == uuidDash, f, w),
		selectRow("Case", caseItems, p.upper, p.field == uuidCase, f, w),
		selectRow("Version", tools.UUIDVersionNames(), p.version, p.field == uuidVersion, f, w),
		selectRow("Count", countItems, p.count, p.field == uuidCount, f, w),
	}
	outHeight := max(h-4*selectHeight, 3)
	rows = append(rows, viewport("Output", p.text(), p.field == uuidOutput, f, w, outHeight, &p.output))
	return stack(rows...)
}
