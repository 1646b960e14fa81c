package pages

import (
	"errors"
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avitaltamir/vibetools/internal/cursor"
	"github.com/avitaltamir/vibetools/internal/logger"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/tools"
)

type numberField int

const (
	numberBinary numberField = iota
	numberOctal
	numberDecimal
	numberHex
	numberCase

	numberFieldCount
)

// numberBases maps the first four fields to their base.
var numberBases = [...]tools.Base{
	numberBinary:  tools.Binary,
	numberOctal:   tools.Octal,
	numberDecimal: tools.Decimal,
	numberHex:     tools.Hexadecimal,
}

var numberTitles = [...]string{"Binary", "Octal", "Decimal", "Hexadecimal"}

// NumberBase converts an unsigned integer between bases.
type NumberBase struct {
	base
	field   numberField
	upper   int
	editing bool
	value   *big.Int
	inputs  [len(numberBases)]textinput.Model
	status  [len(numberBases)]string
}

// NewNumberBase returns an empty NumberBase page.
func NewNumberBase(env Env) *NumberBase {
	p := &NumberBase{base: newBase(msg.PageNumberBase, env)}
	for i := range p.inputs {
		p.inputs[i] = newInput()
	}
	return p
}

// Editing reports whether a number field is being edited.
func (p *NumberBase) Editing() bool {
	return p.editing
}

// Blur also ends an edit in progress.
func (p *NumberBase) Blur() {
	p.base.Blur()
	p.endEdit()
}

// Translate maps page keys. While editing every key goes to the field.
func (p *NumberBase) Translate(k tea.KeyMsg) msg.Msg {
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
func (p *NumberBase) Dispatch(m msg.Msg) msg.Msg {
	pm, ok := p.own(m)
	if !ok {
		return nil
	}

	switch pm.Action {
	case msg.SelectNextItem:
		p.field = cursor.Next(p.field, int(numberFieldCount))
	case msg.SelectPrevItem:
		p.field = cursor.Prev(p.field, int(numberFieldCount))
	case msg.CurrentItemSelectNext:
		p.stepCase(cursor.Inc[int])
	case msg.CurrentItemSelectPrev:
		p.stepCase(cursor.Dec[int])
	case msg.EditStart:
		if in := p.selectedInput(); in != nil {
			p.editing = true
			in.Focus()
		}
	case msg.EditEnd:
		p.endEdit()
	case msg.EditKey:
		if in := p.selectedInput(); p.editing && in != nil {
			*in, _ = in.Update(pm.Key)
			p.update(p.field)
		}
	case msg.Copy:
		if in := p.selectedInput(); in != nil {
			return p.copy(in.Value())
		}
	case msg.Paste:
		if in := p.selectedInput(); in != nil {
			text, note := p.paste()
			if note != nil {
				return note
			}
			in.SetValue(strings.TrimSpace(text))
			p.update(p.field)
		}
	}
	return nil
}

func (p *NumberBase) selectedInput() *textinput.Model {
	if p.field >= numberCase {
		return nil
	}
	return &p.inputs[p.field]
}

func (p *NumberBase) endEdit() {
	p.editing = false
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

func (p *NumberBase) stepCase(step func(int, int) int) {
	if p.field != numberCase {
		return
	}
	p.upper = step(p.upper, len(caseItems))

	hex := p.inputs[numberHex].Value()
	if p.upper == 1 {
		hex = strings.ToUpper(hex)
	} else {
		hex = strings.ToLower(hex)
	}
	p.inputs[numberHex].SetValue(hex)
}

// update parses the edited field and rewrites the others from its value.
// The edited field keeps what was typed.
func (p *NumberBase) update(edited numberField) {
	text := p.inputs[edited].Value()
	if strings.TrimSpace(text) == "" {
		p.value = nil
		for i := range p.inputs {
			p.status[i] = ""
			if numberField(i) != edited {
				p.inputs[i].SetValue("")
			}
		}
		return
	}

	b := numberBases[edited]
	v, err := tools.ParseNumber(text, b)
	if err != nil {
		logger.Debug("NumberBase: %v", err)
		p.status[edited] = numberError(err, edited)
		return
	}

	p.value = v
	for i := range p.inputs {
		p.status[i] = ""
		if f := numberField(i); f != edited {
			p.inputs[i].SetValue(tools.FormatNumber(v, numberBases[f], p.upper == 1))
		}
	}
}

func numberError(err error, f numberField) string {
	if errors.Is(err, tools.ErrOverflow) {
		return "Number exceeds 128 bits"
	}
	return "Invalid " + numberBases[f].String() + " number"
}

// Helps returns hints for the selected field.
func (p *NumberBase) Helps() []string {
	if p.editing {
		return []string{help(p.keys.EditEnd)}
	}
	helps := []string{help(p.keys.NextField)}
	if p.field == numberCase {
		return append(helps, help(p.keys.NextValue))
	}
	return append(helps, help(p.keys.EditStart), help(p.keys.Copy), help(p.keys.Paste))
}

// View renders the page.
func (p *NumberBase) View() string {
	w, _ := p.Size()
	f := p.Focused()

	parts := make([]string, 0, 2*len(p.inputs)+1)
	for i := range p.inputs {
		field := numberField(i)
		sel := p.field == field
		parts = append(parts,
			inputBox(numberTitles[i], &p.inputs[i], p.editing && sel, sel, f, w),
			statusRow(p.status[i], msg.LevelError, f, w),
		)
	}
	parts = append(parts, selectRow("Case", caseItems, p.upper, p.field == numberCase, f, w))
	return stack(parts...)
}
