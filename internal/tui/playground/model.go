// ============================================================================
// charx - character-indexed string tools
// ============================================================================
//
// Package:     playground
// Description: Interactive Bubble Tea playground for charx operations
// Author:      msto63
// Created:     2025-11-08
// License:     MIT
// ============================================================================

package playground

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/charx/foundation/utils/charx"
	"github.com/msto63/charx/internal/script"
)

// Field identifies an input
type Field int

const (
	FieldSource Field = iota
	FieldStart
	FieldSecond // length or end, depending on the mode
	FieldPattern
	fieldCount
)

// Mode selects what the second number means
type Mode int

const (
	ModeLength Mode = iota
	ModeBounds
)

// Defaults shown on start
const (
	DefaultSource  = "Test 123 éèçà 123 test home"
	DefaultStart   = "9"
	DefaultLength  = "4"
	DefaultPattern = "test"
)

// Row is one computed line of the results panel
type Row struct {
	Op     string
	Result string
	Range  *charx.Range
	Err    string
}

// Model is the playground state
type Model struct {
	inputs [fieldCount]textinput.Model
	focus  Field
	mode   Mode

	keys keyMap
	help help.Model

	width  int
	height int
}

// New creates a playground with the default example loaded
func New() Model {
	labels := [fieldCount]string{"source", "start", "length", "pattern"}
	values := [fieldCount]string{DefaultSource, DefaultStart, DefaultLength, DefaultPattern}

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = labels[i]
		in.CharLimit = 512
		in.Width = 48
		in.SetValue(values[i])
		inputs[i] = in
	}
	inputs[FieldSource].Focus()

	return Model{
		inputs: inputs,
		keys:   defaultKeys,
		help:   help.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for i := range m.inputs {
			m.inputs[i].Width = max(10, msg.Width-16)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		if m.mode == ModeLength {
			m.mode = ModeBounds
		} else {
			m.mode = ModeLength
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(f Field) {
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
}

// Focus returns the focused field
func (m Model) Focus() Field { return m.focus }

// Mode returns the current mode
func (m Model) Mode() Mode { return m.mode }

// Value returns the text of an input
func (m Model) Value(f Field) string { return m.inputs[f].Value() }

// SetValue replaces the text of an input
func (m *Model) SetValue(f Field, v string) { m.inputs[f].SetValue(v) }

// Selection returns the range the current inputs select, or false when
// a number does not parse.
func (m Model) Selection() (charx.Range, bool) {
	total := charx.Len(m.Value(FieldSource))
	start, err1 := script.ParseSigned(m.Value(FieldStart))
	second, err2 := script.ParseSigned(m.Value(FieldSecond))
	if err1 != nil || err2 != nil {
		return charx.Range{}, false
	}
	if m.mode == ModeBounds {
		return charx.ResolveBounds(total, start, second), true
	}
	return charx.ResolveLength(total, start, second), true
}

// Rows computes the results panel for the current inputs
func (m Model) Rows() []Row {
	src := m.Value(FieldSource)
	total := charx.Len(src)
	pattern := m.Value(FieldPattern)

	rows := []Row{{Op: "len", Result: strconv.Itoa(total)}}

	start, startErr := script.ParseSigned(m.Value(FieldStart))
	second, secondErr := script.ParseSigned(m.Value(FieldSecond))
	secondName := "length"
	if m.mode == ModeBounds {
		secondName = "end"
	}

	switch {
	case startErr != nil:
		rows = append(rows, Row{Op: "start", Err: startErr.Error()})
	case secondErr != nil:
		rows = append(rows, Row{Op: secondName, Err: secondErr.Error()})
	case m.mode == ModeBounds:
		r := charx.ResolveBounds(total, start, second)
		rows = append(rows, Row{Op: fmt.Sprintf("substring(%d, %d)", start, second), Result: charx.Substring(src, start, second), Range: &r})
	default:
		r := charx.ResolveLength(total, start, second)
		rows = append(rows, Row{Op: fmt.Sprintf("substr(%d, %d)", start, second), Result: charx.Substr(src, start, second), Range: &r})
	}

	if startErr == nil {
		r := charx.ResolveToEnd(total, start)
		rows = append(rows, Row{Op: fmt.Sprintf("substr_end(%d)", start), Result: charx.SubstrToEnd(src, start), Range: &r})
	}

	if startErr == nil && secondErr == nil && m.mode == ModeLength {
		if start >= 0 && second >= 0 {
			us, ul := uint(start), uint(second)
			r := charx.ResolveUnsigned(total, us, ul)
			rows = append(rows,
				Row{Op: fmt.Sprintf("substru(%d, %d)", us, ul), Result: charx.SubstrUnsigned(src, us, ul), Range: &r},
				Row{Op: fmt.Sprintf("remove(%d, %d)", us, ul), Result: charx.Remove(src, us, ul)},
			)
		} else {
			rows = append(rows, Row{Op: "substru/remove", Err: "need non-negative start and length"})
		}
	}

	from := uint(0)
	if startErr == nil && start > 0 {
		from = uint(start)
	}
	idx := charx.IndexOf(src, pattern, from)
	result := strconv.Itoa(idx)
	if idx == charx.NotFound {
		result += " (not found)"
	}
	rows = append(rows, Row{Op: fmt.Sprintf("indexof(%q, %d)", pattern, from), Result: result})

	return rows
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("charx playground"))
	b.WriteString("\n")

	labels := [fieldCount]string{"source", "start", "length", "pattern"}
	if m.mode == ModeBounds {
		labels[FieldSecond] = "end"
	}
	for i := Field(0); i < fieldCount; i++ {
		style := LabelStyle
		if i == m.focus {
			style = FocusedLabelStyle
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(PanelStyle.Render(m.renderSource()))
	b.WriteString("\n")
	b.WriteString(PanelStyle.Render(m.renderRows()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderSource() string {
	src := m.Value(FieldSource)
	r, ok := m.Selection()
	if !ok || r.IsEmpty() {
		return DimStyle.Render("[") + src + DimStyle.Render("]")
	}
	before := charx.Substring(src, 0, r.Start)
	span := charx.Substring(src, r.Start, r.End)
	after := charx.SubstrToEnd(src, r.End)
	return DimStyle.Render("[") + before + SpanStyle.Render(span) + after + DimStyle.Render("]") +
		"  " + RangeStyle.Render(r.String())
}

func (m Model) renderRows() string {
	lines := make([]string, 0, 8)
	for _, row := range m.Rows() {
		var line string
		if row.Err != "" {
			line = OpStyle.Render(row.Op) + ErrorStyle.Render(row.Err)
		} else {
			line = OpStyle.Render(row.Op) + ResultStyle.Render(strconv.Quote(row.Result))
			if row.Range != nil {
				line += "  " + RangeStyle.Render(row.Range.String())
			}
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run starts the playground
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
