package playground

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/charx/foundation/utils/charx"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(Model)
	require.True(t, ok)
	return pm, cmd
}

func TestNewDefaults(t *testing.T) {
	m := New()
	assert.Equal(t, FieldSource, m.Focus())
	assert.Equal(t, ModeLength, m.Mode())
	assert.Equal(t, DefaultSource, m.Value(FieldSource))
	assert.Equal(t, DefaultStart, m.Value(FieldStart))
	assert.Equal(t, DefaultLength, m.Value(FieldSecond))
	assert.Equal(t, DefaultPattern, m.Value(FieldPattern))
	assert.NotNil(t, m.Init())
}

func TestFocusCycling(t *testing.T) {
	m := New()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldStart, m.Focus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldSource, m.Focus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldPattern, m.Focus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldSource, m.Focus())
}

func TestTypingGoesToFocusedInput(t *testing.T) {
	m := New()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})

	assert.Equal(t, "90", m.Value(FieldStart))
	assert.Equal(t, DefaultSource, m.Value(FieldSource))
}

func TestToggleMode(t *testing.T) {
	m := New()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, ModeBounds, m.Mode())
	assert.Contains(t, m.View(), "end")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, ModeLength, m.Mode())
}

func TestQuit(t *testing.T) {
	m := New()
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	m := New()
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestSelection(t *testing.T) {
	m := New()
	r, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, charx.Range{Start: 9, End: 13}, r)

	m.mode = ModeBounds
	m.SetValue(FieldSecond, "2")
	r, ok = m.Selection()
	require.True(t, ok)
	assert.Equal(t, charx.Range{Start: 2, End: 9}, r)

	m.SetValue(FieldStart, "nine")
	_, ok = m.Selection()
	assert.False(t, ok)
}

func rowsByOp(rows []Row) map[string]Row {
	out := make(map[string]Row, len(rows))
	for _, r := range rows {
		out[r.Op] = r
	}
	return out
}

func TestRowsLengthMode(t *testing.T) {
	rows := rowsByOp(New().Rows())

	assert.Equal(t, "27", rows["len"].Result)
	assert.Equal(t, "éèçà", rows["substr(9, 4)"].Result)
	assert.Equal(t, "éèçà 123 test home", rows["substr_end(9)"].Result)
	assert.Equal(t, "éèçà", rows["substru(9, 4)"].Result)
	assert.Equal(t, "Test 123  123 test home", rows["remove(9, 4)"].Result)
	assert.Equal(t, "18", rows[`indexof("test", 9)`].Result)
}

func TestRowsNegativeArguments(t *testing.T) {
	m := New()
	m.SetValue(FieldStart, "-4")
	m.SetValue(FieldSecond, "min")
	rows := rowsByOp(m.Rows())

	assert.Equal(t, "Test 123 éèçà 123 test h", rows["substr(-4, -9223372036854775808)"].Result)
	assert.Equal(t, "home", rows["substr_end(-4)"].Result)
	assert.NotEmpty(t, rows["substru/remove"].Err)
	assert.Equal(t, "18", rows[`indexof("test", 0)`].Result)
}
