package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/input"
	"github.com/rshade/footprint/internal/report"
)

func recalc(snap input.Snapshot) report.Summary {
	b := report.NewBuilder(factors.Default(), nil)
	return report.NewSummary(b.Calculate(snap))
}

func TestRenderSummary(t *testing.T) {
	s := recalc(input.New(map[string]string{
		input.FieldKmTotal:        "10000",
		input.FieldVehiclesDiesel: "1",
	}))

	out := RenderSummary(s, 60)
	assert.Contains(t, out, "CO₂-BILANZ")
	assert.Contains(t, out, "Gesamt")
	assert.Contains(t, out, "1.700 kg")
	assert.Contains(t, out, "136")
	assert.Contains(t, out, "Jahresaufnahme")
	assert.Contains(t, out, "hohe Säule")
	assert.Contains(t, out, "Berliner Fernsehturm")

	empty := RenderSummary(report.Summary{}, 10)
	assert.NotContains(t, empty, "Jahresaufnahme")
	assert.Contains(t, empty, "0 kg")
}

func TestWritePlainSummary(t *testing.T) {
	var buf bytes.Buffer
	s := report.Summary{Scope1Kg: 1700, TotalKg: 1700, TreeYears: 136}

	require.NoError(t, WritePlainSummary(&buf, s))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "Scope 1:"))
	assert.Contains(t, lines[0], "1.700 kg")
	assert.Contains(t, lines[4], "136")
	assert.NotContains(t, buf.String(), "\x1b[", "no styling in plain output")
}

func TestWritePlainSummaryAppendsDisplayText(t *testing.T) {
	var buf bytes.Buffer
	s := recalc(input.New(map[string]string{
		input.FieldKmTotal:        "10000",
		input.FieldVehiclesDiesel: "1",
	}))

	require.NoError(t, WritePlainSummary(&buf, s))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, s.DisplayText, lines[8])
	assert.Contains(t, lines[8], "136 Bäumen")
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewModelEditRecalculates(t *testing.T) {
	m := NewPreviewModel(input.New(map[string]string{input.FieldVehiclesDiesel: "1"}), recalc)
	assert.Zero(t, m.Summary().TotalKg)

	// km_total is the first field.
	_, cmd := m.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, PreviewStateEditing, m.State())

	m.Update(runes("1000"))
	m.Update(key(tea.KeyBackspace))
	m.Update(runes("00"))
	assert.Contains(t, m.View(), "10000"+cursorIndicator)

	_, cmd = m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, PreviewStateBrowsing, m.State())

	m.Update(cmd())
	assert.InDelta(t, 1700.0, m.Summary().TotalKg, 1e-9)
	raw, ok := m.Snapshot().Raw(input.FieldKmTotal)
	assert.True(t, ok)
	assert.Equal(t, "10000", raw)
}

func TestPreviewModelEscapeDiscardsEdit(t *testing.T) {
	snap := input.New(map[string]string{input.FieldKmTotal: "5"})
	m := NewPreviewModel(snap, recalc)

	m.Update(key(tea.KeyEnter))
	m.Update(runes("99"))
	_, cmd := m.Update(key(tea.KeyEsc))
	assert.Nil(t, cmd)
	assert.Equal(t, PreviewStateBrowsing, m.State())

	raw, _ := m.Snapshot().Raw(input.FieldKmTotal)
	assert.Equal(t, "5", raw)
}

func TestPreviewModelNavigation(t *testing.T) {
	m := NewPreviewModel(input.New(map[string]string{"bemerkung": "x"}), recalc)

	m.Update(key(tea.KeyDown))
	field, ok := m.focusedField()
	require.True(t, ok)
	assert.Equal(t, input.FieldVehiclesDiesel, field)

	assert.Equal(t, "bemerkung", m.fields[len(m.fields)-1], "extra fields follow the known ones")

	view := m.View()
	assert.Contains(t, view, input.FieldKmTotal)
	assert.Contains(t, view, "q: beenden")
}

func TestPreviewModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "q", msg: runes("q")},
		{name: "ctrl+c", msg: key(tea.KeyCtrlC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPreviewModel(input.New(nil), recalc)
			_, cmd := m.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, PreviewStateQuitting, m.State())
			assert.Empty(t, m.View())
		})
	}
}

func TestPreviewModelQWhileEditingIsText(t *testing.T) {
	m := NewPreviewModel(input.New(nil), recalc)
	m.Update(key(tea.KeyEnter))

	_, cmd := m.Update(runes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, PreviewStateEditing, m.State())
}

func TestPreviewModelWindowSize(t *testing.T) {
	m := NewPreviewModel(input.New(nil), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, minTableHeight, m.tableHeight())
	assert.Nil(t, m.Init())
}
