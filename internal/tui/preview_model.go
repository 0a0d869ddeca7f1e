package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/footprint/internal/input"
	"github.com/rshade/footprint/internal/report"
)

// PreviewState represents the current state of the preview.
type PreviewState int

const (
	// PreviewStateBrowsing indicates the user is moving through the fields.
	PreviewStateBrowsing PreviewState = iota
	// PreviewStateEditing indicates a field value is being edited.
	PreviewStateEditing
	// PreviewStateQuitting indicates the program is exiting.
	PreviewStateQuitting
)

// RecalculateFunc computes the on-screen figures for a snapshot.
type RecalculateFunc func(snap input.Snapshot) report.Summary

// previewRecalculateMsg carries the result of a recalculation.
type previewRecalculateMsg struct {
	summary report.Summary
}

// Default dimensions and column widths.
const (
	previewDefaultWidth  = 80
	previewDefaultHeight = 24
	fieldColumnWidth     = 26
	valueColumnWidth     = 26
	summaryHeight        = 12
	minTableHeight       = 5
	cursorIndicator      = "▌"
)

// PreviewModel is the Bubble Tea model behind `calculate --interactive`.
// Every committed edit recalculates the summary from the full snapshot.
type PreviewModel struct {
	snapshot input.Snapshot
	fields   []string
	table    table.Model
	summary  report.Summary

	state      PreviewState
	editBuffer string

	width  int
	height int

	recalculateFn RecalculateFunc
}

// NewPreviewModel creates a preview over snap. The known input fields are
// listed first in their canonical order, followed by any extra fields.
func NewPreviewModel(snap input.Snapshot, recalculateFn RecalculateFunc) *PreviewModel {
	m := &PreviewModel{
		snapshot:      snap,
		fields:        append(input.KnownFields(), snap.UnknownFields()...),
		state:         PreviewStateBrowsing,
		width:         previewDefaultWidth,
		height:        previewDefaultHeight,
		recalculateFn: recalculateFn,
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Feld", Width: fieldColumnWidth},
			{Title: "Wert", Width: valueColumnWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	m.table.SetStyles(s)
	m.refreshRows()

	if recalculateFn != nil {
		m.summary = recalculateFn(snap)
	}
	return m
}

// Init initializes the model.
func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case previewRecalculateMsg:
		m.summary = msg.summary
		return m, nil

	case tea.KeyMsg:
		if m.state == PreviewStateEditing {
			return m.handleEditModeKey(msg)
		}
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input while browsing.
//
//nolint:exhaustive // Only handling relevant key types for preview navigation.
func (m *PreviewModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = PreviewStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			m.state = PreviewStateQuitting
			return m, tea.Quit
		}

	case tea.KeyEnter:
		if field, ok := m.focusedField(); ok {
			m.state = PreviewStateEditing
			m.editBuffer, _ = m.snapshot.Raw(field)
			m.refreshRows()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleEditModeKey processes keyboard input while editing a field.
//
//nolint:exhaustive // Only handling relevant key types for text editing.
func (m *PreviewModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = PreviewStateQuitting
		return m, tea.Quit

	case tea.KeyEnter:
		field, _ := m.focusedField()
		m.snapshot = m.snapshot.With(map[string]string{field: m.editBuffer})
		m.state = PreviewStateBrowsing
		m.editBuffer = ""
		m.refreshRows()
		if m.recalculateFn != nil {
			return m, m.triggerRecalculation()
		}
		return m, nil

	case tea.KeyEsc:
		m.state = PreviewStateBrowsing
		m.editBuffer = ""
		m.refreshRows()
		return m, nil

	case tea.KeyBackspace:
		runes := []rune(m.editBuffer)
		if len(runes) > 0 {
			m.editBuffer = string(runes[:len(runes)-1])
		}

	case tea.KeyRunes, tea.KeySpace:
		m.editBuffer += string(msg.Runes)
	}

	m.refreshRows()
	return m, nil
}

// triggerRecalculation creates a command that recalculates the summary.
func (m *PreviewModel) triggerRecalculation() tea.Cmd {
	// Capture before the command runs to avoid reading model fields concurrently.
	snap := m.snapshot
	recalculateFn := m.recalculateFn

	return func() tea.Msg {
		return previewRecalculateMsg{summary: recalculateFn(snap)}
	}
}

// View renders the current view.
func (m *PreviewModel) View() string {
	if m.state == PreviewStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderSummary(m.summary, m.width))
	sb.WriteString("\n\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n\n")
	sb.WriteString(SubtleStyle.Render(m.help()))
	return sb.String()
}

func (m *PreviewModel) help() string {
	if m.state == PreviewStateEditing {
		return "Enter: übernehmen • Esc: abbrechen"
	}
	return "↑/↓: Feld wählen • Enter: bearbeiten • q: beenden"
}

// Snapshot returns the snapshot including all committed edits.
func (m *PreviewModel) Snapshot() input.Snapshot {
	return m.snapshot
}

// Summary returns the most recent figures.
func (m *PreviewModel) Summary() report.Summary {
	return m.summary
}

// State returns the current state.
func (m *PreviewModel) State() PreviewState {
	return m.state
}

func (m *PreviewModel) focusedField() (string, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.fields) {
		return "", false
	}
	return m.fields[i], true
}

func (m *PreviewModel) refreshRows() {
	focused, _ := m.focusedField()
	rows := make([]table.Row, len(m.fields))
	for i, field := range m.fields {
		value, ok := m.snapshot.Raw(field)
		if !ok {
			value = m.snapshot.Enum(field)
		}
		if m.state == PreviewStateEditing && field == focused {
			value = m.editBuffer + cursorIndicator
		}
		rows[i] = table.Row{field, value}
	}
	m.table.SetRows(rows)
}

func (m *PreviewModel) tableHeight() int {
	return max(m.height-summaryHeight, minTableHeight)
}
