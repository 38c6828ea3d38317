package tokenui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/Bollo2014/MapToken/pkg/frames"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if m.InputMode {
			return m.handleInputKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

// handleKeys processes keys while browsing the catalog.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Frames)-1 {
			m.Cursor++
		}

	case "c":
		m.InputMode = true
		m.Err = ""
		m.ColorInput = textinput.New()
		m.ColorInput.Prompt = "# "
		m.ColorInput.CharLimit = 7
		m.ColorInput.SetValue(strings.TrimPrefix(m.Accent, "#"))
		cmd := m.ColorInput.Focus()
		return m, cmd

	case "enter", "s":
		return m.saveSelected()
	}

	return m, nil
}

// handleInputKeys processes keys while the color field is focused.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.InputMode = false
		return m, nil

	case "enter":
		accent := "#" + strings.TrimPrefix(strings.TrimSpace(m.ColorInput.Value()), "#")
		p, err := tones.Derive(accent)
		if err != nil {
			m.Err = fmt.Sprintf("not a color: %s", m.ColorInput.Value())
			return m, nil
		}
		m.Accent = strings.ToLower(accent)
		m.Palette = p
		m.InputMode = false
		m.Err = ""
		m.Status = ""
		return m, nil

	default:
		var cmd tea.Cmd
		m.ColorInput, cmd = m.ColorInput.Update(msg)
		return m, cmd
	}
}

// saveSelected renders the highlighted frame with the current accent
// and writes it next to the configured output directory.
func (m Model) saveSelected() (tea.Model, tea.Cmd) {
	d := m.Frames[m.Cursor]
	doc, err := frames.Render(d.ID, m.Accent)
	if err != nil {
		m.Err = err.Error()
		return m, nil
	}

	name := fmt.Sprintf("%s-%s.svg", d.ID, strings.TrimPrefix(m.Accent, "#"))
	path := filepath.Join(m.OutDir, name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		m.Err = err.Error()
		return m, nil
	}

	m.Err = ""
	m.Status = "saved " + path
	return m, nil
}
