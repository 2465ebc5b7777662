package ui

import (
	"fmt"
	"os"
	"unicode"

	"rdct/internal/catalog"
	"rdct/internal/logging/events"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeBrowsing:
		return m.handleBrowsingKey(keyMsg)
	case ModeReviewing:
		return m.handleReviewingKey(keyMsg)
	case ModeSaving:
		return m.handleSavingKey(keyMsg)
	}
	return nil
}

func (m *Model) handleBrowsingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "i":
		m.setMode(ModeReviewing)
		m.reboot = false
	case "r":
		m.setMode(ModeReviewing)
		m.reboot = true
	case "up":
		m.nav.MoveUp()
		m.traceCursor()
		m.nav.EnsureCursorVisible(m.maxVisibleItems())
	case "down":
		m.nav.MoveDown()
		m.traceCursor()
		m.nav.EnsureCursorVisible(m.maxVisibleItems())
	case "home":
		m.nav.MoveHome()
		m.nav.EnsureCursorVisible(m.maxVisibleItems())
	case "end":
		m.nav.MoveEnd()
		m.nav.EnsureCursorVisible(m.maxVisibleItems())
	case "right", "enter":
		m.activateCurrent()
	case "left", "backspace":
		if m.nav.Back() {
			events.UI.MenuBack(m.nav.Depth())
			m.nav.EnsureCursorVisible(m.maxVisibleItems())
		}
	}
	return nil
}

// traceCursor emits per-row cursor events. These fire on every keypress, so
// they stay behind the verbose switch.
func (m *Model) traceCursor() {
	if m.verbose {
		events.UI.MenuCursor(m.nav.Depth(), m.nav.Cursor())
	}
}

func (m *Model) activateCurrent() {
	rows := m.nav.Rows()
	if len(rows) == 0 {
		return
	}
	id := rows[m.nav.Cursor()].ID
	node := m.tree.Node(id)
	wasGroup := node.Kind == catalog.KindGroup
	if !m.nav.Activate() {
		return
	}
	if wasGroup {
		events.UI.MenuEnter(node.Name, m.nav.Depth())
		m.nav.EnsureCursorVisible(m.maxVisibleItems())
		return
	}
	events.UI.Toggle(node.Name, node.Selected)
}

func (m *Model) handleReviewingKey(msg tea.KeyMsg) tea.Cmd {
	if m.filterOn {
		return m.handleReviewFilterKey(msg)
	}
	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "s":
		m.saveForm = NewSaveForm()
		m.statusMsg = ""
		m.statusErr = false
		m.setMode(ModeSaving)
		return m.saveForm.Focus()
	case "r":
		m.finalScript = m.synthesize()
		m.outcome = OutcomeRun
		events.Script.Synthesized(len(m.tree.SelectedNames()), m.reboot)
		events.App.Exit("run")
		return tea.Quit
	case "/":
		m.filterOn = true
	case "esc", "backspace":
		if m.filter != "" {
			m.filter = ""
			return nil
		}
		m.setMode(ModeBrowsing)
	}
	return nil
}

func (m *Model) handleReviewFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filter = ""
		m.filterOn = false
	case tea.KeyEnter:
		m.filterOn = false
	case tea.KeyBackspace, tea.KeyCtrlH:
		if runes := []rune(m.filter); len(runes) > 0 {
			m.filter = string(runes[:len(runes)-1])
		}
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeySpace:
		m.filter += " "
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.filter += string(msg.Runes)
	}
	return nil
}

func (m *Model) handleSavingKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.saveForm == nil {
		m.setMode(ModeReviewing)
		return nil
	}
	cmd, done, cancel := m.saveForm.Update(msg)
	if cancel {
		m.saveForm = nil
		m.statusMsg = ""
		m.statusErr = false
		m.setMode(ModeReviewing)
		return cmd
	}
	if done {
		path := m.saveForm.Path()
		m.saveForm = nil
		m.writeScript(path)
		m.setMode(ModeReviewing)
		return cmd
	}
	return cmd
}

// writeScript persists the current script snapshot. Failure is recovered
// locally: it becomes a status message and the session continues.
func (m *Model) writeScript(path string) {
	content := m.synthesize()
	err := os.WriteFile(path, []byte(content), 0o644)
	events.Session.SaveResult(path, err)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		m.statusErr = true
		return
	}
	m.statusMsg = fmt.Sprintf("Saved to %s", path)
	m.statusErr = false
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	events.Session.ModeChange(m.mode.String(), mode.String())
	m.mode = mode
}

func (m *Model) quit() tea.Cmd {
	m.outcome = OutcomeQuit
	events.App.Exit("quit")
	return tea.Quit
}
