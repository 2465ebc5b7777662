package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SaveForm collects the destination filename for the generated script.
type SaveForm struct {
	input textinput.Model
	err   string
}

// NewSaveForm returns a focused filename form.
func NewSaveForm() *SaveForm {
	ti := textinput.New()
	ti.Placeholder = "setup.sh"
	ti.CharLimit = 128
	ti.Focus()
	return &SaveForm{input: ti}
}

// Focus returns the cursor blink command for the input field.
func (f *SaveForm) Focus() tea.Cmd {
	return textinput.Blink
}

// Update processes a key message. The second return value reports
// completion (enter with a non-empty path), the third cancellation (esc).
func (f *SaveForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			return nil, false, true
		case tea.KeyEnter:
			if f.Path() == "" {
				f.err = "filename must not be empty"
				return nil, false, false
			}
			f.err = ""
			return nil, true, false
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.Path() != "" {
		f.err = ""
	}
	return cmd, false, false
}

// Path returns the trimmed filename entered so far.
func (f *SaveForm) Path() string { return strings.TrimSpace(f.input.Value()) }

// InputView renders the text input.
func (f *SaveForm) InputView() string { return f.input.View() }

// Error returns the current validation message, if any.
func (f *SaveForm) Error() string { return f.err }
