package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// InputArea wraps a bubbles textarea.Model for one of the two free-text
// fields. Every edit is reported back to the parent so token counts can be
// recomputed from the full contents.
type InputArea struct {
	title    string
	textarea textarea.Model
}

// NewInputArea creates an InputArea with the given title and placeholder.
func NewInputArea(title, placeholder string) *InputArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = "│ "
	ta.SetHeight(3)
	ta.CharLimit = 0

	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.UnsetBackground()

	return &InputArea{title: title, textarea: ta}
}

// Title returns the field label.
func (ia *InputArea) Title() string { return ia.title }

// Value returns the current text content.
func (ia *InputArea) Value() string {
	return ia.textarea.Value()
}

// SetValue replaces the text content.
func (ia *InputArea) SetValue(s string) {
	ia.textarea.SetValue(s)
}

// Reset clears the text content.
func (ia *InputArea) Reset() {
	ia.textarea.Reset()
}

// SetWidth resizes the text area.
func (ia *InputArea) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	ia.textarea.SetWidth(w)
}

// Update delegates a message to the textarea and returns any command.
func (ia *InputArea) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	ia.textarea, cmd = ia.textarea.Update(msg)
	return cmd
}

// View renders the textarea.
func (ia *InputArea) View() string {
	return ia.textarea.View()
}

// Focus gives the textarea focus.
func (ia *InputArea) Focus() tea.Cmd {
	return ia.textarea.Focus()
}

// Blur removes focus from the textarea.
func (ia *InputArea) Blur() {
	ia.textarea.Blur()
}

// Focused reports whether the textarea has focus.
func (ia *InputArea) Focused() bool {
	return ia.textarea.Focused()
}
