package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title                 lipgloss.Style
	Breadcrumb            lipgloss.Style
	Item                  lipgloss.Style
	SelectedItem          lipgloss.Style
	ItemIndicator         lipgloss.Style
	SelectedItemIndicator lipgloss.Style
	Group                 lipgloss.Style
	Error                 lipgloss.Style
	Info                  lipgloss.Style
	Footer                lipgloss.Style
	PreviewTitle          lipgloss.Style
	PreviewBody           lipgloss.Style
	FormTitle             lipgloss.Style
	FormHelp              lipgloss.Style
	FilterPrompt          lipgloss.Style
}

var defaultStyles = Styles{
	Title:                 lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
	Breadcrumb:            lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	Item:                  lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	SelectedItem:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	ItemIndicator:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	SelectedItemIndicator: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	Group:                 lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	Error:                 lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	Info:                  lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	Footer:                lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	PreviewTitle:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	PreviewBody:           lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	FormTitle:             lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	FormHelp:              lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	FilterPrompt:          lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}
