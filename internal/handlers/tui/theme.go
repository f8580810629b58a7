package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette of the alias browser.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	AliasName   lipgloss.Color
	QueryPrompt lipgloss.Color
	HeaderText  lipgloss.Color
	ErrorText   lipgloss.Color
	HelpText    lipgloss.Color
}

// DefaultTheme is tuned for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	AliasName:   lipgloss.Color("75"),
	QueryPrompt: lipgloss.Color("214"),
	HeaderText:  lipgloss.Color("111"),
	ErrorText:   lipgloss.Color("203"),
	HelpText:    lipgloss.Color("241"),
}
