package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like the source path
)

// Alias Specific Colors
var (
	AliasKeywordColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	AliasNameColor    = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor     = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// DisableColors turns off ANSI colors for every color func in this package.
func DisableColors() {
	color.NoColor = true
}
