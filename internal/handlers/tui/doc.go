// Package tui provides the interactive alias browser: a search line that
// filters on every keystroke, a scrollable list of matching aliases, and
// key bindings to reset the search, edit the source file, and pick an
// alias. Built on bubbletea.
package tui
