package aliasstore

import "strings"

const aliasPrefix = "alias"

// aliasKeywordLen is the width of "alias " stripped from the left of '='.
const aliasKeywordLen = len("alias ")

type lineStatus int

const (
	lineIgnored lineStatus = iota
	lineAlias
	lineMalformed
)

// parseAliasLine recognizes `alias name=value`. The line must start with
// "alias" exactly; leading whitespace disqualifies it.
func parseAliasLine(line string) (name string, command string, status lineStatus) {
	if !strings.HasPrefix(line, aliasPrefix) {
		return "", "", lineIgnored
	}

	left, right, found := strings.Cut(line, "=")
	if !found {
		return "", "", lineMalformed
	}

	if len(left) >= aliasKeywordLen {
		name = left[aliasKeywordLen:]
	}
	return name, unquoteCommand(right), lineAlias
}

// unquoteCommand trims whitespace, then drops one enclosing pair of single
// quotes. Inner quotes are left as they are.
func unquoteCommand(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}
	return value
}
