package ports

import "github.com/AntonioJCosta/aliasview/internal/core/domain/alias"

// AliasStore defines the contract for turning shell configuration text into aliases.
type AliasStore interface {
	// Parse extracts alias definitions from lines. It never fails; malformed
	// alias lines are skipped and reported as diagnostics.
	Parse(lines []string) alias.ParseResult

	// Load reads and parses the configured source. A source that cannot be
	// opened yields an empty snapshot with a SourceNotFound diagnostic and a nil
	// error; only read failures on an opened file are returned.
	Load() (*alias.Snapshot, error)
}
