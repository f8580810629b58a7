package aliasstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/core/ports"
)

type service struct {
	reader ports.ShellConfigReader
	now    func() time.Time
}

// NewService creates a new alias store backed by the given reader.
// It panics if the reader is nil.
func NewService(r ports.ShellConfigReader) ports.AliasStore {
	if r == nil {
		panic("shellConfigReader cannot be nil")
	}
	return &service{reader: r, now: time.Now}
}

// Parse extracts alias definitions from lines.
func (s *service) Parse(lines []string) alias.ParseResult {
	builder := alias.NewMappingBuilder()
	var diagnostics []alias.Diagnostic

	for i, line := range lines {
		name, command, status := parseAliasLine(line)
		switch status {
		case lineAlias:
			builder.Set(name, command)
		case lineMalformed:
			diagnostics = append(diagnostics, alias.Diagnostic{
				Kind: alias.MalformedLine,
				Line: i + 1,
				Text: line,
			})
		}
	}

	return alias.ParseResult{Mapping: builder.Build(), Diagnostics: diagnostics}
}

// Load reads the configured source and parses it into a new snapshot.
func (s *service) Load() (*alias.Snapshot, error) {
	snapshot := &alias.Snapshot{
		Source:   s.reader.SourcePath(),
		LoadedAt: s.now(),
	}

	lines, err := s.reader.ReadLines()
	if err != nil {
		if errors.Is(err, alias.ErrSourceNotFound) {
			snapshot.Diagnostics = []alias.Diagnostic{{
				Kind: alias.SourceNotFound,
				Text: snapshot.Source,
				Err:  err,
			}}
			return snapshot, nil
		}
		return nil, fmt.Errorf("failed to load aliases from %s: %w", snapshot.Source, err)
	}

	result := s.Parse(lines)
	snapshot.Mapping = result.Mapping
	snapshot.Diagnostics = result.Diagnostics
	return snapshot, nil
}
