package alias

import (
	"errors"
	"time"
)

// ErrSourceNotFound indicates that the alias source file could not be opened.
var ErrSourceNotFound = errors.New("alias source not found")

// ErrEditorLaunch indicates that the external editor failed to start or exited non-zero.
var ErrEditorLaunch = errors.New("editor launch failed")

// DiagnosticKind classifies a non-fatal condition found while loading aliases.
type DiagnosticKind int

const (
	// SourceNotFound: the source file could not be opened; the mapping is empty.
	SourceNotFound DiagnosticKind = iota + 1
	// MalformedLine: a line starts with "alias" but has no '='.
	MalformedLine
)

func (k DiagnosticKind) String() string {
	switch k {
	case SourceNotFound:
		return "source not found"
	case MalformedLine:
		return "malformed line"
	default:
		return "unknown"
	}
}

// Diagnostic is a non-fatal condition recorded while loading aliases.
type Diagnostic struct {
	Kind DiagnosticKind
	Line int // 1-based line number, 0 when not tied to a line
	Text string
	Err  error
}

// ParseResult is the output of parsing alias source lines.
type ParseResult struct {
	Mapping     Mapping
	Diagnostics []Diagnostic
}

/*
Snapshot is the result of a single load of the alias source. Snapshots are
never modified; reloading produces a new one.
*/
type Snapshot struct {
	Source      string
	Mapping     Mapping
	Diagnostics []Diagnostic
	LoadedAt    time.Time
}

// SourceMissing reports whether the snapshot was produced from a source that
// could not be opened.
func (s *Snapshot) SourceMissing() bool {
	for _, d := range s.Diagnostics {
		if d.Kind == SourceNotFound {
			return true
		}
	}
	return false
}

// Malformed returns the malformed-line diagnostics in line order.
func (s *Snapshot) Malformed() []Diagnostic {
	var out []Diagnostic
	for _, d := range s.Diagnostics {
		if d.Kind == MalformedLine {
			out = append(out, d)
		}
	}
	return out
}
