/*
Package session holds the alias view a user is looking at: the current
snapshot, and the search, reset, reload and edit actions over it.
*/
package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/core/ports"
)

// Session owns the current alias snapshot. Reload replaces the snapshot
// reference; snapshots themselves are never modified.
type Session struct {
	store    ports.AliasStore
	search   ports.AliasSearch
	editor   ports.EditorLauncher
	logger   *slog.Logger
	snapshot *alias.Snapshot
}

// New creates a Session. It panics if store or search is nil. editor may be
// nil, in which case EditSource always fails. logger may be nil.
func New(store ports.AliasStore, search ports.AliasSearch, editor ports.EditorLauncher, logger *slog.Logger) *Session {
	if store == nil {
		panic("aliasStore cannot be nil")
	}
	if search == nil {
		panic("aliasSearch cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{store: store, search: search, editor: editor, logger: logger}
}

// Load reads the alias source into a fresh snapshot and makes it current.
func (s *Session) Load() (*alias.Snapshot, error) {
	snapshot, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	s.snapshot = snapshot
	s.logger.Debug("aliases loaded",
		"source", snapshot.Source,
		"count", snapshot.Mapping.Len(),
		"diagnostics", len(snapshot.Diagnostics),
	)
	return snapshot, nil
}

// Reload is Load under the name the presentation layer uses after an edit.
func (s *Session) Reload() (*alias.Snapshot, error) {
	return s.Load()
}

// Current returns the current snapshot, loading it on first use.
func (s *Session) Current() (*alias.Snapshot, error) {
	if s.snapshot != nil {
		return s.snapshot, nil
	}
	return s.Load()
}

// Search returns the aliases in the current snapshot matching query.
func (s *Session) Search(query string) ([]alias.Alias, error) {
	snapshot, err := s.Current()
	if err != nil {
		return nil, err
	}
	return s.search.Filter(snapshot.Mapping, query), nil
}

// Reset returns every alias in the current snapshot.
func (s *Session) Reset() ([]alias.Alias, error) {
	snapshot, err := s.Current()
	if err != nil {
		return nil, err
	}
	return s.search.All(snapshot.Mapping), nil
}

// SourcePath returns the path the current snapshot was read from.
func (s *Session) SourcePath() (string, error) {
	snapshot, err := s.Current()
	if err != nil {
		return "", err
	}
	return snapshot.Source, nil
}

// EditSource opens the alias source in the editor and reloads once the
// editor exits. If the editor fails, the current snapshot is kept.
func (s *Session) EditSource() (*alias.Snapshot, error) {
	path, err := s.SourcePath()
	if err != nil {
		return nil, err
	}
	if s.editor == nil {
		return nil, fmt.Errorf("no editor configured: %w", alias.ErrEditorLaunch)
	}

	s.logger.Debug("opening editor", "path", path)
	if err := s.editor.Open(path); err != nil {
		s.logger.Warn("editor failed", "path", path, "error", err)
		return nil, fmt.Errorf("failed to edit %s: %w", path, err)
	}
	return s.Reload()
}
