package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/core/services/aliassearch"
	"github.com/AntonioJCosta/aliasview/internal/core/services/aliasstore"
	"github.com/AntonioJCosta/aliasview/internal/core/testutil"
)

// fileReader serves whatever lines are currently in content, so tests can
// simulate an edit changing the file.
func fileReader(content *[]string) *testutil.MockShellConfigReader {
	return &testutil.MockShellConfigReader{
		ReadLinesFunc: func() ([]string, error) {
			return *content, nil
		},
	}
}

func newSession(reader *testutil.MockShellConfigReader, editor *testutil.MockEditorLauncher) *Session {
	return New(aliasstore.NewService(reader), aliassearch.NewService(), editor, nil)
}

func TestNew_PanicsOnMissingCollaborators(t *testing.T) {
	assert.Panics(t, func() { New(nil, aliassearch.NewService(), nil, nil) })
	assert.Panics(t, func() {
		New(aliasstore.NewService(&testutil.MockShellConfigReader{}), nil, nil, nil)
	})
}

func TestSession_SearchAndReset(t *testing.T) {
	content := []string{"alias ll='ls -la'", "alias gs=git status", "alias LL2=ls"}
	reader := fileReader(&content)
	s := newSession(reader, &testutil.MockEditorLauncher{})

	matches, err := s.Search("ll")
	require.NoError(t, err)
	assert.Equal(t, []alias.Alias{
		{Name: "ll", Command: "ls -la"},
		{Name: "LL2", Command: "ls"},
	}, matches)

	all, err := s.Reset()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Searching repeatedly does not reread the file.
	_, err = s.Search("status")
	require.NoError(t, err)
	assert.Equal(t, 1, reader.ReadLinesCalls)
}

func TestSession_ReloadReplacesSnapshot(t *testing.T) {
	content := []string{"alias a=1"}
	s := newSession(fileReader(&content), nil)

	first, err := s.Load()
	require.NoError(t, err)

	content = []string{"alias a=2", "alias b=3"}
	second, err := s.Reload()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	cmd, _ := first.Mapping.Get("a")
	assert.Equal(t, "1", cmd, "old snapshot must not change")
	assert.Equal(t, 2, second.Mapping.Len())

	current, err := s.Current()
	require.NoError(t, err)
	assert.Same(t, second, current)
}

func TestSession_SourceNotFoundIsSoft(t *testing.T) {
	reader := &testutil.MockShellConfigReader{
		ReadLinesFunc: func() ([]string, error) {
			return nil, fmt.Errorf("open: %w", alias.ErrSourceNotFound)
		},
	}
	s := newSession(reader, nil)

	matches, err := s.Search("")
	require.NoError(t, err)
	assert.Empty(t, matches)

	snapshot, err := s.Current()
	require.NoError(t, err)
	assert.True(t, snapshot.SourceMissing())
}

func TestSession_EditSource(t *testing.T) {
	t.Run("reloads after the editor exits", func(t *testing.T) {
		content := []string{"alias a=1"}
		editor := &testutil.MockEditorLauncher{}
		editor.OpenFunc = func(path string) error {
			content = append(content, "alias added='echo hi'")
			return nil
		}
		s := newSession(fileReader(&content), editor)

		snapshot, err := s.EditSource()
		require.NoError(t, err)
		assert.Equal(t, []string{"/home/test/.zshrc"}, editor.OpenCalls)
		cmd, ok := snapshot.Mapping.Get("added")
		require.True(t, ok)
		assert.Equal(t, "echo hi", cmd)
	})

	t.Run("editor failure keeps the current snapshot", func(t *testing.T) {
		content := []string{"alias a=1"}
		launchErr := fmt.Errorf("vi exited with status 1: %w", alias.ErrEditorLaunch)
		editor := &testutil.MockEditorLauncher{
			OpenFunc: func(string) error { return launchErr },
		}
		s := newSession(fileReader(&content), editor)
		before, err := s.Load()
		require.NoError(t, err)

		_, err = s.EditSource()
		require.Error(t, err)
		assert.True(t, errors.Is(err, alias.ErrEditorLaunch))

		after, err := s.Current()
		require.NoError(t, err)
		assert.Same(t, before, after)
	})

	t.Run("no editor configured", func(t *testing.T) {
		content := []string{}
		s := New(aliasstore.NewService(fileReader(&content)), aliassearch.NewService(), nil, nil)

		_, err := s.EditSource()
		assert.ErrorIs(t, err, alias.ErrEditorLaunch)
	})
}

func TestSession_LoadErrorPropagates(t *testing.T) {
	readErr := errors.New("boom")
	reader := &testutil.MockShellConfigReader{
		ReadLinesFunc: func() ([]string, error) { return nil, readErr },
	}
	s := newSession(reader, nil)

	_, err := s.Search("x")
	assert.ErrorIs(t, err, readErr)
}
