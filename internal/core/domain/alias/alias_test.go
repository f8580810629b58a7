package alias

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingBuilder_LastWriteWinsKeepsFirstPosition(t *testing.T) {
	b := NewMappingBuilder()
	b.Set("x", "1")
	b.Set("ll", "ls -la")
	b.Set("x", "2")
	m := b.Build()

	require.Equal(t, 2, m.Len())
	got, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, "2", got)
	assert.Equal(t, []string{"x", "ll"}, m.Names())
}

func TestMapping_EntriesIsFreshCopy(t *testing.T) {
	m := NewMapping(Alias{Name: "gs", Command: "git status"})

	first := m.Entries()
	first[0].Command = "changed"

	second := m.Entries()
	assert.Equal(t, "git status", second[0].Command)
	cmd, _ := m.Get("gs")
	assert.Equal(t, "git status", cmd)
}

func TestMapping_ZeroValue(t *testing.T) {
	var m Mapping
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Entries())
	_, ok := m.Get("anything")
	assert.False(t, ok)
}

func TestMapping_Equal(t *testing.T) {
	a := NewMapping(Alias{Name: "a", Command: "1"}, Alias{Name: "b", Command: "2"})
	b := NewMapping(Alias{Name: "b", Command: "2"}, Alias{Name: "a", Command: "1"})
	c := NewMapping(Alias{Name: "a", Command: "1"}, Alias{Name: "b", Command: "3"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Mapping{}))
}

func TestSnapshot_Diagnostics(t *testing.T) {
	s := &Snapshot{
		Diagnostics: []Diagnostic{
			{Kind: MalformedLine, Line: 3, Text: "alias broken"},
			{Kind: SourceNotFound, Err: ErrSourceNotFound},
			{Kind: MalformedLine, Line: 7, Text: "alias other"},
		},
	}

	assert.True(t, s.SourceMissing())
	malformed := s.Malformed()
	require.Len(t, malformed, 2)
	assert.Equal(t, 3, malformed[0].Line)
	assert.Equal(t, 7, malformed[1].Line)
	assert.True(t, errors.Is(s.Diagnostics[1].Err, ErrSourceNotFound))
	assert.Equal(t, "malformed line", MalformedLine.String())
}
