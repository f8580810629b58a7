/*
Package alias defines the core domain entities for shell aliases read from a
shell configuration file.
*/
package alias

/*
Alias is a single shell alias: a short name and the command text it expands
to. This is a core domain entity.
*/
type Alias struct {
	Name    string `yaml:"alias"`
	Command string `yaml:"command"`
}

/*
Mapping is an ordered, read-only set of aliases keyed by name.

Names are unique. Iteration follows the order in which each name was first
defined; redefining a name replaces its command but keeps its position.
The zero value is an empty mapping. A Mapping is only built through a
MappingBuilder and never changes afterwards.
*/
type Mapping struct {
	names    []string
	commands map[string]string
}

// Len returns the number of aliases in the mapping.
func (m Mapping) Len() int {
	return len(m.names)
}

// Get returns the command for name and whether it is defined.
func (m Mapping) Get(name string) (string, bool) {
	command, ok := m.commands[name]
	return command, ok
}

// Names returns the alias names in mapping order. The slice is a copy.
func (m Mapping) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Entries returns every alias in mapping order as a freshly allocated slice.
func (m Mapping) Entries() []Alias {
	entries := make([]Alias, 0, len(m.names))
	for _, name := range m.names {
		entries = append(entries, Alias{Name: name, Command: m.commands[name]})
	}
	return entries
}

// Equal reports whether both mappings hold the same name/command pairs,
// regardless of order.
func (m Mapping) Equal(other Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	for name, command := range m.commands {
		otherCommand, ok := other.commands[name]
		if !ok || otherCommand != command {
			return false
		}
	}
	return true
}

// MappingBuilder accumulates aliases for a new Mapping.
type MappingBuilder struct {
	names    []string
	commands map[string]string
}

// NewMappingBuilder returns an empty builder.
func NewMappingBuilder() *MappingBuilder {
	return &MappingBuilder{commands: make(map[string]string)}
}

// Set defines name, overwriting any earlier command for it (last write wins).
func (b *MappingBuilder) Set(name, command string) {
	if _, exists := b.commands[name]; !exists {
		b.names = append(b.names, name)
	}
	b.commands[name] = command
}

// Build returns the accumulated Mapping. The builder must not be used after
// Build; the returned Mapping owns its storage.
func (b *MappingBuilder) Build() Mapping {
	m := Mapping{names: b.names, commands: b.commands}
	b.names = nil
	b.commands = nil
	return m
}

// NewMapping builds a Mapping from aliases in order, applying last-write-wins
// for repeated names.
func NewMapping(aliases ...Alias) Mapping {
	b := NewMappingBuilder()
	for _, a := range aliases {
		b.Set(a.Name, a.Command)
	}
	return b.Build()
}
