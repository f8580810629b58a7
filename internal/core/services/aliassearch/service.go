package aliassearch

import (
	"strings"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/core/ports"
)

type service struct{}

// NewService creates a new alias search service.
func NewService() ports.AliasSearch {
	return &service{}
}

// Filter returns every alias whose lowercased name or command contains the
// lowercased query. An empty query returns the whole mapping.
func (s *service) Filter(m alias.Mapping, query string) []alias.Alias {
	if query == "" {
		return m.Entries()
	}

	needle := strings.ToLower(query)
	matches := make([]alias.Alias, 0)
	for _, a := range m.Entries() {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.Command), needle) {
			matches = append(matches, a)
		}
	}
	return matches
}

// All returns every alias in mapping order.
func (s *service) All(m alias.Mapping) []alias.Alias {
	return m.Entries()
}
