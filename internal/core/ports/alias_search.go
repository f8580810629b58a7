package ports

import "github.com/AntonioJCosta/aliasview/internal/core/domain/alias"

// AliasSearch defines the contract for querying a mapping.
type AliasSearch interface {
	// Filter returns the aliases whose name or command contains query,
	// case-insensitively, in mapping order. An empty query returns everything.
	Filter(m alias.Mapping, query string) []alias.Alias

	// All returns every alias in mapping order.
	All(m alias.Mapping) []alias.Alias
}
