package ports

// SourceFinder defines the contract for locating the alias source file.
type SourceFinder interface {
	Find() (string, error)
}
