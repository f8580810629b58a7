package ports

/*
ShellConfigReader defines the interface for reading the shell configuration
file that holds alias definitions. This is a driven port, implemented by a
repository adapter that knows where the file lives.
*/
type ShellConfigReader interface {
	/*
	   ReadLines returns the file's lines without line terminators.
	   If the file cannot be opened the error wraps alias.ErrSourceNotFound.
	*/
	ReadLines() ([]string, error)

	// SourcePath returns the absolute path of the file being read.
	SourcePath() string
}
