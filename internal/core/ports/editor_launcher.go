package ports

// EditorLauncher opens a file in the user's editor and waits for it to exit.
// A failure to start or a non-zero exit returns an error wrapping alias.ErrEditorLaunch.
type EditorLauncher interface {
	Open(path string) error
}
