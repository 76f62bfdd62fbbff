package ui

// CobraOutWriter routes Cobra's stdout (help, usage, version) through the
// configured writer. Output is dropped in quiet mode.
type CobraOutWriter struct{}

// NewCobraOutWriter creates a new Cobra stdout writer.
func NewCobraOutWriter() *CobraOutWriter {
	return &CobraOutWriter{}
}

func (w *CobraOutWriter) Write(p []byte) (n int, err error) {
	if IsQuiet() {
		return len(p), nil
	}
	return Writer().Write(p)
}

// CobraErrWriter routes Cobra's stderr through the configured error writer.
type CobraErrWriter struct{}

// NewCobraErrWriter creates a new Cobra stderr writer.
func NewCobraErrWriter() *CobraErrWriter {
	return &CobraErrWriter{}
}

func (w *CobraErrWriter) Write(p []byte) (n int, err error) {
	return ErrWriter().Write(p)
}
