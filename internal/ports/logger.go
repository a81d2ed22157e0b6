package ports

// Logger is the host's user-facing log sink
type Logger interface {
	// Error prints a labeled error block with the serialized error detail
	Error(label string, err error)

	// Log prints an informational message
	Log(message string)

	// Warn prints a warning regardless of verbosity
	Warn(message string)
}
