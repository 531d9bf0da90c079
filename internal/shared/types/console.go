package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	// Heading decora o título do menu; sem cor retorna o texto intacto.
	Heading(text string) string

	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
}

// LineReader reads one line at a time from the interactive input stream.
type LineReader interface {
	ReadLine() (string, error)
}
