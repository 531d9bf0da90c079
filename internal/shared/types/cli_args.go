package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	LogLevel   string
	Color      bool
}
