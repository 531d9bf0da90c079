package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	LogLevel string             `json:"log_level" yaml:"log_level" toml:"log_level"`
	Color    bool               `json:"color" yaml:"color" toml:"color"`
	Seed     map[string]float64 `json:"seed" yaml:"seed" toml:"seed"`
}

// EnvConfig contém as configurações lidas das variáveis de ambiente.
type EnvConfig struct {
	ConfigFile string `env:"EXPENSE_MANAGER_CONFIG_FILE"`
	LogLevel   string `env:"EXPENSE_MANAGER_LOG_LEVEL"`

	// Color fica nil quando a variável não está definida.
	Color *bool `env:"EXPENSE_MANAGER_COLOR"`
}
