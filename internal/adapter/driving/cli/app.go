package cli

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/diillson/expense-manager-go/internal/adapter/driven/config"
	"github.com/diillson/expense-manager-go/internal/adapter/driven/memory"
	"github.com/diillson/expense-manager-go/internal/application/usecase"
	"github.com/diillson/expense-manager-go/internal/domain/repository"
	"github.com/diillson/expense-manager-go/internal/shared/types"
	"github.com/diillson/expense-manager-go/pkg/console"
	"github.com/diillson/expense-manager-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
}

// settings é o resultado da mescla de flags, ambiente e arquivo de configuração.
type settings struct {
	configFile string
	logLevel   string
	color      bool
	fileConfig *types.Config
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
	}

	rootCmd := &cobra.Command{
		Use:           "expense-manager",
		Short:         "Interactive in-memory expense ledger",
		Version:       version.FormatVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Expense Manager version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "Diagnostic log level written to stderr (default: warn)")
	rootCmd.PersistentFlags().Bool("color", false, "Colorize the menu heading and diagnostics")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, err := app.rootCmd.Flags().GetString("config-file")
	if err != nil {
		return nil, err
	}
	logLevel, err := app.rootCmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	color, err := app.rootCmd.Flags().GetBool("color")
	if err != nil {
		return nil, err
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		LogLevel:   logLevel,
		Color:      color,
	}, nil
}

// resolveSettings mescla flags, ambiente e arquivo, nessa ordem de prioridade.
func (app *CLIApp) resolveSettings(args *types.CLIArgs) (*settings, error) {
	// .env é opcional
	_ = godotenv.Load()

	var envCfg types.EnvConfig
	if err := env.Parse(&envCfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	s := &settings{
		configFile: firstNonEmpty(args.ConfigFile, envCfg.ConfigFile),
	}

	if s.configFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(s.configFile)
		if err != nil {
			return nil, err
		}
		s.fileConfig = cfg
	}

	var fileLevel string
	var fileColor bool
	if s.fileConfig != nil {
		fileLevel = s.fileConfig.LogLevel
		fileColor = s.fileConfig.Color
	}

	s.logLevel = firstNonEmpty(args.LogLevel, envCfg.LogLevel, fileLevel)

	switch {
	case app.rootCmd.Flags().Changed("color"):
		s.color = args.Color
	case envCfg.Color != nil:
		s.color = *envCfg.Color
	default:
		s.color = fileColor
	}

	return s, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	s, err := app.resolveSettings(cliArgs)
	if err != nil {
		return err
	}

	consoleImpl := console.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.color)
	setupLogger(cmd.ErrOrStderr(), s.logLevel, consoleImpl)

	if s.configFile != "" {
		logrus.WithField("path", s.configFile).Info("config file loaded")
	}

	seed, err := config.SeedExpenses(s.fileConfig)
	if err != nil {
		return err
	}

	ledgerUseCase := usecase.NewLedgerUseCase(
		memory.NewLedgerRepository(seed),
		console.NewLineReader(cmd.InOrStdin()),
		consoleImpl,
	)

	if err := ledgerUseCase.Run(cmd.Context()); err != nil {
		consoleImpl.LogError("Expense manager stopped: %s", err)
		return err
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
