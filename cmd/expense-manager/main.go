package main

import (
	"fmt"
	"os"

	"github.com/diillson/expense-manager-go/internal/adapter/driven/config"
	"github.com/diillson/expense-manager-go/internal/adapter/driving/cli"
)

func main() {
	// Inicializa o repositório de configuração e o aplicativo CLI
	configRepo := config.NewConfigRepository()
	app := cli.NewCLIApp(configRepo)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
