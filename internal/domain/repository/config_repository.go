package repository

import (
	"github.com/diillson/expense-manager-go/internal/shared/types"
)

// ConfigRepository carrega o arquivo de configuração opcional do expense manager.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
