package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/expense-manager-go/internal/domain/entity"
	"github.com/diillson/expense-manager-go/internal/domain/repository"
	"github.com/diillson/expense-manager-go/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON e valida o seed.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := unmarshalTOML(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedConfigFormat, fileExtension)
	}

	if _, err := SeedExpenses(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return &config, nil
}

// tomlConfig espelha types.Config; o go-toml não converte inteiros TOML em float64.
type tomlConfig struct {
	LogLevel string                 `toml:"log_level"`
	Color    bool                   `toml:"color"`
	Seed     map[string]interface{} `toml:"seed"`
}

// unmarshalTOML decodes a TOML document into config, accepting integer and float seed amounts.
func unmarshalTOML(data []byte, config *types.Config) error {
	var raw tomlConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}

	config.LogLevel = raw.LogLevel
	config.Color = raw.Color
	if raw.Seed == nil {
		return nil
	}

	config.Seed = make(map[string]float64, len(raw.Seed))
	for name, value := range raw.Seed {
		switch v := value.(type) {
		case int64:
			config.Seed[name] = float64(v)
		case float64:
			config.Seed[name] = v
		default:
			return fmt.Errorf("seed %q: amount must be a number, got %T", name, value)
		}
	}
	return nil
}

// SeedExpenses returns the entries the ledger starts with. A nil config or a config
// without a seed table yields entity.DefaultSeed; an empty seed table yields no entries.
func SeedExpenses(config *types.Config) ([]entity.Expense, error) {
	if config == nil || config.Seed == nil {
		return entity.DefaultSeed(), nil
	}

	var errs []error
	seen := make(map[string]string, len(config.Seed))
	seed := make([]entity.Expense, 0, len(config.Seed))

	for raw, amount := range config.Seed {
		name := entity.NormalizeName(raw)
		if name == entity.QuitSentinel {
			errs = append(errs, fmt.Errorf("seed %q: %w", raw, types.ErrReservedName))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("seed %q and %q: %w", prev, raw, types.ErrDuplicateSeedName))
			continue
		}
		seen[name] = raw
		seed = append(seed, entity.Expense{Name: name, Amount: amount})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	entity.SortByName(seed)
	return seed, nil
}
