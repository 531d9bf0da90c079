package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diillson/expense-manager-go/internal/domain/entity"
	"github.com/diillson/expense-manager-go/internal/shared/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigFile_Formats(t *testing.T) {
	testTable := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `log_level = "debug"
color = true

[seed]
"Rent " = 560.0
coffee = 3.5
`,
		},
		{
			name: "toml with integer amount",
			file: "config.toml",
			content: `log_level = "debug"
color = true

[seed]
"Rent " = 560
coffee = 3.5
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `log_level: debug
color: true
seed:
  "Rent ": 560
  coffee: 3.5
`,
		},
		{
			name: "yml",
			file: "config.yml",
			content: `log_level: debug
color: true
seed:
  "Rent ": 560
  coffee: 3.5
`,
		},
		{
			name:    "json",
			file:    "config.JSON",
			content: `{"log_level": "debug", "color": true, "seed": {"Rent ": 560, "coffee": 3.5}}`,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			path := writeConfig(t, testCase.file, testCase.content)

			cfg, err := NewConfigRepository().LoadConfigFile(path)
			require.NoError(t, err)
			require.Equal(t, "debug", cfg.LogLevel)
			require.True(t, cfg.Color)
			require.Len(t, cfg.Seed, 2)

			seed, err := SeedExpenses(cfg)
			require.NoError(t, err)
			require.Equal(t, []entity.Expense{
				{Name: "coffee", Amount: 3.5},
				{Name: "rent", Amount: 560},
			}, seed)
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = repo.LoadConfigFile(t.TempDir())
	require.ErrorContains(t, err, "is a directory")

	path := writeConfig(t, "config.ini", "color=true")
	_, err = repo.LoadConfigFile(path)
	require.ErrorIs(t, err, types.ErrUnsupportedConfigFormat)

	path = writeConfig(t, "config.json", `{"seed": {" Q ": 1}}`)
	_, err = repo.LoadConfigFile(path)
	require.ErrorIs(t, err, types.ErrReservedName)

	path = writeConfig(t, "config.toml", "[seed]\nrent = \"a lot\"\n")
	_, err = repo.LoadConfigFile(path)
	require.ErrorContains(t, err, "amount must be a number")

	path = writeConfig(t, "config.toml", "[seed]\n")
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	require.Empty(t, cfg.Seed)

	path = writeConfig(t, "config.json", `{"seed": `)
	_, err = repo.LoadConfigFile(path)
	require.ErrorContains(t, err, "error parsing JSON file")
}

func TestSeedExpenses(t *testing.T) {
	testTable := []struct {
		name    string
		config  *types.Config
		result  []entity.Expense
		wantErr error
	}{
		{
			name:   "nil config uses default seed",
			config: nil,
			result: entity.DefaultSeed(),
		},
		{
			name:   "missing seed uses default seed",
			config: &types.Config{LogLevel: "info"},
			result: entity.DefaultSeed(),
		},
		{
			name:   "empty seed starts empty",
			config: &types.Config{Seed: map[string]float64{}},
			result: []entity.Expense{},
		},
		{
			name:    "quit sentinel rejected",
			config:  &types.Config{Seed: map[string]float64{"q": 1, "gym": 20}},
			wantErr: types.ErrReservedName,
		},
		{
			name:    "names colliding after normalization rejected",
			config:  &types.Config{Seed: map[string]float64{"Gym": 20, " gym": 25}},
			wantErr: types.ErrDuplicateSeedName,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			seed, err := SeedExpenses(testCase.config)
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testCase.result, seed)
		})
	}
}
