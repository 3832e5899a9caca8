package genetic_queens

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ToolConfig is the TOML shape shared by the cmd tools. Both sections are
// optional: without [persistence] runs are not archived, and without
// [population] the default tuning applies.
type ToolConfig struct {
	Persistence *PersistenceConfig `toml:"persistence"`
	Population  *PopulationConfig  `toml:"population"`
}

// LoadToolConfig reads a TOML config file. An empty path yields a zero
// config, which every consumer treats as all-defaults.
func LoadToolConfig(path string) (*ToolConfig, error) {
	config := &ToolConfig{}
	if path == "" {
		return config, nil
	}

	conffile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to load tool config: %w", err)
	}
	defer conffile.Close()

	if _, err := toml.NewDecoder(conffile).Decode(config); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config: %w", err)
	}

	return config, nil
}
