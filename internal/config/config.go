// Package config provides engine configuration: field aliases, value
// synonyms, relationship type overrides, and traversal defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"kin/internal/reltype"
)

// TraversalDefaults holds default traversal options applied when a caller
// leaves them unset.
type TraversalDefaults struct {
	IncludeSpouses         bool `yaml:"include_spouses"`
	IncludeStepParents     bool `yaml:"include_step_parents"`
	IncludeAdoptiveParents bool `yaml:"include_adoptive_parents"`
	MaxGenerations         int  `yaml:"max_generations"`
}

// VaultConfig holds settings for the vault-backed record store.
type VaultConfig struct {
	// Include is the list of doublestar patterns to scan, relative to the
	// vault root. Defaults to all markdown files.
	Include []string `yaml:"include"`
	// Exclude is the list of doublestar patterns to skip.
	Exclude []string `yaml:"exclude"`
	// Cache enables the sqlite file-metadata cache.
	Cache bool `yaml:"cache"`
}

// Config is the engine configuration.
type Config struct {
	// FieldAliases maps a user field name to the canonical field name it
	// stands for.
	FieldAliases map[string]string `yaml:"field_aliases"`

	// ValueSynonyms maps a value domain (e.g. "sex") to a table of raw
	// value -> canonical value.
	ValueSynonyms map[string]map[string]string `yaml:"value_synonyms"`

	// RelationshipTypes are user overrides and additions merged over the
	// built-in relationship types.
	RelationshipTypes []reltype.Definition `yaml:"relationship_types"`

	Traversal TraversalDefaults `yaml:"traversal"`
	Vault     VaultConfig       `yaml:"vault"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Traversal: TraversalDefaults{
			IncludeSpouses:         true,
			IncludeStepParents:     false,
			IncludeAdoptiveParents: true,
		},
		Vault: VaultConfig{
			Include: []string{"**/*.md"},
			Cache:   true,
		},
	}
}

// Load reads a YAML configuration file. A missing file yields the default
// configuration; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if len(cfg.Vault.Include) == 0 {
		cfg.Vault.Include = []string{"**/*.md"}
	}
	return cfg, nil
}
