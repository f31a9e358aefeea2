package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Traversal.IncludeSpouses {
		t.Error("expected spouses included by default")
	}
	if cfg.Traversal.IncludeStepParents {
		t.Error("expected step-parents excluded by default")
	}
	if !cfg.Vault.Cache {
		t.Error("expected cache enabled by default")
	}
	if len(cfg.Vault.Include) != 1 || cfg.Vault.Include[0] != "**/*.md" {
		t.Errorf("unexpected include patterns: %v", cfg.Vault.Include)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
field_aliases:
  birthday: born
value_synonyms:
  sex:
    herr: male
relationship_types:
  - id: godparent
    label: Godparent
    include_on_family_tree: true
    family_graph_mapping: guardian
traversal:
  include_step_parents: true
  max_generations: 6
vault:
  include:
    - "people/**/*.md"
  exclude:
    - "**/archive/**"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FieldAliases["birthday"] != "born" {
		t.Errorf("field alias not parsed: %v", cfg.FieldAliases)
	}
	if cfg.ValueSynonyms["sex"]["herr"] != "male" {
		t.Errorf("value synonym not parsed: %v", cfg.ValueSynonyms)
	}
	if len(cfg.RelationshipTypes) != 1 || cfg.RelationshipTypes[0].ID != "godparent" {
		t.Errorf("relationship types not parsed: %v", cfg.RelationshipTypes)
	}
	if !cfg.Traversal.IncludeStepParents {
		t.Error("traversal override not applied")
	}
	if cfg.Traversal.MaxGenerations != 6 {
		t.Errorf("expected max generations 6, got %d", cfg.Traversal.MaxGenerations)
	}
	if len(cfg.Vault.Include) != 1 || cfg.Vault.Include[0] != "people/**/*.md" {
		t.Errorf("unexpected include patterns: %v", cfg.Vault.Include)
	}
	if len(cfg.Vault.Exclude) != 1 {
		t.Errorf("unexpected exclude patterns: %v", cfg.Vault.Exclude)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("field_aliases: [not: a: map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("KIN_VAULT", "/tmp/vault")
	t.Setenv("KIN_CONFIG", "/tmp/config.yaml")
	t.Setenv("KIN_DEBUG", "true")

	env := FromEnv()
	if env.VaultDir != "/tmp/vault" {
		t.Errorf("unexpected vault dir %q", env.VaultDir)
	}
	if env.ConfigFile != "/tmp/config.yaml" {
		t.Errorf("unexpected config file %q", env.ConfigFile)
	}
	if !env.Debug {
		t.Error("expected debug enabled")
	}
}
