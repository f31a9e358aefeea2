package vault

import (
	"os"
	"path/filepath"
	"testing"

	"kin/internal/config"
)

func writeVault(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestStore_Records(t *testing.T) {
	root := writeVault(t, map[string]string{
		"people/Jane Doe.md": "---\ncr_id: jane-1950\nborn: 1950-03-14\n---\n",
		"people/John Doe.md": "---\ncr_id: john-1948\n---\n",
		"notes/plain.md":     "no frontmatter\n",
		"README.txt":         "not markdown\n",
	})

	s, err := Open(root, config.VaultConfig{Include: []string{"**/*.md"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	records, err := s.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Scan order is sorted by path.
	if records[0].Name != "Jane Doe" || records[1].Name != "John Doe" {
		t.Errorf("unexpected record names %q, %q", records[0].Name, records[1].Name)
	}
	if records[0].Fields["cr_id"] != "jane-1950" {
		t.Errorf("unexpected fields %v", records[0].Fields)
	}
}

func TestStore_ExcludePatterns(t *testing.T) {
	root := writeVault(t, map[string]string{
		"people/keep.md":    "---\ncr_id: keep\n---\n",
		"archive/old.md":    "---\ncr_id: old\n---\n",
		".obsidian/conf.md": "---\ncr_id: hidden\n---\n",
	})

	s, err := Open(root, config.VaultConfig{
		Include: []string{"**/*.md"},
		Exclude: []string{"archive/**"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	records, err := s.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Fields["cr_id"] != "keep" {
		t.Errorf("expected only the kept record, got %v", records)
	}
}

func TestStore_ResolveAfterScan(t *testing.T) {
	root := writeVault(t, map[string]string{
		"Jane Doe.md": "---\ncr_id: jane-1950\naliases:\n  - Janie\n---\n",
	})

	s, err := Open(root, config.VaultConfig{Include: []string{"**/*.md"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	if _, err := s.Records(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if id, ok := s.Resolve("Jane Doe"); !ok || id != "jane-1950" {
		t.Errorf("expected file name resolution, got %q (%v)", id, ok)
	}
	if id, ok := s.Resolve("Janie"); !ok || id != "jane-1950" {
		t.Errorf("expected alias resolution, got %q (%v)", id, ok)
	}
	if _, ok := s.Resolve("Nobody"); ok {
		t.Error("expected no resolution for unknown name")
	}
}

func TestStore_CachedRescan(t *testing.T) {
	root := writeVault(t, map[string]string{
		"jane.md": "---\ncr_id: jane\nborn: \"1950\"\n---\n",
	})

	s, err := Open(root, config.VaultConfig{Include: []string{"**/*.md"}, Cache: true}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Close()

	first, err := s.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Records()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one record per scan, got %d and %d", len(first), len(second))
	}
	if second[0].Fields["cr_id"] != "jane" || second[0].Fields["born"] != "1950" {
		t.Errorf("cached fields differ: %v", second[0].Fields)
	}
}

func TestOpen_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.md")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(file, config.VaultConfig{}, nil); err == nil {
		t.Fatal("expected an error for a non-directory vault")
	}
}
