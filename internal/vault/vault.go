// Package vault implements the markdown-vault record store: it scans a
// directory tree for frontmatter-bearing markdown files, maintains the
// name/alias link index, and caches decoded frontmatter in sqlite.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"kin/internal/config"
	"kin/internal/logging"
	"kin/internal/record"
)

// Store reads records from a vault directory. It implements record.Store
// and record.LinkResolver.
type Store struct {
	root  string
	cfg   config.VaultConfig
	cache *FileCache
	log   logging.Logger

	links *LinkIndex
}

// Open opens a vault rooted at dir. A cache that fails to open degrades
// to uncached scans rather than failing the store.
func Open(dir string, cfg config.VaultConfig, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.Nop()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening vault: %s is not a directory", dir)
	}

	s := &Store{root: dir, cfg: cfg, log: log, links: NewLinkIndex()}
	if cfg.Cache {
		cache, err := OpenCache(dir)
		if err != nil {
			log.Warn("scan cache unavailable, reading without it", "error", err)
		} else {
			s.cache = cache
		}
	}
	return s, nil
}

// Close releases the scan cache.
func (s *Store) Close() error {
	return s.cache.Close()
}

// Records scans the vault and returns one record per matching file with
// frontmatter. The link index is rebuilt as a side effect of the scan.
func (s *Store) Records() ([]*record.Record, error) {
	paths, err := s.scan()
	if err != nil {
		return nil, err
	}

	links := NewLinkIndex()
	var records []*record.Record
	for _, rel := range paths {
		rec, err := s.load(rel)
		if err != nil {
			s.log.Warn("skipping unreadable record", "path", rel, "error", err)
			continue
		}
		if rec == nil {
			continue
		}
		records = append(records, rec)
		indexRecord(links, rec)
	}
	s.links = links

	s.log.Debug("vault scanned", "files", len(paths), "records", len(records))
	return records, nil
}

// Resolve implements record.LinkResolver against the index built by the
// most recent scan.
func (s *Store) Resolve(ref string) (string, bool) {
	return s.links.Resolve(ref)
}

// scan walks the vault and returns the sorted relative paths matching the
// include patterns and none of the exclude patterns.
func (s *Store) scan() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if s.matches(rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning vault: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *Store) matches(rel string) bool {
	included := false
	for _, pattern := range s.cfg.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range s.cfg.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	return true
}

// load reads one file and decodes its frontmatter, consulting the cache
// first. Files without frontmatter yield nil.
func (s *Store) load(rel string) (*record.Record, error) {
	abs := filepath.Join(s.root, filepath.FromSlash(rel))
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))

	if s.cache != nil {
		fields, ok, err := s.cache.Get(rel, info)
		if err != nil {
			s.log.Debug("cache read failed", "path", rel, "error", err)
		} else if ok {
			if fields == nil {
				return nil, nil
			}
			return &record.Record{Path: rel, Name: name, Fields: fields}, nil
		}
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	fields, err := ParseFrontmatter(content)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(rel, info, content, fields); err != nil {
			s.log.Debug("cache write failed", "path", rel, "error", err)
		}
	}

	if fields == nil {
		return nil, nil
	}
	return &record.Record{Path: rel, Name: name, Fields: fields}, nil
}

// indexRecord registers a record's file name and frontmatter aliases for
// its identity key.
func indexRecord(links *LinkIndex, rec *record.Record) {
	id := identityOf(rec)
	if id == "" {
		return
	}
	links.AddName(rec.Name, id)
	if v, ok := rec.Field("name"); ok {
		if name, ok := v.(string); ok {
			links.AddName(name, id)
		}
	}
	if v, ok := rec.Field("aliases"); ok {
		for _, alias := range anyStrings(v) {
			links.AddAlias(alias, id)
		}
	}
}

func identityOf(rec *record.Record) string {
	for _, field := range []string{"cr_id", "id"} {
		if v, ok := rec.Field(field); ok {
			if id, ok := v.(string); ok && strings.TrimSpace(id) != "" {
				return strings.TrimSpace(id)
			}
		}
	}
	return ""
}

func anyStrings(v any) []string {
	switch v := v.(type) {
	case string:
		return []string{v}
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	}
	return nil
}
