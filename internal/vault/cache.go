package vault

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"kin/internal/util"
)

// FileCache caches decoded frontmatter keyed by (path, size, mtime) so a
// rescan only re-reads and re-parses files that changed. Entries also
// carry the content digest for staleness checks on files with preserved
// metadata.
type FileCache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS file_cache (
	path TEXT PRIMARY KEY,
	size INTEGER NOT NULL,
	mtime INTEGER NOT NULL,
	digest TEXT NOT NULL,
	fields TEXT NOT NULL
);
`

// OpenCache opens or creates the scan cache for a vault. The database is
// stored at {root}/.kin/cache/files.db.
func OpenCache(root string) (*FileCache, error) {
	cacheDir := filepath.Join(root, ".kin", "cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(cacheDir, "files.db"))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &FileCache{db: db}, nil
}

// Close closes the cache database.
func (c *FileCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns the cached field map for a path if the entry matches the
// current stat. A miss or stale entry returns ok=false with no error.
func (c *FileCache) Get(path string, info os.FileInfo) (map[string]any, bool, error) {
	var size, mtime int64
	var fieldsJSON string
	err := c.db.QueryRow(
		"SELECT size, mtime, fields FROM file_cache WHERE path = ?",
		path,
	).Scan(&size, &mtime, &fieldsJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if size != info.Size() || mtime != info.ModTime().UnixNano() {
		return nil, false, nil
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		return nil, false, err
	}
	return fields, true, nil
}

// Put stores the decoded field map for a path alongside its content
// digest.
func (c *FileCache) Put(path string, info os.FileInfo, content []byte, fields map[string]any) error {
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO file_cache (path, size, mtime, digest, fields)
		 VALUES (?, ?, ?, ?, ?)`,
		path, info.Size(), info.ModTime().UnixNano(),
		util.Blake3HashHex(content), string(fieldsJSON),
	)
	return err
}

// Remove drops a single entry.
func (c *FileCache) Remove(path string) error {
	_, err := c.db.Exec("DELETE FROM file_cache WHERE path = ?", path)
	return err
}

// Clear drops every entry.
func (c *FileCache) Clear() error {
	_, err := c.db.Exec("DELETE FROM file_cache")
	return err
}
