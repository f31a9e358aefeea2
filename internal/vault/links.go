package vault

import "strings"

// LinkIndex resolves textual references (wikilink targets, display names,
// frontmatter aliases) to identity keys. Lookup preference is exact name,
// then exact alias, then case-insensitive name or alias.
type LinkIndex struct {
	byName    map[string]string
	byAlias   map[string]string
	byFolded  map[string]string
	conflicts map[string]bool
}

// NewLinkIndex returns an empty index.
func NewLinkIndex() *LinkIndex {
	return &LinkIndex{
		byName:    make(map[string]string),
		byAlias:   make(map[string]string),
		byFolded:  make(map[string]string),
		conflicts: make(map[string]bool),
	}
}

// AddName registers a record's primary display name for an identity key.
// A name claimed by two different keys becomes ambiguous and stops
// resolving.
func (ix *LinkIndex) AddName(name, id string) {
	ix.add(ix.byName, name, id)
}

// AddAlias registers an alternate name for an identity key.
func (ix *LinkIndex) AddAlias(alias, id string) {
	ix.add(ix.byAlias, alias, id)
}

func (ix *LinkIndex) add(m map[string]string, name, id string) {
	name = strings.TrimSpace(name)
	if name == "" || id == "" {
		return
	}
	folded := strings.ToLower(name)
	if existing, ok := m[name]; ok && existing != id {
		ix.conflicts[name] = true
		ix.conflicts[folded] = true
		return
	}
	m[name] = id

	if existing, ok := ix.byFolded[folded]; ok && existing != id {
		ix.conflicts[folded] = true
		return
	}
	ix.byFolded[folded] = id
}

// Resolve implements record.LinkResolver.
func (ix *LinkIndex) Resolve(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if id, ok := ix.byName[ref]; ok && !ix.conflicts[ref] {
		return id, true
	}
	if id, ok := ix.byAlias[ref]; ok && !ix.conflicts[ref] {
		return id, true
	}
	folded := strings.ToLower(ref)
	if id, ok := ix.byFolded[folded]; ok && !ix.conflicts[folded] {
		return id, true
	}
	return "", false
}

// Len returns the number of distinct primary names registered.
func (ix *LinkIndex) Len() int {
	return len(ix.byName)
}
