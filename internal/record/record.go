// Package record defines the raw record model and the collaborator
// interfaces the engine consumes: the record store, the link resolution
// index, and the record-kind classifier.
package record

// Record is one raw record as handed over by the record store. Fields is
// the decoded field map (frontmatter for vault-backed stores); the engine
// never interprets it directly, only through the alias resolver.
type Record struct {
	// Path identifies where the record came from, for diagnostics only.
	Path string

	// Name is the record's display name as known to the store (for vault
	// stores, the file base name). May be empty.
	Name string

	// Fields holds the raw field map.
	Fields map[string]any
}

// Field returns the raw value for an exact field name.
func (r *Record) Field(name string) (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[name]
	return v, ok
}

// Store enumerates candidate records. Implementations must tolerate being
// asked repeatedly for the same records, since the graph is always rebuilt
// from scratch.
type Store interface {
	Records() ([]*Record, error)
}

// LinkResolver resolves a textual reference (a wikilink target or display
// name) to an identity key. It must behave as a pure lookup.
type LinkResolver interface {
	// Resolve returns the identity key the reference denotes, or false if
	// the reference is unresolved.
	Resolve(ref string) (string, bool)
}
