package graph

import "sort"

// Category classifies a traversal edge.
type Category string

const (
	CategoryParent       Category = "parent"
	CategorySpouse       Category = "spouse"
	CategoryChild        Category = "child"
	CategoryRelationship Category = "relationship"
)

// Edge is a derived traversal edge. Edges are produced by traversal and
// analysis, never stored on nodes.
type Edge struct {
	From     string
	To       string
	Category Category

	// RelType and Label are set on relationship-category edges, and on
	// parent/spouse edges whose declaration came from a custom
	// relationship type.
	RelType string
	Label   string
}

// Graph is one immutable snapshot of the kinship graph. A rebuild produces
// a new Graph; nodes are never mutated once the snapshot is installed.
type Graph struct {
	// SnapshotID uniquely identifies this snapshot, so results from a
	// stale snapshot can never be confused with a fresh one.
	SnapshotID string

	// BuiltAt is the snapshot build time in milliseconds since epoch.
	BuiltAt int64

	people map[string]*Person
	ids    []string
}

// Person returns the node for an identity key.
func (g *Graph) Person(id string) (*Person, bool) {
	p, ok := g.people[id]
	return p, ok
}

// IDs returns all identity keys in lexicographic order.
func (g *Graph) IDs() []string {
	return g.ids
}

// Len returns the number of nodes in the snapshot.
func (g *Graph) Len() int {
	return len(g.ids)
}

// People returns all nodes in identity-key order.
func (g *Graph) People() []*Person {
	out := make([]*Person, 0, len(g.ids))
	for _, id := range g.ids {
		out = append(out, g.people[id])
	}
	return out
}

func newGraph(snapshotID string, builtAt int64, people map[string]*Person) *Graph {
	ids := make([]string, 0, len(people))
	for id := range people {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &Graph{
		SnapshotID: snapshotID,
		BuiltAt:    builtAt,
		people:     people,
		ids:        ids,
	}
}
