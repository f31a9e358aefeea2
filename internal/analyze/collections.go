package analyze

import (
	"sort"

	"kin/internal/graph"
)

// Collection groups the people carrying one explicit user collection tag.
type Collection struct {
	Name string
	IDs  []string
}

// Size returns the number of members.
func (c *Collection) Size() int {
	return len(c.IDs)
}

// Collections groups people by their explicit collection tag, independent
// of component detection. Groups are sorted by descending size, ties
// broken alphabetically by collection name.
func Collections(g *graph.Graph) []*Collection {
	byName := make(map[string][]string)
	for _, id := range g.IDs() {
		p, _ := g.Person(id)
		if p.Collection != "" {
			byName[p.Collection] = append(byName[p.Collection], id)
		}
	}

	out := make([]*Collection, 0, len(byName))
	for name, ids := range byName {
		out = append(out, &Collection{Name: name, IDs: ids})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].IDs) != len(out[j].IDs) {
			return len(out[i].IDs) > len(out[j].IDs)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Connection records that two collections are bridged by direct
// relationships between their members.
type Connection struct {
	// Collections holds the unordered pair, stored sorted.
	Collections [2]string

	// Bridges are the people on either side with a direct relationship
	// into the other collection.
	Bridges []string

	// Count is the number of bridging relationships found.
	Count int
}

// CrossCollectionConnections inspects every tagged person's direct
// relations (parents, spouses, children); a related person with a
// different collection tag contributes one bridging relationship to the
// pair. Results are sorted by descending relationship count, ties broken
// by pair name.
func CrossCollectionConnections(g *graph.Graph) []*Connection {
	byPair := make(map[[2]string]*Connection)

	for _, id := range g.IDs() {
		p, _ := g.Person(id)
		if p.Collection == "" {
			continue
		}

		var related []string
		for _, other := range p.ParentIDs() {
			related = graph.AppendUnique(related, other)
		}
		for _, other := range p.SpouseIDs() {
			related = graph.AppendUnique(related, other)
		}
		for _, other := range p.Children {
			related = graph.AppendUnique(related, other)
		}

		for _, otherID := range related {
			other, ok := g.Person(otherID)
			if !ok || other.Collection == "" || other.Collection == p.Collection {
				continue
			}
			pair := [2]string{p.Collection, other.Collection}
			if pair[0] > pair[1] {
				pair[0], pair[1] = pair[1], pair[0]
			}
			conn, ok := byPair[pair]
			if !ok {
				conn = &Connection{Collections: pair}
				byPair[pair] = conn
			}
			conn.Bridges = graph.AppendUnique(conn.Bridges, p.ID)
			conn.Count++
		}
	}

	out := make([]*Connection, 0, len(byPair))
	for _, conn := range byPair {
		sort.Strings(conn.Bridges)
		out = append(out, conn)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Collections[0] != out[j].Collections[0] {
			return out[i].Collections[0] < out[j].Collections[0]
		}
		return out[i].Collections[1] < out[j].Collections[1]
	})
	return out
}
