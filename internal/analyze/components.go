// Package analyze finds connected components, groups user collections,
// detects cross-collection bridges, and computes aggregate statistics over
// a graph snapshot.
package analyze

import (
	"sort"

	"kin/internal/graph"
)

// UnnamedComponent is the display name of a component with no labeled
// members.
const UnnamedComponent = "unnamed"

// Component is a maximal set of people connected by any relationship
// edge, independent of explicit user tagging.
type Component struct {
	// Name is the most frequent component label among members, ties
	// broken lexicographically; UnnamedComponent when nobody is labeled.
	Name string

	// RepresentativeID is the member with the earliest birth date; people
	// without a birth date lose to any that have one; remaining ties break
	// on lexicographic name order.
	RepresentativeID string

	IDs []string
}

// Size returns the number of members.
func (c *Component) Size() int {
	return len(c.IDs)
}

// Components finds the connected components of the snapshot with an
// undirected walk over the father/mother/parents/spouses/children
// adjacency. Output order follows the smallest member id of each
// component, so results are deterministic.
func Components(g *graph.Graph) []*Component {
	adjacency := buildAdjacency(g)
	visited := make(map[string]bool)

	var components []*Component
	for _, id := range g.IDs() {
		if visited[id] {
			continue
		}
		members := walkComponent(id, adjacency, visited)
		sort.Strings(members)
		components = append(components, &Component{
			Name:             componentName(g, members),
			RepresentativeID: representative(g, members),
			IDs:              members,
		})
	}
	return components
}

// buildAdjacency builds the undirected relationship adjacency. Declared
// edges connect both endpoints even when only one side declared them.
func buildAdjacency(g *graph.Graph) map[string][]string {
	adjacency := make(map[string][]string)
	connect := func(a, b string) {
		adjacency[a] = graph.AppendUnique(adjacency[a], b)
		adjacency[b] = graph.AppendUnique(adjacency[b], a)
	}
	for _, id := range g.IDs() {
		p, _ := g.Person(id)
		for _, other := range p.ParentIDs() {
			connect(id, other)
		}
		for _, other := range p.SpouseIDs() {
			connect(id, other)
		}
		for _, other := range p.Children {
			connect(id, other)
		}
	}
	return adjacency
}

func walkComponent(start string, adjacency map[string][]string, visited map[string]bool) []string {
	var members []string
	queue := []string{start}
	visited[start] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		members = append(members, id)
		for _, next := range adjacency[id] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return members
}

func componentName(g *graph.Graph, members []string) string {
	counts := make(map[string]int)
	for _, id := range members {
		p, _ := g.Person(id)
		if p.ComponentLabel != "" {
			counts[p.ComponentLabel]++
		}
	}
	if len(counts) == 0 {
		return UnnamedComponent
	}

	best := ""
	bestCount := 0
	for label, count := range counts {
		if count > bestCount || (count == bestCount && label < best) {
			best = label
			bestCount = count
		}
	}
	return best
}

func representative(g *graph.Graph, members []string) string {
	best := ""
	bestYear := 0
	bestName := ""
	for _, id := range members {
		p, _ := g.Person(id)
		year, hasYear := YearOf(p.Born)
		if best == "" {
			best, bestYear, bestName = id, 0, p.Name
			if hasYear {
				bestYear = year
			}
			continue
		}
		switch {
		case hasYear && bestYear == 0:
			best, bestYear, bestName = id, year, p.Name
		case hasYear && year < bestYear:
			best, bestYear, bestName = id, year, p.Name
		case hasYear && year == bestYear && p.Name < bestName:
			best, bestYear, bestName = id, year, p.Name
		case !hasYear && bestYear == 0 && p.Name < bestName:
			best, bestName = id, p.Name
		}
	}
	return best
}
