// Package traverse performs generation-bounded traversal over a graph
// snapshot: ancestor walks, descendant walks, and full-network exploration,
// all cycle-safe over malformed data.
package traverse

import (
	"fmt"
	"strings"

	"kin/internal/graph"
	"kin/internal/logging"
)

// Kind selects the traversal direction.
type Kind string

const (
	Ancestors   Kind = "ancestors"
	Descendants Kind = "descendants"
	Full        Kind = "full"
)

// PlaceFilter restricts traversal to people associated with a place.
// Each association can be toggled independently.
type PlaceFilter struct {
	Place    string
	Birth    bool
	Death    bool
	Burial   bool
	Marriage bool
}

// Options control a traversal.
type Options struct {
	Kind Kind

	// MaxGenerations caps the walk distance from the root; 0 is unbounded.
	MaxGenerations int

	IncludeSpouses         bool
	IncludeStepParents     bool
	IncludeAdoptiveParents bool

	// Collection, when set, prunes any branch through a person not tagged
	// with this collection.
	Collection string

	// Place, when set, prunes any branch through a person with no enabled
	// place association matching it.
	Place *PlaceFilter
}

// Result is the node set and typed edge list a traversal produced.
type Result struct {
	People []*graph.Person
	Edges  []graph.Edge
}

// NotFoundError reports that the requested root does not exist in the
// snapshot.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("person not found: %s", e.ID)
}

// Traverse walks the graph from rootID according to the options. The same
// graph and options always produce the same node and edge sets.
func Traverse(g *graph.Graph, rootID string, opts Options, log logging.Logger) (*Result, error) {
	if log == nil {
		log = logging.Nop()
	}
	root, ok := g.Person(rootID)
	if !ok {
		return nil, &NotFoundError{ID: rootID}
	}

	w := &walker{
		g:       g,
		opts:    opts,
		log:     log,
		visited: make(map[string]bool),
		onPath:  make(map[string]bool),
		emitted: make(map[string]bool),
		edges:   make(map[string]bool),
	}

	switch opts.Kind {
	case Descendants:
		w.descendants(root, 0)
	case Full:
		w.full(root)
	default:
		w.ancestors(root, 0)
	}

	return &Result{People: w.people, Edges: w.edgeList}, nil
}

type walker struct {
	g    *graph.Graph
	opts Options
	log  logging.Logger

	visited map[string]bool
	onPath  map[string]bool
	emitted map[string]bool
	edges   map[string]bool

	people   []*graph.Person
	edgeList []graph.Edge
}

// include applies the membership and place filters. Exclusion prunes the
// whole branch through this person.
func (w *walker) include(p *graph.Person) bool {
	if w.opts.Collection != "" && p.Collection != w.opts.Collection {
		return false
	}
	if f := w.opts.Place; f != nil && f.Place != "" {
		if f.Birth && p.BirthPlace == f.Place {
			return true
		}
		if f.Death && p.DeathPlace == f.Place {
			return true
		}
		if f.Burial && p.BurialPlace == f.Place {
			return true
		}
		if f.Marriage {
			for _, s := range p.Spouses {
				if s.Place == f.Place {
					return true
				}
			}
		}
		return false
	}
	return true
}

func (w *walker) emitPerson(p *graph.Person) {
	if !w.emitted[p.ID] {
		w.emitted[p.ID] = true
		w.people = append(w.people, p)
	}
}

func (w *walker) emitEdge(e graph.Edge) {
	key := string(e.Category) + "|" + e.From + "|" + e.To
	if e.Category == graph.CategorySpouse {
		// Spouse edges are undirected; never emit the reverse direction.
		a, b := e.From, e.To
		if a > b {
			a, b = b, a
		}
		key = "spouse|" + a + "|" + b
	}
	if w.edges[key] {
		return
	}
	w.edges[key] = true
	w.edgeList = append(w.edgeList, e)
}

// relLabel produces the human-readable label for a relationship edge,
// preferring the custom relationship type that supplied it.
func (w *walker) relLabel(p *graph.Person, target, fallback string) (string, string) {
	if typeID, ok := p.RelTypeFor(target); ok {
		return typeID, humanize(typeID)
	}
	return "", fallback
}

func humanize(id string) string {
	s := strings.ReplaceAll(id, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
