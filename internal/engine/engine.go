// Package engine exposes the graph query surface and owns the
// current-snapshot handle. A rebuild constructs a complete new snapshot
// and swaps it in atomically; readers keep whatever snapshot they obtained
// for the duration of a call, so results from a stale snapshot are never
// mixed with a fresh one.
package engine

import (
	"errors"
	"sync/atomic"

	"kin/internal/alias"
	"kin/internal/analyze"
	"kin/internal/config"
	"kin/internal/extract"
	"kin/internal/graph"
	"kin/internal/logging"
	"kin/internal/record"
	"kin/internal/reltype"
	"kin/internal/traverse"
)

// ErrNoSnapshot is returned when a query runs before the first rebuild.
var ErrNoSnapshot = errors.New("no graph snapshot built yet")

// Engine builds kinship graph snapshots from a record store and answers
// queries over them.
type Engine struct {
	store     record.Store
	cfg       *config.Config
	log       logging.Logger
	extractor *extract.Extractor

	current atomic.Pointer[graph.Graph]
}

// New creates an engine over a record store. links and log may be nil.
func New(store record.Store, links record.LinkResolver, cfg *config.Config, log logging.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Nop()
	}
	aliases := alias.NewResolver(cfg.FieldAliases, cfg.ValueSynonyms)
	registry := reltype.NewRegistry(cfg.RelationshipTypes)
	return &Engine{
		store:     store,
		cfg:       cfg,
		log:       log,
		extractor: extract.New(aliases, registry, links, record.DefaultClassifier{}, log),
	}
}

// BuildGraph extracts person nodes from the given records and reconciles
// them into a snapshot, without installing it. A record that fails
// extraction is omitted; an empty record set yields a valid empty graph.
func (e *Engine) BuildGraph(records []*record.Record) *graph.Graph {
	var people []*graph.Person
	for _, r := range records {
		p, err := e.extractor.Extract(r)
		if err != nil {
			var notPerson *extract.NotPersonError
			if errors.As(err, &notPerson) {
				e.log.Debug("skipping non-person record", "path", notPerson.Path, "kind", notPerson.Kind)
			} else {
				e.log.Debug("skipping record", "path", r.Path, "reason", err)
			}
			continue
		}
		people = append(people, p)
	}
	return graph.Build(people, e.log)
}

// Rebuild loads all records from the store, builds a fresh snapshot, and
// installs it as current. The previous snapshot remains valid for readers
// that already hold it.
func (e *Engine) Rebuild() (*graph.Graph, error) {
	records, err := e.store.Records()
	if err != nil {
		return nil, err
	}
	g := e.BuildGraph(records)
	e.current.Store(g)
	e.log.Info("graph rebuilt", "snapshot", g.SnapshotID, "people", g.Len())
	return g, nil
}

// Current returns the installed snapshot, or an error before the first
// rebuild.
func (e *Engine) Current() (*graph.Graph, error) {
	g := e.current.Load()
	if g == nil {
		return nil, ErrNoSnapshot
	}
	return g, nil
}

// Node returns the person node for an identity key.
func Node(g *graph.Graph, id string) (*graph.Person, bool) {
	return g.Person(id)
}

// Traverse runs a traversal over a snapshot.
func (e *Engine) Traverse(g *graph.Graph, rootID string, opts traverse.Options) (*traverse.Result, error) {
	return traverse.Traverse(g, rootID, opts, e.log)
}

// DefaultOptions returns traversal options seeded from the configured
// traversal defaults.
func (e *Engine) DefaultOptions(kind traverse.Kind) traverse.Options {
	d := e.cfg.Traversal
	return traverse.Options{
		Kind:                   kind,
		MaxGenerations:         d.MaxGenerations,
		IncludeSpouses:         d.IncludeSpouses,
		IncludeStepParents:     d.IncludeStepParents,
		IncludeAdoptiveParents: d.IncludeAdoptiveParents,
	}
}

// AncestorsOf returns every ancestor of a person reachable through blood
// lines, optionally including the person themselves.
func (e *Engine) AncestorsOf(g *graph.Graph, id string, includeRoot bool) ([]*graph.Person, error) {
	opts := e.DefaultOptions(traverse.Ancestors)
	opts.IncludeSpouses = false
	opts.IncludeStepParents = false
	opts.IncludeAdoptiveParents = false
	res, err := traverse.Traverse(g, id, opts, e.log)
	if err != nil {
		return nil, err
	}
	return withoutRoot(res.People, id, includeRoot), nil
}

// DescendantsOf returns every descendant of a person, optionally including
// the person themselves and the spouses encountered along the way.
func (e *Engine) DescendantsOf(g *graph.Graph, id string, includeRoot, includeSpouses bool) ([]*graph.Person, error) {
	opts := e.DefaultOptions(traverse.Descendants)
	opts.IncludeSpouses = includeSpouses
	res, err := traverse.Traverse(g, id, opts, e.log)
	if err != nil {
		return nil, err
	}
	return withoutRoot(res.People, id, includeRoot), nil
}

// Components returns the connected components of a snapshot.
func (e *Engine) Components(g *graph.Graph) []*analyze.Component {
	return analyze.Components(g)
}

// Collections returns the explicit user collections of a snapshot.
func (e *Engine) Collections(g *graph.Graph) []*analyze.Collection {
	return analyze.Collections(g)
}

// Connections returns the cross-collection bridge connections of a
// snapshot.
func (e *Engine) Connections(g *graph.Graph) []*analyze.Connection {
	return analyze.CrossCollectionConnections(g)
}

// Analytics computes the aggregate report for a snapshot.
func (e *Engine) Analytics(g *graph.Graph) *analyze.Report {
	components := analyze.Components(g)
	collections := analyze.Collections(g)
	connections := analyze.CrossCollectionConnections(g)
	return analyze.Analytics(g, components, collections, connections, 10)
}

func withoutRoot(people []*graph.Person, rootID string, includeRoot bool) []*graph.Person {
	if includeRoot {
		return people
	}
	out := make([]*graph.Person, 0, len(people))
	for _, p := range people {
		if p.ID != rootID {
			out = append(out, p)
		}
	}
	return out
}
