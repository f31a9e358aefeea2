// Package extract turns one raw record into a person node. Every field is
// resolved through the alias resolver; relationship references may arrive
// through direct-identifier fields, textual link references, or generic
// relationship-type declarations, and are merged with duplicates removed.
package extract

import (
	"errors"
	"fmt"

	"kin/internal/alias"
	"kin/internal/graph"
	"kin/internal/logging"
	"kin/internal/record"
	"kin/internal/reltype"
)

// ErrNoIdentity marks a record without a usable identity key. The record
// is excluded from the graph, never surfaced as a hard error.
var ErrNoIdentity = errors.New("record has no identity key")

// NotPersonError marks a record classified as something other than a
// person. Recoverable: the record is reported by kind and excluded.
type NotPersonError struct {
	Path string
	Kind record.Kind
}

func (e *NotPersonError) Error() string {
	return fmt.Sprintf("not a person record: %s (%s)", e.Path, e.Kind)
}

type nopResolver struct{}

func (nopResolver) Resolve(string) (string, bool) { return "", false }

// Extractor extracts person nodes from raw records. It is a pure
// transform over one record plus shared read-only configuration.
type Extractor struct {
	aliases    *alias.Resolver
	registry   *reltype.Registry
	links      record.LinkResolver
	classifier record.Classifier
	log        logging.Logger
}

// New creates an extractor. links, classifier, and log may be nil, in
// which case references never resolve textually, the default classifier is
// used, and logging is discarded.
func New(aliases *alias.Resolver, registry *reltype.Registry, links record.LinkResolver, classifier record.Classifier, log logging.Logger) *Extractor {
	if aliases == nil {
		aliases = alias.NewResolver(nil, nil)
	}
	if registry == nil {
		registry = reltype.NewRegistry(nil)
	}
	if links == nil {
		links = nopResolver{}
	}
	if classifier == nil {
		classifier = record.DefaultClassifier{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Extractor{
		aliases:    aliases,
		registry:   registry,
		links:      links,
		classifier: classifier,
		log:        log,
	}
}

// Extract produces a person node from a raw record, or an error when the
// record is not a person or lacks an identity key.
func (e *Extractor) Extract(r *record.Record) (*graph.Person, error) {
	if kind := e.classifier.Kind(r); kind != record.KindPerson {
		return nil, &NotPersonError{Path: r.Path, Kind: kind}
	}

	id := e.stringField(r, "cr_id")
	if id == "" || IsImportArtifact(id) {
		return nil, ErrNoIdentity
	}

	p := &graph.Person{ID: id}

	p.Name = e.stringField(r, "name")
	if p.Name == "" {
		p.Name = r.Name
	}
	p.Born = e.stringField(r, "born")
	p.Died = e.stringField(r, "died")
	p.BirthPlace = e.stringField(r, "birth_place")
	p.DeathPlace = e.stringField(r, "death_place")
	p.BurialPlace = e.stringField(r, "burial_place")
	p.Occupation = e.stringField(r, "occupation")
	p.Sex = e.sex(r)
	p.Living = e.boolField(r, "living")
	p.ComponentLabel = e.stringField(r, "component")
	p.Collection = e.stringField(r, "collection")
	p.Universe = e.stringField(r, "universe")

	p.Father = e.refScalar(r, "father")
	p.Mother = e.refScalar(r, "mother")
	p.Parents = e.refList(r, "parents")
	p.StepFathers = e.refList(r, "step_fathers")
	p.StepMothers = e.refList(r, "step_mothers")
	p.AdoptiveFather = e.refScalar(r, "adoptive_father")
	p.AdoptiveMother = e.refScalar(r, "adoptive_mother")
	p.AdoptiveParents = e.refList(r, "adoptive_parents")
	p.AdoptedChildren = e.refList(r, "adopted_children")
	p.Children = e.refList(r, "children")
	p.Spouses = e.spouses(r)

	e.applyGeneric(r, p)
	e.applyLegacy(r, p)

	return p, nil
}

// sex resolves the sex marker through the value synonym tables. Anything
// outside the canonical enumeration after resolution is unknown.
func (e *Extractor) sex(r *record.Record) graph.Sex {
	raw := e.stringField(r, "sex")
	if raw == "" {
		return graph.SexUnknown
	}
	resolved := e.aliases.Value("sex", raw)
	if alias.InEnum("sex", resolved) {
		return graph.Sex(resolved)
	}
	return graph.SexUnknown
}

// spouses merges the direct spouse_ids field with the spouses metadata
// field. Direct ids are authoritative; metadata entries enrich an existing
// entry or add a new one.
func (e *Extractor) spouses(r *record.Record) []graph.Spouse {
	var out []graph.Spouse
	have := make(map[string]int)

	add := func(s graph.Spouse) {
		if s.ID == "" {
			return
		}
		if i, ok := have[s.ID]; ok {
			merged := out[i]
			if merged.Married == "" {
				merged.Married = s.Married
			}
			if merged.Divorced == "" {
				merged.Divorced = s.Divorced
			}
			if s.Status != "" && merged.Status == graph.StatusCurrent {
				merged.Status = s.Status
			}
			if merged.Place == "" {
				merged.Place = s.Place
			}
			if merged.Order == 0 {
				merged.Order = s.Order
			}
			out[i] = merged
			return
		}
		if s.Status == "" {
			s.Status = graph.StatusCurrent
		}
		have[s.ID] = len(out)
		out = append(out, s)
	}

	for _, id := range e.directIDs(r, "spouses") {
		add(graph.Spouse{ID: id})
	}

	if v, ok := e.aliases.Field(r.Fields, "spouses"); ok {
		for _, entry := range asList(v) {
			switch val := entry.(type) {
			case string:
				if id, ok := e.resolveRef(r, val); ok {
					add(graph.Spouse{ID: id})
				}
			case map[string]any:
				if s, ok := e.spouseFromMap(r, val); ok {
					add(s)
				}
			}
		}
	}

	return out
}

func (e *Extractor) spouseFromMap(r *record.Record, m map[string]any) (graph.Spouse, bool) {
	var id string
	if raw := asString(m["id"]); raw != "" {
		if IsImportArtifact(raw) {
			e.log.Debug("dropping import artifact", "record", r.Path, "ref", raw)
			return graph.Spouse{}, false
		}
		id = raw
	} else if raw := asString(m["name"]); raw != "" {
		resolved, ok := e.resolveRef(r, raw)
		if !ok {
			return graph.Spouse{}, false
		}
		id = resolved
	} else {
		return graph.Spouse{}, false
	}

	s := graph.Spouse{
		ID:       id,
		Married:  asString(m["married"]),
		Divorced: asString(m["divorced"]),
		Place:    asString(m["place"]),
		Order:    asInt(m["order"]),
	}
	if raw := asString(m["status"]); raw != "" {
		resolved := e.aliases.Value("status", raw)
		if alias.InEnum("status", resolved) {
			s.Status = graph.SpouseStatus(resolved)
		}
	}
	return s, true
}

func (e *Extractor) stringField(r *record.Record, canonical string) string {
	v, ok := e.aliases.Field(r.Fields, canonical)
	if !ok {
		return ""
	}
	return asString(v)
}

func (e *Extractor) boolField(r *record.Record, canonical string) *bool {
	v, ok := e.aliases.Field(r.Fields, canonical)
	if !ok {
		return nil
	}
	return asBool(v)
}
