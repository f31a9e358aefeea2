package graph

import (
	"github.com/google/uuid"

	"kin/internal/logging"
	"kin/internal/util"
)

// Build indexes extracted person nodes and runs the reconciliation pass,
// producing a complete snapshot. Input order does not matter; the result
// is deterministic for the same node set.
//
// Reconciliation infers reverse edges (parent -> child, adoptive parent
// <-> adopted child) and then drops every identifier that does not resolve
// to a node in the snapshot, so the installed graph never carries a
// dangling reference.
func Build(people []*Person, log logging.Logger) *Graph {
	if log == nil {
		log = logging.Nop()
	}

	byID := make(map[string]*Person, len(people))
	for _, p := range people {
		if p == nil || p.ID == "" {
			continue
		}
		if _, exists := byID[p.ID]; exists {
			log.Warn("duplicate identity key, keeping first record", "id", p.ID)
			continue
		}
		byID[p.ID] = p
	}

	g := newGraph(uuid.NewString(), util.NowMs(), byID)

	// Pass 2a: infer parent -> child edges.
	for _, id := range g.ids {
		p := byID[id]
		for _, parentID := range p.ParentIDs() {
			if parent, ok := byID[parentID]; ok {
				parent.Children = appendUnique(parent.Children, p.ID)
			}
		}
	}

	// Pass 2b: adoptive edges are symmetric. A declared adoptive parent
	// learns about the adopted child; a declared adopted child learns
	// about the adoptive parent.
	for _, id := range g.ids {
		p := byID[id]
		for _, parentID := range p.AdoptiveParentIDs() {
			if parent, ok := byID[parentID]; ok {
				parent.AdoptedChildren = appendUnique(parent.AdoptedChildren, p.ID)
			}
		}
		for _, childID := range p.AdoptedChildren {
			if child, ok := byID[childID]; ok {
				if child.AdoptiveFather != p.ID && child.AdoptiveMother != p.ID {
					child.AdoptiveParents = appendUnique(child.AdoptiveParents, p.ID)
				}
			}
		}
	}

	// Pass 3: drop every reference that does not resolve in this snapshot.
	for _, id := range g.ids {
		dropDangling(byID[id], byID, log)
	}

	return g
}

func dropDangling(p *Person, byID map[string]*Person, log logging.Logger) {
	keep := func(id string) bool {
		_, ok := byID[id]
		if !ok && id != "" {
			log.Debug("dropping dangling reference", "from", p.ID, "to", id)
		}
		return ok
	}

	if p.Father != "" && !keep(p.Father) {
		p.Father = ""
	}
	if p.Mother != "" && !keep(p.Mother) {
		p.Mother = ""
	}
	if p.AdoptiveFather != "" && !keep(p.AdoptiveFather) {
		p.AdoptiveFather = ""
	}
	if p.AdoptiveMother != "" && !keep(p.AdoptiveMother) {
		p.AdoptiveMother = ""
	}

	p.Parents = filterIDs(p.Parents, keep)
	p.StepFathers = filterIDs(p.StepFathers, keep)
	p.StepMothers = filterIDs(p.StepMothers, keep)
	p.StepParents = filterIDs(p.StepParents, keep)
	p.AdoptiveParents = filterIDs(p.AdoptiveParents, keep)
	p.FosterParents = filterIDs(p.FosterParents, keep)
	p.Guardians = filterIDs(p.Guardians, keep)
	p.AdoptedChildren = filterIDs(p.AdoptedChildren, keep)
	p.Children = filterIDs(p.Children, keep)

	var spouses []Spouse
	for _, s := range p.Spouses {
		if keep(s.ID) {
			spouses = append(spouses, s)
		}
	}
	p.Spouses = spouses

	// A relationship-type override is only meaningful for a target that is
	// still present in a structural list.
	if p.RelTypes != nil {
		structural := make(map[string]bool)
		for _, id := range p.RelatedIDs() {
			structural[id] = true
		}
		for target := range p.RelTypes {
			if !structural[target] {
				delete(p.RelTypes, target)
			}
		}
	}
}

func filterIDs(ids []string, keep func(string) bool) []string {
	var out []string
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
