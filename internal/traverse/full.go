package traverse

import "kin/internal/graph"

// full explores every reachable person breadth-first over the union of all
// edge kinds, regardless of generation direction. This is the only mode
// that can walk back down an edge direction already used elsewhere (e.g.
// into in-laws); the global visited set keeps it finite and the edge-key
// set keeps the consolidated edge list free of duplicates.
func (w *walker) full(root *graph.Person) {
	queue := []*graph.Person{root}
	w.visited[root.ID] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		w.emitPerson(p)

		enqueue := func(id string) *graph.Person {
			target, ok := w.g.Person(id)
			if !ok || !w.include(target) {
				return nil
			}
			if !w.visited[id] {
				w.visited[id] = true
				queue = append(queue, target)
			}
			return target
		}

		for _, parentID := range p.ParentIDs() {
			if enqueue(parentID) == nil {
				continue
			}
			relType, label := w.relLabel(p, parentID, "")
			w.emitEdge(graph.Edge{
				From:     parentID,
				To:       p.ID,
				Category: graph.CategoryParent,
				RelType:  relType,
				Label:    label,
			})
		}

		for _, childID := range p.Children {
			if enqueue(childID) == nil {
				continue
			}
			// Canonical direction parent -> child, so revisiting the edge
			// from the other endpoint cannot duplicate it.
			w.emitEdge(graph.Edge{From: p.ID, To: childID, Category: graph.CategoryChild})
		}

		if w.opts.IncludeSpouses {
			for _, spouseID := range p.SpouseIDs() {
				if enqueue(spouseID) == nil {
					continue
				}
				w.emitEdge(graph.Edge{From: p.ID, To: spouseID, Category: graph.CategorySpouse})
			}
		}

		if w.opts.IncludeStepParents {
			w.fullRelationship(p, p.StepFathers, "Step-father", enqueue)
			w.fullRelationship(p, p.StepMothers, "Step-mother", enqueue)
			w.fullRelationship(p, p.StepParents, "Step-parent", enqueue)
			w.fullRelationship(p, p.FosterParents, "Foster parent", enqueue)
			w.fullRelationship(p, p.Guardians, "Guardian", enqueue)
		}
		if w.opts.IncludeAdoptiveParents {
			w.fullRelationship(p, p.AdoptiveParentIDs(), "Adoptive parent", enqueue)
			for _, childID := range p.AdoptedChildren {
				if enqueue(childID) == nil {
					continue
				}
				relType, label := w.relLabel(p, childID, "Adopted child")
				if label == "" {
					label = "Adopted child"
				}
				w.emitEdge(graph.Edge{
					From:     p.ID,
					To:       childID,
					Category: graph.CategoryRelationship,
					RelType:  relType,
					Label:    label,
				})
			}
		}
	}
}

func (w *walker) fullRelationship(p *graph.Person, ids []string, fallback string, enqueue func(string) *graph.Person) {
	for _, id := range ids {
		if enqueue(id) == nil {
			continue
		}
		relType, label := w.relLabel(p, id, fallback)
		if label == "" {
			label = fallback
		}
		w.emitEdge(graph.Edge{
			From:     id,
			To:       p.ID,
			Category: graph.CategoryRelationship,
			RelType:  relType,
			Label:    label,
		})
	}
}
