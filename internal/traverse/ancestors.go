package traverse

import "kin/internal/graph"

// ancestors walks upward through father/mother/gender-neutral parent
// edges. Step, foster, guardian, and adoptive parents are emitted as
// labeled relationship edges when enabled but never recursed; they are not
// blood lines.
func (w *walker) ancestors(p *graph.Person, gen int) {
	w.visited[p.ID] = true
	w.onPath[p.ID] = true
	defer delete(w.onPath, p.ID)

	w.emitPerson(p)

	atCap := w.opts.MaxGenerations > 0 && gen >= w.opts.MaxGenerations

	var father, mother *graph.Person
	if !atCap {
		for _, parentID := range p.ParentIDs() {
			parent, ok := w.g.Person(parentID)
			if !ok || !w.include(parent) {
				continue
			}
			if parentID == p.Father {
				father = parent
			}
			if parentID == p.Mother {
				mother = parent
			}

			relType, label := w.relLabel(p, parentID, "")
			w.emitEdge(graph.Edge{
				From:     parentID,
				To:       p.ID,
				Category: graph.CategoryParent,
				RelType:  relType,
				Label:    label,
			})

			if w.onPath[parentID] {
				w.log.Warn("cycle detected in parent chain", "at", p.ID, "parent", parentID)
				continue
			}
			if w.visited[parentID] {
				continue
			}
			w.ancestors(parent, gen+1)
		}

		// One spouse edge between the two biological parents, never the
		// reverse direction as well.
		if w.opts.IncludeSpouses && father != nil && mother != nil {
			w.emitEdge(graph.Edge{From: father.ID, To: mother.ID, Category: graph.CategorySpouse})
		}
	}

	if atCap {
		return
	}

	if w.opts.IncludeStepParents {
		w.relationshipParents(p, p.StepFathers, "Step-father")
		w.relationshipParents(p, p.StepMothers, "Step-mother")
		w.relationshipParents(p, p.StepParents, "Step-parent")
		w.relationshipParents(p, p.FosterParents, "Foster parent")
		w.relationshipParents(p, p.Guardians, "Guardian")
	}
	if w.opts.IncludeAdoptiveParents {
		if p.AdoptiveFather != "" {
			w.relationshipParents(p, []string{p.AdoptiveFather}, "Adoptive father")
		}
		if p.AdoptiveMother != "" {
			w.relationshipParents(p, []string{p.AdoptiveMother}, "Adoptive mother")
		}
		w.relationshipParents(p, p.AdoptiveParents, "Adoptive parent")
	}
}

// relationshipParents emits labeled relationship edges for non-blood
// parent figures. The target is included in the node set but never
// recursed upward.
func (w *walker) relationshipParents(p *graph.Person, ids []string, fallback string) {
	for _, id := range ids {
		target, ok := w.g.Person(id)
		if !ok || !w.include(target) {
			continue
		}
		w.emitPerson(target)
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

// descendants walks downward through children. Spouses of each visited
// person are optionally emitted as leaves; adopted children are emitted as
// labeled relationship edges and not recursed.
func (w *walker) descendants(p *graph.Person, gen int) {
	w.visited[p.ID] = true
	w.onPath[p.ID] = true
	defer delete(w.onPath, p.ID)

	w.emitPerson(p)

	if w.opts.IncludeSpouses {
		for _, spouseID := range p.SpouseIDs() {
			spouse, ok := w.g.Person(spouseID)
			if !ok || !w.include(spouse) {
				continue
			}
			w.emitPerson(spouse)
			w.emitEdge(graph.Edge{From: p.ID, To: spouseID, Category: graph.CategorySpouse})
		}
	}

	if w.opts.MaxGenerations > 0 && gen >= w.opts.MaxGenerations {
		return
	}

	for _, childID := range p.Children {
		child, ok := w.g.Person(childID)
		if !ok || !w.include(child) {
			continue
		}
		w.emitEdge(graph.Edge{From: p.ID, To: childID, Category: graph.CategoryChild})
		if w.onPath[childID] {
			w.log.Warn("cycle detected in child chain", "at", p.ID, "child", childID)
			continue
		}
		if w.visited[childID] {
			continue
		}
		w.descendants(child, gen+1)
	}

	for _, childID := range p.AdoptedChildren {
		child, ok := w.g.Person(childID)
		if !ok || !w.include(child) {
			continue
		}
		w.emitPerson(child)
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
