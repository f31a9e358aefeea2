package extract

import (
	"kin/internal/graph"
	"kin/internal/record"
	"kin/internal/reltype"
)

// reservedFields are raw field names the generic pass must not interpret
// as relationship-type declarations because they are canonical (or direct)
// structural fields handled elsewhere.
var reservedFields = map[string]bool{
	"father": true, "mother": true, "parents": true,
	"step_fathers": true, "step_mothers": true,
	"adoptive_father": true, "adoptive_mother": true, "adoptive_parents": true,
	"adopted_children": true, "children": true, "spouses": true,
	"relationships": true,
}

// plainTypes are built-in types whose edges are indistinguishable from the
// structural declaration; no per-target override is retained for them.
var plainTypes = map[string]bool{
	"parent": true, "father": true, "mother": true,
	"spouse": true, "child": true,
}

// applyGeneric processes flat multi-valued fields keyed by relationship
// type id. Only types with the inclusion flag set and a valid structural
// mapping contribute; everything else is ignored.
func (e *Extractor) applyGeneric(r *record.Record, p *graph.Person) {
	for _, def := range e.registry.List() {
		if reservedFields[def.ID] {
			continue
		}
		mapping, ok := e.registry.MappingFor(def.ID)
		if !ok {
			continue
		}
		v, ok := r.Field(def.ID)
		if !ok {
			continue
		}
		for _, s := range asStrings(v) {
			if target, ok := e.resolveRef(r, s); ok {
				e.assign(p, target, def.ID, mapping)
			}
		}
	}
}

// applyLegacy processes the legacy nested relationships list of
// {type, target, target_id} entries. target_id is authoritative when
// present; otherwise target is resolved textually.
func (e *Extractor) applyLegacy(r *record.Record, p *graph.Person) {
	v, ok := e.aliases.Field(r.Fields, "relationships")
	if !ok {
		return
	}
	for _, entry := range asList(v) {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		typeID := asString(m["type"])
		mapping, ok := e.registry.MappingFor(typeID)
		if !ok {
			continue
		}

		target := asString(m["target_id"])
		if target != "" {
			if IsImportArtifact(target) {
				e.log.Debug("dropping import artifact", "record", r.Path, "ref", target)
				continue
			}
		} else if raw := asString(m["target"]); raw != "" {
			resolved, ok := e.resolveRef(r, raw)
			if !ok {
				continue
			}
			target = resolved
		} else {
			continue
		}

		e.assign(p, target, typeID, mapping)
	}
}

// assign routes a generic relationship declaration into the structural
// list its mapping names. When a father/mother slot is already occupied by
// another declaration the first writer wins and the target lands in the
// gender-neutral parents list instead, so the declaration is preserved
// without overwriting an explicit field.
func (e *Extractor) assign(p *graph.Person, target, typeID string, mapping reltype.Category) {
	if target == p.ID {
		e.log.Debug("dropping self reference", "id", p.ID, "type", typeID)
		return
	}

	switch mapping {
	case reltype.CategoryParent:
		p.Parents = graph.AppendUnique(p.Parents, target)
	case reltype.CategoryFather:
		if p.Father == "" || p.Father == target {
			p.Father = target
		} else {
			p.Parents = graph.AppendUnique(p.Parents, target)
		}
	case reltype.CategoryMother:
		if p.Mother == "" || p.Mother == target {
			p.Mother = target
		} else {
			p.Parents = graph.AppendUnique(p.Parents, target)
		}
	case reltype.CategoryStepParent:
		p.StepParents = graph.AppendUnique(p.StepParents, target)
	case reltype.CategoryAdoptiveParent:
		p.AdoptiveParents = graph.AppendUnique(p.AdoptiveParents, target)
	case reltype.CategoryFosterParent:
		p.FosterParents = graph.AppendUnique(p.FosterParents, target)
	case reltype.CategoryGuardian:
		p.Guardians = graph.AppendUnique(p.Guardians, target)
	case reltype.CategorySpouse:
		found := false
		for _, s := range p.Spouses {
			if s.ID == target {
				found = true
				break
			}
		}
		if !found {
			p.Spouses = append(p.Spouses, graph.Spouse{ID: target, Status: graph.StatusCurrent})
		}
	case reltype.CategoryChild:
		p.Children = graph.AppendUnique(p.Children, target)
	default:
		return
	}

	if !plainTypes[typeID] {
		p.SetRelType(target, typeID)
	}
}
